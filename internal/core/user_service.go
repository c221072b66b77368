package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/warsonwoods/jobs-backend/internal/db"
	"github.com/warsonwoods/jobs-backend/internal/models"
)

// Custom errors for the UserService.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrProfileExists = errors.New("profile already exists")
)

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateProfile creates the caller's profile document after client-side
// Firebase registration. The role is fixed here and never editable; the
// email recorded is the verified one from the ID token, not the request.
func (s *userService) CreateProfile(ctx context.Context, userID, email string, req models.CreateProfileRequest) (*models.User, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for CreateProfile")
	}
	if email == "" {
		email = req.Email
	}

	user := &models.User{
		ID:       userID,
		Name:     req.Name,
		Email:    email,
		Type:     req.Type,
		Phone:    req.Phone,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		Zip:      req.Zip,
		Baby:     req.Baby,
		Pet:      req.Pet,
		Home:     req.Home,
		Children: req.Children,
		Pets:     req.Pets,
		Mobile:   req.Mobile,
		Gender:   req.Gender,
		DOB:      req.DOB,
		School:   req.School,
		Notes:    req.Notes,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, db.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: user '%s'", ErrProfileExists, userID)
		}
		return nil, fmt.Errorf("failed to create profile for user '%s': %w", userID, err)
	}
	return user, nil
}

// GetByID retrieves a user profile by Firebase Auth UID.
func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with ID '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user by ID '%s': %w", userID, err)
	}
	return user, nil
}

// UpdateProfile overwrites the caller's mutable profile fields. Role,
// email, photoURL and dateJoined are not touched by edits.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	existing, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.City = req.City
	existing.State = req.State
	existing.Zip = req.Zip
	existing.Baby = req.Baby
	existing.Pet = req.Pet
	existing.Home = req.Home
	existing.Children = req.Children
	existing.Pets = req.Pets
	existing.Mobile = req.Mobile
	existing.Gender = req.Gender
	existing.DOB = req.DOB
	existing.School = req.School
	existing.Notes = req.Notes

	if err := s.userRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update profile for user '%s': %w", userID, err)
	}
	return existing, nil
}

// ListWorkers returns the worker directory, newest members first.
func (s *userService) ListWorkers(ctx context.Context) ([]*models.User, error) {
	workers, err := s.userRepo.ListWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, nil
}

// ListParents returns the parent directory workers browse, newest members
// first.
func (s *userService) ListParents(ctx context.Context) ([]*models.User, error) {
	parents, err := s.userRepo.ListParents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list parents: %w", err)
	}
	return parents, nil
}
