package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/warsonwoods/jobs-backend/internal/db"
	"github.com/warsonwoods/jobs-backend/internal/models"
)

// Custom errors for the ReviewService.
var (
	ErrReviewExists  = errors.New("job has already been reviewed")
	ErrJobNotAwarded = errors.New("job has not been awarded")
	ErrJobNotStarted = errors.New("job has not started yet")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// reviewService implements the ReviewService interface.
type reviewService struct {
	reviewRepo db.ReviewRepository
	jobRepo    db.JobRepository
	userRepo   db.UserRepository
	now        func() time.Time
}

// NewReviewService creates a new ReviewService instance.
func NewReviewService(reviewRepo db.ReviewRepository, jobRepo db.JobRepository, userRepo db.UserRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		jobRepo:    jobRepo,
		userRepo:   userRepo,
		now:        time.Now,
	}
}

// SubmitReview creates the one review a job can ever have. The caller must
// own the job, the job must be awarded and past its start time, and the
// reviewed worker is always the awarded one. Uniqueness is enforced by the
// store (review doc keyed by job ID), so a duplicate from a second tab
// fails with ErrReviewExists rather than racing a pre-check.
func (s *reviewService) SubmitReview(ctx context.Context, parentID string, req models.SubmitReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: job '%s'", ErrJobNotFound, req.JobID)
		}
		return nil, fmt.Errorf("failed to get job '%s': %w", req.JobID, err)
	}
	if job.ParentID != parentID {
		return nil, fmt.Errorf("%w: job '%s'", ErrForbidden, req.JobID)
	}
	if !job.IsAwarded() {
		return nil, fmt.Errorf("%w: job '%s'", ErrJobNotAwarded, req.JobID)
	}
	if !job.Reviewable(s.now()) {
		return nil, fmt.Errorf("%w: job '%s'", ErrJobNotStarted, req.JobID)
	}

	review := &models.Review{
		JobID:    req.JobID,
		WorkerID: *job.Awarded,
		ParentID: parentID,
		Rating:   req.Rating,
		Review:   req.Review,
	}

	// Denormalized for the worker's reviews page; best-effort.
	if parent, err := s.userRepo.GetByID(ctx, parentID); err == nil {
		review.ParentName = parent.Name
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, db.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: job '%s'", ErrReviewExists, req.JobID)
		}
		return nil, fmt.Errorf("failed to create review for job '%s': %w", req.JobID, err)
	}
	return review, nil
}

// ListForWorker returns all reviews written about one worker.
func (s *reviewService) ListForWorker(ctx context.Context, workerID string) ([]*models.Review, error) {
	reviews, err := s.reviewRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for worker '%s': %w", workerID, err)
	}
	return reviews, nil
}
