package db

import (
	"context"
	"time"

	"github.com/warsonwoods/jobs-backend/internal/models"
)

// UserRepository defines the interface for user profile storage operations.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	SetPhotoURL(ctx context.Context, userID, photoURL string) error
	ListWorkers(ctx context.Context) ([]*models.User, error)
	ListParents(ctx context.Context) ([]*models.User, error)
}

// JobRepository defines the interface for job posting storage operations.
//
// AddApplicant and Award run inside a Firestore transaction so the state
// guards (job still open, worker actually applied) hold under concurrent
// clients; they return ErrJobArchived, ErrJobAwarded or ErrNotApplicant
// when a guard fails. RemoveApplicant is a plain set-remove with no guard.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (string, error)
	GetByID(ctx context.Context, jobID string) (*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	Archive(ctx context.Context, jobID string) error
	ListByParent(ctx context.Context, parentID string) ([]*models.Job, error)
	ListOpen(ctx context.Context, now time.Time, limit int) ([]*models.Job, error)
	ListAwardedTo(ctx context.Context, workerID string) ([]*models.Job, error)
	ListEnteredSince(ctx context.Context, since time.Time) ([]*models.Job, error)
	ListAwardedToSince(ctx context.Context, workerID string, since time.Time) ([]*models.Job, error)
	NextUpcomingForParent(ctx context.Context, parentID string, now time.Time) (*models.Job, error)
	AddApplicant(ctx context.Context, jobID, workerID string) error
	RemoveApplicant(ctx context.Context, jobID, workerID string) error
	Award(ctx context.Context, jobID, workerID string) error
}

// ReviewRepository defines the interface for review storage operations.
// Create fails with ErrAlreadyExists when the job already has a review.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByJobID(ctx context.Context, jobID string) (*models.Review, error)
	ListByWorker(ctx context.Context, workerID string) ([]*models.Review, error)
	ListAll(ctx context.Context) ([]*models.Review, error)
}

// DeviceTokenRepository defines the interface for FCM token storage.
type DeviceTokenRepository interface {
	Save(ctx context.Context, token *models.DeviceToken) error
	ListByUser(ctx context.Context, userID string) ([]string, error)
	Delete(ctx context.Context, token string) error
}
