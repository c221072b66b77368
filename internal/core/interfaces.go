package core

import (
	"context"

	"github.com/warsonwoods/jobs-backend/internal/models"
)

// UserService defines the interface for profile operations.
type UserService interface {
	CreateProfile(ctx context.Context, userID, email string, req models.CreateProfileRequest) (*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error)
	ListWorkers(ctx context.Context) ([]*models.User, error)
	ListParents(ctx context.Context) ([]*models.User, error)
}

// JobService defines the interface for the job lifecycle: create, edit,
// archive, list and award.
type JobService interface {
	CreateJob(ctx context.Context, parentID string, draft models.JobDraft) (*models.Job, error)
	UpdateJob(ctx context.Context, parentID, jobID string, draft models.JobDraft) (*models.Job, error)
	ArchiveJob(ctx context.Context, parentID, jobID string) error
	GetJob(ctx context.Context, callerID, jobID string) (*models.Job, error)
	ListJobsForParent(ctx context.Context, parentID string) ([]*models.Job, error)
	ListOpenJobsForWorker(ctx context.Context, workerID string) ([]*models.Job, error)
	ListWonJobs(ctx context.Context, workerID string) ([]*models.Job, error)
	NextUpcomingJob(ctx context.Context, parentID string) (*models.Job, error)
	AwardJob(ctx context.Context, parentID, jobID, workerID string) error
}

// ApplicationService defines the interface for the worker side of a job:
// applying, withdrawing and the parent's view of applicants.
type ApplicationService interface {
	Apply(ctx context.Context, jobID, workerID string) error
	Withdraw(ctx context.Context, jobID, workerID string) error
	ListApplicants(ctx context.Context, parentID, jobID string) ([]*models.User, error)
}

// ReviewService defines the interface for the one-time review of an
// awarded job and per-worker review listings.
type ReviewService interface {
	SubmitReview(ctx context.Context, parentID string, req models.SubmitReviewRequest) (*models.Review, error)
	ListForWorker(ctx context.Context, workerID string) ([]*models.Review, error)
}

// WorkerRanking is one row of the rankings view.
type WorkerRanking struct {
	WorkerID      string  `json:"workerId"`
	Name          string  `json:"name"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

// RankingService defines the interface for the worker rankings aggregation.
type RankingService interface {
	RankWorkers(ctx context.Context) ([]WorkerRanking, error)
}

// MonthlyJobCount is one bucket of the dashboard charts.
type MonthlyJobCount struct {
	Month     string `json:"month"`
	TotalJobs int    `json:"totalJobs"`
}

// StatsService defines the interface for the dashboard aggregations.
type StatsService interface {
	JobsByMonth(ctx context.Context) ([]MonthlyJobCount, error)
	WorkerJobsByMonth(ctx context.Context, workerID string) ([]MonthlyJobCount, error)
}

// NotificationService registers device tokens and fans out push/email on
// workflow events. Delivery failures are logged, never propagated to the
// operation that triggered them.
type NotificationService interface {
	RegisterDevice(ctx context.Context, userID, token string) error
	NotifyJobAwarded(ctx context.Context, job *models.Job, workerID string)
	NotifyNewApplicant(ctx context.Context, job *models.Job, workerID string)
}

// PhotoService validates and stores profile photos.
type PhotoService interface {
	UploadProfilePhoto(ctx context.Context, userID string, data []byte) (string, error)
}
