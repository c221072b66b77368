package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/warsonwoods/jobs-backend/internal/db"
	"github.com/warsonwoods/jobs-backend/internal/models"
)

// Custom errors for the JobService.
var (
	ErrJobNotFound = errors.New("job not found")
	ErrForbidden   = errors.New("caller does not own this job")
	ErrInvalidJob  = errors.New("invalid job draft")
)

// openJobsPageSize bounds the worker-facing open jobs listing.
const openJobsPageSize = 10

// jobService implements the JobService interface.
type jobService struct {
	jobRepo  db.JobRepository
	userRepo db.UserRepository
	notifier NotificationService
	now      func() time.Time
}

// NewJobService creates a new JobService instance. The notifier may be nil
// in tests; notifications are best-effort.
func NewJobService(jobRepo db.JobRepository, userRepo db.UserRepository, notifier NotificationService) JobService {
	return &jobService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		notifier: notifier,
		now:      time.Now,
	}
}

// ValidateJobDraft checks the cross-field rules binding tags cannot: the
// posting must target at least one of baby, pet or home care and must have
// a start time.
func ValidateJobDraft(draft models.JobDraft) error {
	if draft.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidJob)
	}
	if draft.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidJob)
	}
	if draft.StartDateTime.IsZero() {
		return fmt.Errorf("%w: startDateTime is required", ErrInvalidJob)
	}
	if !draft.Baby && !draft.Pet && !draft.Home {
		return fmt.Errorf("%w: at least one of baby, pet or home must be selected", ErrInvalidJob)
	}
	return nil
}

// CreateJob validates the draft and creates the posting, stamping the
// entry date and the calling parent as owner.
func (s *jobService) CreateJob(ctx context.Context, parentID string, draft models.JobDraft) (*models.Job, error) {
	if err := ValidateJobDraft(draft); err != nil {
		return nil, err
	}

	job := &models.Job{
		ParentID:      parentID,
		Title:         draft.Title,
		Description:   draft.Description,
		Location:      draft.Location,
		StartDateTime: draft.StartDateTime,
		EntryDate:     s.now().UTC(),
		Active:        draft.Active,
		Baby:          draft.Baby,
		Pet:           draft.Pet,
		Home:          draft.Home,
		Applied:       []string{},
		Awarded:       nil,
	}

	jobID, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	job.ID = jobID
	return job, nil
}

// UpdateJob overwrites the mutable fields of a posting the caller owns.
// Last writer wins; there is no field-level concurrency control.
func (s *jobService) UpdateJob(ctx context.Context, parentID, jobID string, draft models.JobDraft) (*models.Job, error) {
	if err := ValidateJobDraft(draft); err != nil {
		return nil, err
	}

	job, err := s.ownedJob(ctx, parentID, jobID)
	if err != nil {
		return nil, err
	}

	job.Title = draft.Title
	job.Description = draft.Description
	job.Location = draft.Location
	job.StartDateTime = draft.StartDateTime
	job.Active = draft.Active
	job.Baby = draft.Baby
	job.Pet = draft.Pet
	job.Home = draft.Home

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job '%s': %w", jobID, err)
	}
	return job, nil
}

// ArchiveJob sets active=false on a posting the caller owns. One-way.
func (s *jobService) ArchiveJob(ctx context.Context, parentID, jobID string) error {
	if _, err := s.ownedJob(ctx, parentID, jobID); err != nil {
		return err
	}
	if err := s.jobRepo.Archive(ctx, jobID); err != nil {
		return fmt.Errorf("failed to archive job '%s': %w", jobID, err)
	}
	return nil
}

// GetJob retrieves a single posting. The full applicant list is owner-only;
// any other caller gets the document with applied reduced to their own
// entry, which is all the client needs to render an "already applied"
// state without exposing who else applied.
func (s *jobService) GetJob(ctx context.Context, callerID, jobID string) (*models.Job, error) {
	job, err := s.getJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.ParentID != callerID {
		if job.HasApplicant(callerID) {
			job.Applied = []string{callerID}
		} else {
			job.Applied = []string{}
		}
	}
	return job, nil
}

func (s *jobService) getJob(ctx context.Context, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: job '%s'", ErrJobNotFound, jobID)
		}
		return nil, fmt.Errorf("failed to get job '%s': %w", jobID, err)
	}
	return job, nil
}

// ListJobsForParent returns every posting owned by the parent.
func (s *jobService) ListJobsForParent(ctx context.Context, parentID string) ([]*models.Job, error) {
	jobs, err := s.jobRepo.ListByParent(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs for parent '%s': %w", parentID, err)
	}
	return jobs, nil
}

// ListOpenJobsForWorker returns up to one page of active, unawarded,
// future jobs, minus the ones the worker already applied to. The
// already-applied filter runs after the fetch; Firestore cannot express it
// alongside the other predicates.
func (s *jobService) ListOpenJobsForWorker(ctx context.Context, workerID string) ([]*models.Job, error) {
	jobs, err := s.jobRepo.ListOpen(ctx, s.now(), openJobsPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list open jobs: %w", err)
	}

	open := make([]*models.Job, 0, len(jobs))
	for _, job := range jobs {
		if !job.HasApplicant(workerID) {
			open = append(open, job)
		}
	}
	return open, nil
}

// ListWonJobs returns the jobs awarded to the worker.
func (s *jobService) ListWonJobs(ctx context.Context, workerID string) ([]*models.Job, error) {
	jobs, err := s.jobRepo.ListAwardedTo(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list won jobs for worker '%s': %w", workerID, err)
	}
	return jobs, nil
}

// NextUpcomingJob returns the parent's next active posting by start time.
func (s *jobService) NextUpcomingJob(ctx context.Context, parentID string) (*models.Job, error) {
	job, err := s.jobRepo.NextUpcomingForParent(ctx, parentID, s.now())
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: no upcoming job", ErrJobNotFound)
		}
		return nil, fmt.Errorf("failed to get next job for parent '%s': %w", parentID, err)
	}
	return job, nil
}

// AwardJob awards a posting the caller owns to one of its applicants. The
// repository runs the guard (active, not yet awarded, worker applied) and
// the write in one transaction, so the award decision is made exactly once
// and only for a worker in the applied list. Fires a notification to the
// winner on success.
func (s *jobService) AwardJob(ctx context.Context, parentID, jobID, workerID string) error {
	job, err := s.ownedJob(ctx, parentID, jobID)
	if err != nil {
		return err
	}

	if err := s.jobRepo.Award(ctx, jobID, workerID); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.NotifyJobAwarded(ctx, job, workerID)
	}
	return nil
}

// ownedJob fetches a job and verifies the caller posted it.
func (s *jobService) ownedJob(ctx context.Context, parentID, jobID string) (*models.Job, error) {
	job, err := s.getJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.ParentID != parentID {
		return nil, fmt.Errorf("%w: job '%s'", ErrForbidden, jobID)
	}
	return job, nil
}
