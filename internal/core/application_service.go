package core

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/warsonwoods/jobs-backend/internal/db"
	"github.com/warsonwoods/jobs-backend/internal/models"
)

// applicationService implements the ApplicationService interface.
type applicationService struct {
	jobRepo  db.JobRepository
	userRepo db.UserRepository
	notifier NotificationService
}

// NewApplicationService creates a new ApplicationService instance.
func NewApplicationService(jobRepo db.JobRepository, userRepo db.UserRepository, notifier NotificationService) ApplicationService {
	return &applicationService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// Apply adds the worker to the job's applied set. The repository guards
// against applying to an archived or already-awarded job inside the same
// transaction as the write; re-applying is an idempotent no-op because the
// write is a set-union. Notifies the posting parent on success.
func (s *applicationService) Apply(ctx context.Context, jobID, workerID string) error {
	err := s.jobRepo.AddApplicant(ctx, jobID, workerID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: job '%s'", ErrJobNotFound, jobID)
		}
		return err
	}

	if s.notifier != nil {
		job, jobErr := s.jobRepo.GetByID(ctx, jobID)
		if jobErr != nil {
			log.Printf("Apply: could not load job '%s' for notification: %v", jobID, jobErr)
			return nil
		}
		s.notifier.NotifyNewApplicant(ctx, job, workerID)
	}
	return nil
}

// Withdraw removes the worker from the job's applied set. Idempotent and
// unguarded: withdrawing from an awarded job is allowed and withdrawing
// twice is a no-op.
func (s *applicationService) Withdraw(ctx context.Context, jobID, workerID string) error {
	err := s.jobRepo.RemoveApplicant(ctx, jobID, workerID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: job '%s'", ErrJobNotFound, jobID)
		}
		return err
	}
	return nil
}

// ListApplicants returns the profiles of everyone who applied to a job the
// caller owns. Applicants whose profile document is missing are skipped,
// matching the convention-only referential integrity of the store.
func (s *applicationService) ListApplicants(ctx context.Context, parentID, jobID string) ([]*models.User, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: job '%s'", ErrJobNotFound, jobID)
		}
		return nil, fmt.Errorf("failed to get job '%s': %w", jobID, err)
	}
	if job.ParentID != parentID {
		return nil, fmt.Errorf("%w: job '%s'", ErrForbidden, jobID)
	}

	applicants := make([]*models.User, 0, len(job.Applied))
	for _, workerID := range job.Applied {
		worker, err := s.userRepo.GetByID(ctx, workerID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				log.Printf("ListApplicants: applicant '%s' on job '%s' has no profile. Skipping.", workerID, jobID)
				continue
			}
			return nil, fmt.Errorf("failed to get applicant '%s': %w", workerID, err)
		}
		applicants = append(applicants, worker)
	}
	return applicants, nil
}
