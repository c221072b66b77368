package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/warsonwoods/jobs-backend/internal/models"
)

const jobsCollection = "Jobs"

// Guard errors returned by the transactional apply/award operations.
var (
	ErrJobArchived  = errors.New("job is archived")
	ErrJobAwarded   = errors.New("job has already been awarded")
	ErrNotApplicant = errors.New("worker has not applied for this job")
)

// firestoreJobRepository implements the JobRepository interface using Firestore.
type firestoreJobRepository struct {
	client *firestore.Client
}

// NewFirestoreJobRepository creates a new instance of firestoreJobRepository.
func NewFirestoreJobRepository(client *firestore.Client) JobRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for JobRepository.")
	}
	return &firestoreJobRepository{client: client}
}

// Create adds a new job document with an auto-generated ID and sets
// job.ID before the write.
func (r *firestoreJobRepository) Create(ctx context.Context, job *models.Job) (string, error) {
	docRef := r.client.Collection(jobsCollection).NewDoc()
	job.ID = docRef.ID
	if job.Applied == nil {
		job.Applied = []string{}
	}
	if _, err := docRef.Create(ctx, job); err != nil {
		return "", fmt.Errorf("failed to create job: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a job document by its ID.
func (r *firestoreJobRepository) GetByID(ctx context.Context, jobID string) (*models.Job, error) {
	if jobID == "" {
		return nil, errors.New("jobID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(jobsCollection).Doc(jobID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("job with ID '%s' not found: %w", jobID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get job with ID '%s': %w", jobID, err)
	}
	return decodeJob(docSnap)
}

// Update overwrites the mutable fields of a job posting. The applied and
// awarded fields are never part of an edit; they change only through
// AddApplicant, RemoveApplicant and Award.
func (r *firestoreJobRepository) Update(ctx context.Context, job *models.Job) error {
	if job.ID == "" {
		return errors.New("job ID cannot be empty for Update operation")
	}
	updates := []firestore.Update{
		{Path: "title", Value: job.Title},
		{Path: "description", Value: job.Description},
		{Path: "location", Value: job.Location},
		{Path: "startDateTime", Value: job.StartDateTime},
		{Path: "active", Value: job.Active},
		{Path: "baby", Value: job.Baby},
		{Path: "pet", Value: job.Pet},
		{Path: "home", Value: job.Home},
	}
	_, err := r.client.Collection(jobsCollection).Doc(job.ID).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("job with ID '%s' not found: %w", job.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to update job with ID '%s': %w", job.ID, err)
	}
	return nil
}

// Archive sets active=false. One-way; there is no unarchive.
func (r *firestoreJobRepository) Archive(ctx context.Context, jobID string) error {
	if jobID == "" {
		return errors.New("jobID cannot be empty for Archive operation")
	}
	_, err := r.client.Collection(jobsCollection).Doc(jobID).Update(ctx, []firestore.Update{
		{Path: "active", Value: false},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("job with ID '%s' not found: %w", jobID, ErrNotFound)
		}
		return fmt.Errorf("failed to archive job with ID '%s': %w", jobID, err)
	}
	return nil
}

// ListByParent retrieves all jobs posted by one parent, store order.
func (r *firestoreJobRepository) ListByParent(ctx context.Context, parentID string) ([]*models.Job, error) {
	if parentID == "" {
		return nil, errors.New("parentID cannot be empty for ListByParent operation")
	}
	query := r.client.Collection(jobsCollection).Where("parentId", "==", parentID)
	return r.collectJobs(ctx, query, fmt.Sprintf("parent '%s'", parentID))
}

// ListOpen retrieves active, unawarded jobs starting after now, up to
// limit. Workers who already applied are filtered out by the service after
// the fetch; Firestore cannot combine array-not-contains with these
// predicates.
func (r *firestoreJobRepository) ListOpen(ctx context.Context, now time.Time, limit int) ([]*models.Job, error) {
	query := r.client.Collection(jobsCollection).
		Where("active", "==", true).
		Where("startDateTime", ">", now).
		Where("awarded", "==", nil).
		Limit(limit)
	return r.collectJobs(ctx, query, "open jobs")
}

// ListAwardedTo retrieves all jobs won by one worker.
func (r *firestoreJobRepository) ListAwardedTo(ctx context.Context, workerID string) ([]*models.Job, error) {
	if workerID == "" {
		return nil, errors.New("workerID cannot be empty for ListAwardedTo operation")
	}
	query := r.client.Collection(jobsCollection).Where("awarded", "==", workerID)
	return r.collectJobs(ctx, query, fmt.Sprintf("worker '%s'", workerID))
}

// ListEnteredSince retrieves all jobs created since the given time.
func (r *firestoreJobRepository) ListEnteredSince(ctx context.Context, since time.Time) ([]*models.Job, error) {
	query := r.client.Collection(jobsCollection).Where("entryDate", ">=", since)
	return r.collectJobs(ctx, query, "entered since")
}

// ListAwardedToSince retrieves jobs won by a worker and entered since the
// given time.
func (r *firestoreJobRepository) ListAwardedToSince(ctx context.Context, workerID string, since time.Time) ([]*models.Job, error) {
	if workerID == "" {
		return nil, errors.New("workerID cannot be empty for ListAwardedToSince operation")
	}
	query := r.client.Collection(jobsCollection).
		Where("awarded", "==", workerID).
		Where("entryDate", ">=", since)
	return r.collectJobs(ctx, query, fmt.Sprintf("worker '%s' since", workerID))
}

// NextUpcomingForParent returns the parent's next active job by start
// time, or ErrNotFound when there is none.
func (r *firestoreJobRepository) NextUpcomingForParent(ctx context.Context, parentID string, now time.Time) (*models.Job, error) {
	if parentID == "" {
		return nil, errors.New("parentID cannot be empty for NextUpcomingForParent operation")
	}
	query := r.client.Collection(jobsCollection).
		Where("parentId", "==", parentID).
		Where("active", "==", true).
		Where("startDateTime", ">", now).
		OrderBy("startDateTime", firestore.Asc).
		Limit(1)

	jobs, err := r.collectJobs(ctx, query, fmt.Sprintf("next job for parent '%s'", parentID))
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no upcoming job for parent '%s': %w", parentID, ErrNotFound)
	}
	return jobs[0], nil
}

// AddApplicant appends the worker to the applied list via ArrayUnion inside
// a transaction. The read-check-write is atomic: applying to an archived or
// already-awarded job fails, and ArrayUnion keeps the list duplicate-free
// so re-applying is idempotent.
func (r *firestoreJobRepository) AddApplicant(ctx context.Context, jobID, workerID string) error {
	if jobID == "" || workerID == "" {
		return errors.New("jobID and workerID cannot be empty for AddApplicant operation")
	}
	docRef := r.client.Collection(jobsCollection).Doc(jobID)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("job with ID '%s' not found: %w", jobID, ErrNotFound)
			}
			return err
		}
		job, err := decodeJob(snap)
		if err != nil {
			return err
		}
		if !job.Active {
			return ErrJobArchived
		}
		if job.IsAwarded() {
			return ErrJobAwarded
		}
		return tx.Update(docRef, []firestore.Update{
			{Path: "applied", Value: firestore.ArrayUnion(workerID)},
		})
	})
	if err != nil {
		return fmt.Errorf("failed to add applicant '%s' to job '%s': %w", workerID, jobID, err)
	}
	return nil
}

// RemoveApplicant removes the worker from the applied list via ArrayRemove.
// No guard: withdrawing is always allowed and removing an absent worker is
// a no-op.
func (r *firestoreJobRepository) RemoveApplicant(ctx context.Context, jobID, workerID string) error {
	if jobID == "" || workerID == "" {
		return errors.New("jobID and workerID cannot be empty for RemoveApplicant operation")
	}
	_, err := r.client.Collection(jobsCollection).Doc(jobID).Update(ctx, []firestore.Update{
		{Path: "applied", Value: firestore.ArrayRemove(workerID)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("job with ID '%s' not found: %w", jobID, ErrNotFound)
		}
		return fmt.Errorf("failed to remove applicant '%s' from job '%s': %w", workerID, jobID, err)
	}
	return nil
}

// Award sets awarded=workerID inside a transaction that verifies the job is
// still active, the decision has not been made, and the worker is in the
// applied list. The awarded worker is always a current applicant, even
// under concurrent clients.
func (r *firestoreJobRepository) Award(ctx context.Context, jobID, workerID string) error {
	if jobID == "" || workerID == "" {
		return errors.New("jobID and workerID cannot be empty for Award operation")
	}
	docRef := r.client.Collection(jobsCollection).Doc(jobID)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("job with ID '%s' not found: %w", jobID, ErrNotFound)
			}
			return err
		}
		job, err := decodeJob(snap)
		if err != nil {
			return err
		}
		if !job.Active {
			return ErrJobArchived
		}
		if job.IsAwarded() {
			return ErrJobAwarded
		}
		if !job.HasApplicant(workerID) {
			return ErrNotApplicant
		}
		return tx.Update(docRef, []firestore.Update{
			{Path: "awarded", Value: workerID},
		})
	})
	if err != nil {
		return fmt.Errorf("failed to award job '%s' to worker '%s': %w", jobID, workerID, err)
	}
	return nil
}

func (r *firestoreJobRepository) collectJobs(ctx context.Context, query firestore.Query, scope string) ([]*models.Job, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var jobs []*models.Job
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate jobs (%s): %w", scope, err)
		}
		job, err := decodeJob(doc)
		if err != nil {
			log.Printf("Error decoding job data (ID: %s, %s): %v. Skipping.", doc.Ref.ID, scope, err)
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func decodeJob(snap *firestore.DocumentSnapshot) (*models.Job, error) {
	var job models.Job
	if err := snap.DataTo(&job); err != nil {
		return nil, fmt.Errorf("failed to decode job data for ID '%s': %w", snap.Ref.ID, err)
	}
	job.ID = snap.Ref.ID
	return &job, nil
}
