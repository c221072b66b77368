package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/warsonwoods/jobs-backend/internal/models"
)

const reviewsCollection = "Reviews"

// firestoreReviewRepository implements the ReviewRepository interface using Firestore.
type firestoreReviewRepository struct {
	client *firestore.Client
}

// NewFirestoreReviewRepository creates a new instance of firestoreReviewRepository.
func NewFirestoreReviewRepository(client *firestore.Client) ReviewRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ReviewRepository.")
	}
	return &firestoreReviewRepository{client: client}
}

// Create inserts a review keyed by its job ID. Using the job ID as the
// document ID makes one-review-per-job a storage-level constraint: a
// concurrent duplicate fails with ErrAlreadyExists instead of slipping past
// a pre-submission query.
func (r *firestoreReviewRepository) Create(ctx context.Context, review *models.Review) error {
	if review.JobID == "" {
		return errors.New("review jobID cannot be empty for Create operation")
	}
	docRef := r.client.Collection(reviewsCollection).Doc(review.JobID)
	review.ID = docRef.ID
	if _, err := docRef.Create(ctx, review); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("review for job '%s' already exists: %w", review.JobID, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create review for job '%s': %w", review.JobID, err)
	}
	return nil
}

// GetByJobID retrieves the review for a job, or ErrNotFound.
func (r *firestoreReviewRepository) GetByJobID(ctx context.Context, jobID string) (*models.Review, error) {
	if jobID == "" {
		return nil, errors.New("jobID cannot be empty for GetByJobID operation")
	}
	docSnap, err := r.client.Collection(reviewsCollection).Doc(jobID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("review for job '%s' not found: %w", jobID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review for job '%s': %w", jobID, err)
	}
	var review models.Review
	if err := docSnap.DataTo(&review); err != nil {
		return nil, fmt.Errorf("failed to decode review data for job '%s': %w", jobID, err)
	}
	review.ID = docSnap.Ref.ID
	return &review, nil
}

// ListByWorker retrieves all reviews written about one worker.
func (r *firestoreReviewRepository) ListByWorker(ctx context.Context, workerID string) ([]*models.Review, error) {
	if workerID == "" {
		return nil, errors.New("workerID cannot be empty for ListByWorker operation")
	}
	query := r.client.Collection(reviewsCollection).Where("workerId", "==", workerID)
	return r.collectReviews(ctx, query, fmt.Sprintf("worker '%s'", workerID))
}

// ListAll retrieves every review for the rankings aggregation. Unbounded by
// design at community scale; the service layer caches the aggregate.
func (r *firestoreReviewRepository) ListAll(ctx context.Context) ([]*models.Review, error) {
	return r.collectReviews(ctx, r.client.Collection(reviewsCollection).Query, "all")
}

func (r *firestoreReviewRepository) collectReviews(ctx context.Context, query firestore.Query, scope string) ([]*models.Review, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var reviews []*models.Review
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate reviews (%s): %w", scope, err)
		}
		var review models.Review
		if err := doc.DataTo(&review); err != nil {
			log.Printf("Error decoding review data (ID: %s, %s): %v. Skipping.", doc.Ref.ID, scope, err)
			continue
		}
		review.ID = doc.Ref.ID
		reviews = append(reviews, &review)
	}
	return reviews, nil
}
