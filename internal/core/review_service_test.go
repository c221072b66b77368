package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warsonwoods/jobs-backend/internal/models"
)

// seedAwardedJob stores a job awarded to worker-1 that started an hour ago.
func seedAwardedJob(t *testing.T, jobRepo *fakeJobRepo) *models.Job {
	t.Helper()
	worker := "worker-1"
	job := &models.Job{
		ParentID:      "parent-1",
		Title:         "Weekend pet sitting",
		Description:   "One cat",
		StartDateTime: time.Now().Add(-time.Hour),
		EntryDate:     time.Now().Add(-48 * time.Hour),
		Active:        true,
		Pet:           true,
		Applied:       []string{worker},
		Awarded:       &worker,
	}
	_, err := jobRepo.Create(context.Background(), job)
	require.NoError(t, err)
	return job
}

func reviewRequest(jobID string) models.SubmitReviewRequest {
	return models.SubmitReviewRequest{JobID: jobID, Rating: 5, Review: "Great with the cat."}
}

func TestSubmitReview(t *testing.T) {
	ctx := context.Background()
	jobRepo := newFakeJobRepo()
	userRepo := newFakeUserRepo()
	reviewRepo := newFakeReviewRepo()
	svc := NewReviewService(reviewRepo, jobRepo, userRepo)

	require.NoError(t, userRepo.Create(ctx, &models.User{ID: "parent-1", Name: "Pat", Type: models.RoleParent}))
	job := seedAwardedJob(t, jobRepo)

	review, err := svc.SubmitReview(ctx, "parent-1", reviewRequest(job.ID))
	require.NoError(t, err)

	// The reviewed worker is always the awarded one.
	assert.Equal(t, "worker-1", review.WorkerID)
	assert.Equal(t, "parent-1", review.ParentID)
	assert.Equal(t, "Pat", review.ParentName)
	assert.Equal(t, 5, review.Rating)
}

func TestSubmitReviewOncePerJob(t *testing.T) {
	ctx := context.Background()
	jobRepo := newFakeJobRepo()
	svc := NewReviewService(newFakeReviewRepo(), jobRepo, newFakeUserRepo())
	job := seedAwardedJob(t, jobRepo)

	_, err := svc.SubmitReview(ctx, "parent-1", reviewRequest(job.ID))
	require.NoError(t, err)

	_, err = svc.SubmitReview(ctx, "parent-1", reviewRequest(job.ID))
	assert.ErrorIs(t, err, ErrReviewExists)
}

func TestSubmitReviewUnawardedJob(t *testing.T) {
	ctx := context.Background()
	jobRepo := newFakeJobRepo()
	svc := NewReviewService(newFakeReviewRepo(), jobRepo, newFakeUserRepo())

	job := &models.Job{
		ParentID:      "parent-1",
		Title:         "House check",
		Description:   "Water plants",
		StartDateTime: time.Now().Add(-time.Hour),
		Active:        true,
		Home:          true,
	}
	_, err := jobRepo.Create(ctx, job)
	require.NoError(t, err)

	_, err = svc.SubmitReview(ctx, "parent-1", reviewRequest(job.ID))
	assert.ErrorIs(t, err, ErrJobNotAwarded)
}

func TestSubmitReviewBeforeStart(t *testing.T) {
	ctx := context.Background()
	jobRepo := newFakeJobRepo()
	svc := NewReviewService(newFakeReviewRepo(), jobRepo, newFakeUserRepo())

	worker := "worker-1"
	job := &models.Job{
		ParentID:      "parent-1",
		Title:         "Next week",
		Description:   "Not started yet",
		StartDateTime: time.Now().Add(72 * time.Hour),
		Active:        true,
		Baby:          true,
		Applied:       []string{worker},
		Awarded:       &worker,
	}
	_, err := jobRepo.Create(ctx, job)
	require.NoError(t, err)

	_, err = svc.SubmitReview(ctx, "parent-1", reviewRequest(job.ID))
	assert.ErrorIs(t, err, ErrJobNotStarted)
}

func TestSubmitReviewOwnerOnly(t *testing.T) {
	jobRepo := newFakeJobRepo()
	svc := NewReviewService(newFakeReviewRepo(), jobRepo, newFakeUserRepo())
	job := seedAwardedJob(t, jobRepo)

	_, err := svc.SubmitReview(context.Background(), "parent-2", reviewRequest(job.ID))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSubmitReviewRatingBounds(t *testing.T) {
	jobRepo := newFakeJobRepo()
	svc := NewReviewService(newFakeReviewRepo(), jobRepo, newFakeUserRepo())
	job := seedAwardedJob(t, jobRepo)

	for _, rating := range []int{0, 6, -1} {
		req := reviewRequest(job.ID)
		req.Rating = rating
		_, err := svc.SubmitReview(context.Background(), "parent-1", req)
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}
}

func TestListForWorker(t *testing.T) {
	ctx := context.Background()
	reviewRepo := newFakeReviewRepo()
	svc := NewReviewService(reviewRepo, newFakeJobRepo(), newFakeUserRepo())

	require.NoError(t, reviewRepo.Create(ctx, &models.Review{JobID: "job-1", WorkerID: "worker-1", Rating: 4}))
	require.NoError(t, reviewRepo.Create(ctx, &models.Review{JobID: "job-2", WorkerID: "worker-2", Rating: 5}))

	reviews, err := svc.ListForWorker(ctx, "worker-1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "job-1", reviews[0].JobID)
}
