package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warsonwoods/jobs-backend/internal/models"
)

func TestAggregateRatingsEmpty(t *testing.T) {
	assert.Empty(t, AggregateRatings(nil))
}

func TestAggregateRatingsOrdering(t *testing.T) {
	reviews := []*models.Review{
		{JobID: "j1", WorkerID: "worker-a", Rating: 5},
		{JobID: "j2", WorkerID: "worker-a", Rating: 3},
		{JobID: "j3", WorkerID: "worker-b", Rating: 4},
		{JobID: "j4", WorkerID: "worker-c", Rating: 5},
	}

	rankings := AggregateRatings(reviews)
	require.Len(t, rankings, 3)

	// worker-c leads on a perfect average. worker-a and worker-b tie at
	// 4.0; the tie goes to the one with more reviews.
	assert.Equal(t, "worker-c", rankings[0].WorkerID)
	assert.Equal(t, "worker-a", rankings[1].WorkerID)
	assert.Equal(t, "worker-b", rankings[2].WorkerID)

	assert.InDelta(t, 4.0, rankings[1].AverageRating, 1e-9)
	assert.Equal(t, 2, rankings[1].ReviewCount)
}

func TestAggregateRatingsTieBreakByWorkerID(t *testing.T) {
	reviews := []*models.Review{
		{JobID: "j1", WorkerID: "worker-b", Rating: 4},
		{JobID: "j2", WorkerID: "worker-a", Rating: 4},
	}

	rankings := AggregateRatings(reviews)
	require.Len(t, rankings, 2)
	assert.Equal(t, "worker-a", rankings[0].WorkerID)
	assert.Equal(t, "worker-b", rankings[1].WorkerID)
}

func TestRankWorkersJoinsNames(t *testing.T) {
	ctx := context.Background()
	reviewRepo := newFakeReviewRepo()
	userRepo := newFakeUserRepo()
	svc := NewRankingService(reviewRepo, userRepo, nil)

	require.NoError(t, userRepo.Create(ctx, &models.User{ID: "worker-1", Name: "Ann", Type: models.RoleWorker}))
	require.NoError(t, reviewRepo.Create(ctx, &models.Review{JobID: "j1", WorkerID: "worker-1", Rating: 5}))
	require.NoError(t, reviewRepo.Create(ctx, &models.Review{JobID: "j2", WorkerID: "worker-gone", Rating: 3}))

	rankings, err := svc.RankWorkers(ctx)
	require.NoError(t, err)
	require.Len(t, rankings, 2)
	assert.Equal(t, "Ann", rankings[0].Name)
	// A review can outlive the worker's profile document.
	assert.Equal(t, "Unknown", rankings[1].Name)
}

func TestRankWorkersDiscardsBadCacheEntry(t *testing.T) {
	ctx := context.Background()
	reviewRepo := newFakeReviewRepo()
	userRepo := newFakeUserRepo()
	c := newFakeCache()
	c.entries[rankingsCacheKey] = "not json"
	svc := NewRankingService(reviewRepo, userRepo, c)

	require.NoError(t, userRepo.Create(ctx, &models.User{ID: "worker-1", Name: "Ann", Type: models.RoleWorker}))
	require.NoError(t, reviewRepo.Create(ctx, &models.Review{JobID: "j1", WorkerID: "worker-1", Rating: 5}))

	// The bad entry is ignored; a fresh scan runs and replaces it.
	rankings, err := svc.RankWorkers(ctx)
	require.NoError(t, err)
	require.Len(t, rankings, 1)
	assert.Equal(t, "Ann", rankings[0].Name)
	assert.Equal(t, 1, c.sets)
	assert.NotEqual(t, "not json", c.entries[rankingsCacheKey])
}

func TestRankWorkersUsesCache(t *testing.T) {
	ctx := context.Background()
	reviewRepo := newFakeReviewRepo()
	userRepo := newFakeUserRepo()
	c := newFakeCache()
	svc := NewRankingService(reviewRepo, userRepo, c)

	require.NoError(t, userRepo.Create(ctx, &models.User{ID: "worker-1", Name: "Ann", Type: models.RoleWorker}))
	require.NoError(t, reviewRepo.Create(ctx, &models.Review{JobID: "j1", WorkerID: "worker-1", Rating: 5}))

	first, err := svc.RankWorkers(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, c.sets)

	// A review arriving inside the cache window is not visible until expiry.
	require.NoError(t, reviewRepo.Create(ctx, &models.Review{JobID: "j2", WorkerID: "worker-2", Rating: 4}))

	second, err := svc.RankWorkers(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.sets)
}
