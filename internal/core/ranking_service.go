package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/warsonwoods/jobs-backend/internal/db"
	"github.com/warsonwoods/jobs-backend/internal/models"
	"github.com/warsonwoods/jobs-backend/pkg/cache"
)

const (
	rankingsCacheKey = "worker_rankings"
	rankingsCacheTTL = 5 * time.Minute
)

// rankingService implements the RankingService interface.
type rankingService struct {
	reviewRepo db.ReviewRepository
	userRepo   db.UserRepository
	cache      cache.Cache
}

// NewRankingService creates a new RankingService instance. The cache may be
// nil, in which case every call scans the Reviews collection.
func NewRankingService(reviewRepo db.ReviewRepository, userRepo db.UserRepository, c cache.Cache) RankingService {
	return &rankingService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		cache:      c,
	}
}

// RankWorkers scans all reviews, averages ratings per worker, joins worker
// names and returns the list sorted best-first. The full scan is O(reviews)
// document reads, acceptable at community scale; the result is cached for a
// few minutes to keep the rankings page from rescanning on every render.
func (s *rankingService) RankWorkers(ctx context.Context) ([]WorkerRanking, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, rankingsCacheKey); err == nil && cached != "" {
			var rankings []WorkerRanking
			decodeErr := json.Unmarshal([]byte(cached), &rankings)
			if decodeErr == nil {
				return rankings, nil
			}
			log.Printf("RankWorkers: discarding undecodable cache entry: %v", decodeErr)
		}
	}

	reviews, err := s.reviewRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for rankings: %w", err)
	}

	rankings := AggregateRatings(reviews)
	for i := range rankings {
		worker, err := s.userRepo.GetByID(ctx, rankings[i].WorkerID)
		if err != nil {
			// Reviews can outlive a worker profile; the row still renders.
			rankings[i].Name = "Unknown"
			continue
		}
		rankings[i].Name = worker.Name
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(rankings); err == nil {
			if err := s.cache.Set(ctx, rankingsCacheKey, string(encoded), rankingsCacheTTL); err != nil {
				log.Printf("RankWorkers: failed to cache rankings: %v", err)
			}
		}
	}
	return rankings, nil
}

// AggregateRatings groups reviews by worker and computes per-worker average
// and count, sorted by average descending. Ties are broken by review count
// descending, then worker ID, so the order is deterministic. Names are left
// empty for the caller to fill in.
func AggregateRatings(reviews []*models.Review) []WorkerRanking {
	type bucket struct {
		total int
		count int
	}
	buckets := make(map[string]*bucket)
	for _, review := range reviews {
		b, ok := buckets[review.WorkerID]
		if !ok {
			b = &bucket{}
			buckets[review.WorkerID] = b
		}
		b.total += review.Rating
		b.count++
	}

	rankings := make([]WorkerRanking, 0, len(buckets))
	for workerID, b := range buckets {
		rankings = append(rankings, WorkerRanking{
			WorkerID:      workerID,
			AverageRating: float64(b.total) / float64(b.count),
			ReviewCount:   b.count,
		})
	}

	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].AverageRating != rankings[j].AverageRating {
			return rankings[i].AverageRating > rankings[j].AverageRating
		}
		if rankings[i].ReviewCount != rankings[j].ReviewCount {
			return rankings[i].ReviewCount > rankings[j].ReviewCount
		}
		return rankings[i].WorkerID < rankings[j].WorkerID
	})
	return rankings
}
