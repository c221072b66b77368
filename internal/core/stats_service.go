package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/warsonwoods/jobs-backend/internal/db"
	"github.com/warsonwoods/jobs-backend/internal/models"
)

// Lookback windows for the dashboard charts.
const (
	parentStatsMonths = 6
	workerStatsMonths = 5
)

// statsService implements the StatsService interface.
type statsService struct {
	jobRepo db.JobRepository
	now     func() time.Time
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(jobRepo db.JobRepository) StatsService {
	return &statsService{jobRepo: jobRepo, now: time.Now}
}

// JobsByMonth counts jobs created in the last six months, bucketed by
// entry month.
func (s *statsService) JobsByMonth(ctx context.Context) ([]MonthlyJobCount, error) {
	since := s.now().AddDate(0, -parentStatsMonths, 0)
	jobs, err := s.jobRepo.ListEnteredSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs for monthly stats: %w", err)
	}
	return GroupJobsByMonth(jobs), nil
}

// WorkerJobsByMonth counts jobs awarded to the worker and entered in the
// last five months, bucketed by entry month.
func (s *statsService) WorkerJobsByMonth(ctx context.Context, workerID string) ([]MonthlyJobCount, error) {
	since := s.now().AddDate(0, -workerStatsMonths, 0)
	jobs, err := s.jobRepo.ListAwardedToSince(ctx, workerID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list won jobs for monthly stats (worker '%s'): %w", workerID, err)
	}
	return GroupJobsByMonth(jobs), nil
}

// GroupJobsByMonth buckets jobs by entry month, labeled "January 2006",
// in chronological order.
func GroupJobsByMonth(jobs []*models.Job) []MonthlyJobCount {
	type bucket struct {
		start time.Time
		count int
	}
	buckets := make(map[string]*bucket)
	for _, job := range jobs {
		month := time.Date(job.EntryDate.Year(), job.EntryDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		key := month.Format("January 2006")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{start: month}
			buckets[key] = b
		}
		b.count++
	}

	type entry struct {
		start time.Time
		row   MonthlyJobCount
	}
	entries := make([]entry, 0, len(buckets))
	for key, b := range buckets {
		entries = append(entries, entry{
			start: b.start,
			row:   MonthlyJobCount{Month: key, TotalJobs: b.count},
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].start.Before(entries[j].start) })

	rows := make([]MonthlyJobCount, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.row)
	}
	return rows
}
