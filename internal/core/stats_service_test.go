package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warsonwoods/jobs-backend/internal/models"
)

func TestGroupJobsByMonthEmpty(t *testing.T) {
	assert.Empty(t, GroupJobsByMonth(nil))
}

func TestGroupJobsByMonth(t *testing.T) {
	jobs := []*models.Job{
		{ID: "a", EntryDate: time.Date(2026, time.June, 3, 10, 0, 0, 0, time.UTC)},
		{ID: "b", EntryDate: time.Date(2026, time.June, 28, 23, 0, 0, 0, time.UTC)},
		{ID: "c", EntryDate: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)},
	}

	rows := GroupJobsByMonth(jobs)
	require.Len(t, rows, 2)
	assert.Equal(t, MonthlyJobCount{Month: "June 2026", TotalJobs: 2}, rows[0])
	assert.Equal(t, MonthlyJobCount{Month: "August 2026", TotalJobs: 1}, rows[1])
}

func TestJobsByMonthWindow(t *testing.T) {
	ctx := context.Background()
	jobRepo := newFakeJobRepo()
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	recent := &models.Job{Title: "x", EntryDate: now.AddDate(0, -1, 0)}
	old := &models.Job{Title: "y", EntryDate: now.AddDate(0, -8, 0)}
	_, err := jobRepo.Create(ctx, recent)
	require.NoError(t, err)
	_, err = jobRepo.Create(ctx, old)
	require.NoError(t, err)

	svc := NewStatsService(jobRepo).(*statsService)
	svc.now = func() time.Time { return now }

	rows, err := svc.JobsByMonth(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "August 2026", rows[0].Month)
}

func TestWorkerJobsByMonth(t *testing.T) {
	ctx := context.Background()
	jobRepo := newFakeJobRepo()
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	worker := "worker-1"

	mine := &models.Job{Title: "x", EntryDate: now.AddDate(0, -2, 0), Awarded: &worker}
	other := &models.Job{Title: "y", EntryDate: now.AddDate(0, -2, 0)}
	_, err := jobRepo.Create(ctx, mine)
	require.NoError(t, err)
	_, err = jobRepo.Create(ctx, other)
	require.NoError(t, err)

	svc := NewStatsService(jobRepo).(*statsService)
	svc.now = func() time.Time { return now }

	rows, err := svc.WorkerJobsByMonth(ctx, worker)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, MonthlyJobCount{Month: "July 2026", TotalJobs: 1}, rows[0])
}
