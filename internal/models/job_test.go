package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobAwardState(t *testing.T) {
	worker := "worker-1"
	open := &Job{Active: true}
	awarded := &Job{Active: true, Awarded: &worker}

	assert.False(t, open.IsAwarded())
	assert.True(t, open.AcceptsApplications())

	assert.True(t, awarded.IsAwarded())
	assert.True(t, awarded.AwardedTo("worker-1"))
	assert.False(t, awarded.AwardedTo("worker-2"))
	assert.False(t, awarded.AcceptsApplications())

	// An empty string award means the decision was never made.
	empty := ""
	assert.False(t, (&Job{Awarded: &empty}).IsAwarded())
}

func TestJobHasApplicant(t *testing.T) {
	job := &Job{Applied: []string{"a", "b"}}
	assert.True(t, job.HasApplicant("a"))
	assert.False(t, job.HasApplicant("c"))
	assert.False(t, (&Job{}).HasApplicant("a"))
}

func TestJobReviewable(t *testing.T) {
	now := time.Now()
	worker := "worker-1"

	started := &Job{Awarded: &worker, StartDateTime: now.Add(-time.Hour)}
	future := &Job{Awarded: &worker, StartDateTime: now.Add(time.Hour)}
	unawarded := &Job{StartDateTime: now.Add(-time.Hour)}

	assert.True(t, started.Reviewable(now))
	assert.False(t, future.Reviewable(now))
	assert.False(t, unawarded.Reviewable(now))
}
