package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/warsonwoods/jobs-backend/internal/db"
	"github.com/warsonwoods/jobs-backend/internal/models"
)

// In-memory repository fakes for service tests. The job fake mirrors the
// transactional guards of the Firestore repository so guard behavior can be
// tested without an emulator.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID string) (*models.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; ok {
		return db.ErrAlreadyExists
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return db.ErrNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) SetPhotoURL(_ context.Context, userID, photoURL string) error {
	user, ok := r.users[userID]
	if !ok {
		return db.ErrNotFound
	}
	user.PhotoURL = photoURL
	return nil
}

func (r *fakeUserRepo) ListWorkers(_ context.Context) ([]*models.User, error) {
	return r.listByRole(models.RoleWorker), nil
}

func (r *fakeUserRepo) ListParents(_ context.Context) ([]*models.User, error) {
	return r.listByRole(models.RoleParent), nil
}

func (r *fakeUserRepo) listByRole(role string) []*models.User {
	var users []*models.User
	for _, user := range r.users {
		if user.Type == role {
			copied := *user
			users = append(users, &copied)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].DateJoined.After(users[j].DateJoined)
	})
	return users
}

type fakeJobRepo struct {
	jobs map[string]*models.Job
	seq  int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *fakeJobRepo) put(job *models.Job) {
	copied := *job
	copied.Applied = append([]string(nil), job.Applied...)
	r.jobs[job.ID] = &copied
}

func (r *fakeJobRepo) get(jobID string) (*models.Job, error) {
	job, ok := r.jobs[jobID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return job, nil
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.Job) (string, error) {
	r.seq++
	job.ID = fmt.Sprintf("job-%d", r.seq)
	r.put(job)
	return job.ID, nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, jobID string) (*models.Job, error) {
	job, err := r.get(jobID)
	if err != nil {
		return nil, err
	}
	copied := *job
	copied.Applied = append([]string(nil), job.Applied...)
	return &copied, nil
}

func (r *fakeJobRepo) Update(_ context.Context, job *models.Job) error {
	existing, err := r.get(job.ID)
	if err != nil {
		return err
	}
	// Edits never touch applicants or the award.
	job.Applied = existing.Applied
	job.Awarded = existing.Awarded
	r.put(job)
	return nil
}

func (r *fakeJobRepo) Archive(_ context.Context, jobID string) error {
	job, err := r.get(jobID)
	if err != nil {
		return err
	}
	job.Active = false
	return nil
}

func (r *fakeJobRepo) ListByParent(_ context.Context, parentID string) ([]*models.Job, error) {
	var jobs []*models.Job
	for _, job := range r.jobs {
		if job.ParentID == parentID {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (r *fakeJobRepo) ListOpen(_ context.Context, now time.Time, limit int) ([]*models.Job, error) {
	var jobs []*models.Job
	for _, job := range r.jobs {
		if job.Active && !job.IsAwarded() && job.StartDateTime.After(now) {
			jobs = append(jobs, job)
		}
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].StartDateTime.Before(jobs[j].StartDateTime)
	})
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

func (r *fakeJobRepo) ListAwardedTo(_ context.Context, workerID string) ([]*models.Job, error) {
	var jobs []*models.Job
	for _, job := range r.jobs {
		if job.AwardedTo(workerID) {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (r *fakeJobRepo) ListEnteredSince(_ context.Context, since time.Time) ([]*models.Job, error) {
	var jobs []*models.Job
	for _, job := range r.jobs {
		if job.EntryDate.After(since) {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (r *fakeJobRepo) ListAwardedToSince(_ context.Context, workerID string, since time.Time) ([]*models.Job, error) {
	var jobs []*models.Job
	for _, job := range r.jobs {
		if job.AwardedTo(workerID) && job.EntryDate.After(since) {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (r *fakeJobRepo) NextUpcomingForParent(_ context.Context, parentID string, now time.Time) (*models.Job, error) {
	var next *models.Job
	for _, job := range r.jobs {
		if job.ParentID != parentID || !job.Active || !job.StartDateTime.After(now) {
			continue
		}
		if next == nil || job.StartDateTime.Before(next.StartDateTime) {
			next = job
		}
	}
	if next == nil {
		return nil, db.ErrNotFound
	}
	copied := *next
	return &copied, nil
}

func (r *fakeJobRepo) AddApplicant(_ context.Context, jobID, workerID string) error {
	job, err := r.get(jobID)
	if err != nil {
		return err
	}
	if !job.Active {
		return db.ErrJobArchived
	}
	if job.IsAwarded() {
		return db.ErrJobAwarded
	}
	if !job.HasApplicant(workerID) {
		job.Applied = append(job.Applied, workerID)
	}
	return nil
}

func (r *fakeJobRepo) RemoveApplicant(_ context.Context, jobID, workerID string) error {
	job, err := r.get(jobID)
	if err != nil {
		return err
	}
	kept := job.Applied[:0]
	for _, id := range job.Applied {
		if id != workerID {
			kept = append(kept, id)
		}
	}
	job.Applied = kept
	return nil
}

func (r *fakeJobRepo) Award(_ context.Context, jobID, workerID string) error {
	job, err := r.get(jobID)
	if err != nil {
		return err
	}
	if !job.Active {
		return db.ErrJobArchived
	}
	if job.IsAwarded() {
		return db.ErrJobAwarded
	}
	if !job.HasApplicant(workerID) {
		return db.ErrNotApplicant
	}
	job.Awarded = &workerID
	return nil
}

type fakeReviewRepo struct {
	reviews map[string]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review)}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *models.Review) error {
	if _, ok := r.reviews[review.JobID]; ok {
		return db.ErrAlreadyExists
	}
	copied := *review
	copied.ID = review.JobID
	copied.CreatedAt = time.Now()
	r.reviews[review.JobID] = &copied
	return nil
}

func (r *fakeReviewRepo) GetByJobID(_ context.Context, jobID string) (*models.Review, error) {
	review, ok := r.reviews[jobID]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *review
	return &copied, nil
}

func (r *fakeReviewRepo) ListByWorker(_ context.Context, workerID string) ([]*models.Review, error) {
	var reviews []*models.Review
	for _, review := range r.reviews {
		if review.WorkerID == workerID {
			copied := *review
			reviews = append(reviews, &copied)
		}
	}
	return reviews, nil
}

func (r *fakeReviewRepo) ListAll(_ context.Context) ([]*models.Review, error) {
	var reviews []*models.Review
	for _, review := range r.reviews {
		copied := *review
		reviews = append(reviews, &copied)
	}
	return reviews, nil
}

type fakeTokenRepo struct {
	tokens map[string]*models.DeviceToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*models.DeviceToken)}
}

func (r *fakeTokenRepo) Save(_ context.Context, token *models.DeviceToken) error {
	copied := *token
	r.tokens[token.Token] = &copied
	return nil
}

func (r *fakeTokenRepo) ListByUser(_ context.Context, userID string) ([]string, error) {
	var tokens []string
	for _, t := range r.tokens {
		if t.UserID == userID {
			tokens = append(tokens, t.Token)
		}
	}
	return tokens, nil
}

func (r *fakeTokenRepo) Delete(_ context.Context, token string) error {
	delete(r.tokens, token)
	return nil
}

// fakeNotifier records workflow notifications.
type fakeNotifier struct {
	awarded    []string
	applicants []string
}

func (n *fakeNotifier) RegisterDevice(context.Context, string, string) error { return nil }

func (n *fakeNotifier) NotifyJobAwarded(_ context.Context, job *models.Job, workerID string) {
	n.awarded = append(n.awarded, job.ID+":"+workerID)
}

func (n *fakeNotifier) NotifyNewApplicant(_ context.Context, job *models.Job, workerID string) {
	n.applicants = append(n.applicants, job.ID+":"+workerID)
}

// fakeCache is a map-backed cache that ignores expiration.
type fakeCache struct {
	entries map[string]string
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	return c.entries[key], nil
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.entries[key] = fmt.Sprintf("%v", value)
	c.sets++
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

// fakeObjectStore records uploads without touching Cloud Storage.
type fakeObjectStore struct {
	objects map[string][]byte
	types   map[string]string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte), types: make(map[string]string)}
}

func (s *fakeObjectStore) Put(_ context.Context, objectName, contentType string, data []byte) (string, error) {
	s.objects[objectName] = data
	s.types[objectName] = contentType
	return "https://storage.example.com/" + objectName, nil
}
