package models

import "time"

// Job represents a posting document in the Jobs collection.
//
// Awarded is a pointer so that an open job round-trips as a Firestore null,
// which is what the open-jobs query filters on. Jobs are never deleted;
// archiving sets Active to false and there is no way back.
type Job struct {
	ID            string    `json:"id" firestore:"-"`
	ParentID      string    `json:"parentId" firestore:"parentId"`
	Title         string    `json:"title" firestore:"title"`
	Description   string    `json:"description" firestore:"description"`
	Location      string    `json:"location,omitempty" firestore:"location,omitempty"`
	StartDateTime time.Time `json:"startDateTime" firestore:"startDateTime"`
	EntryDate     time.Time `json:"entryDate" firestore:"entryDate"`
	Active        bool      `json:"active" firestore:"active"`
	Baby          bool      `json:"baby" firestore:"baby"`
	Pet           bool      `json:"pet" firestore:"pet"`
	Home          bool      `json:"home" firestore:"home"`
	Applied       []string  `json:"applied" firestore:"applied"`
	Awarded       *string   `json:"awarded" firestore:"awarded"`
}

// IsAwarded reports whether the award decision has been made. The decision
// is terminal; there is no unaward operation.
func (j *Job) IsAwarded() bool { return j.Awarded != nil && *j.Awarded != "" }

// AwardedTo reports whether the job was awarded to the given worker.
func (j *Job) AwardedTo(workerID string) bool {
	return j.Awarded != nil && *j.Awarded == workerID
}

// HasApplicant reports whether the worker is in the applied list.
func (j *Job) HasApplicant(workerID string) bool {
	for _, id := range j.Applied {
		if id == workerID {
			return true
		}
	}
	return false
}

// AcceptsApplications reports whether a worker may still apply: the job
// must be active and the award decision still open.
func (j *Job) AcceptsApplications() bool {
	return j.Active && !j.IsAwarded()
}

// Reviewable reports whether the parent may review the awarded worker:
// the job was awarded and its start time has passed.
func (j *Job) Reviewable(now time.Time) bool {
	return j.IsAwarded() && j.StartDateTime.Before(now)
}
