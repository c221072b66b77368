package models

import "time"

// Review represents a document in the Reviews collection.
//
// The document ID is the job ID, so Firestore itself enforces the
// one-review-per-job rule: a second Create for the same job fails with
// AlreadyExists instead of racing a pre-submission query. Reviews are
// write-once; there is no edit or delete path.
type Review struct {
	ID         string    `json:"id" firestore:"-"`
	JobID      string    `json:"jobId" firestore:"jobId"`
	WorkerID   string    `json:"workerId" firestore:"workerId"`
	ParentID   string    `json:"parentId" firestore:"parentId"`
	ParentName string    `json:"parentName,omitempty" firestore:"parentName,omitempty"`
	Rating     int       `json:"rating" firestore:"rating"`
	Review     string    `json:"review" firestore:"review"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
