package models

import "time"

// Role values stored in the `type` field of a user document.
const (
	RoleParent = "parent"
	RoleWorker = "worker"
)

// User represents a profile document in the Users collection.
// The document ID is the Firebase Auth UID; profiles are written only by
// their owner. Parents and workers share one collection, distinguished by
// Type, with role-specific fields left empty for the other role.
type User struct {
	ID         string    `json:"id" firestore:"-"`
	Name       string    `json:"name" firestore:"name"`
	Email      string    `json:"email" firestore:"email"`
	Type       string    `json:"type" firestore:"type"`
	Phone      string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Address    string    `json:"address,omitempty" firestore:"address,omitempty"`
	City       string    `json:"city,omitempty" firestore:"city,omitempty"`
	State      string    `json:"state,omitempty" firestore:"state,omitempty"`
	Zip        string    `json:"zip,omitempty" firestore:"zip,omitempty"`
	Baby       bool      `json:"baby" firestore:"baby"`
	Pet        bool      `json:"pet" firestore:"pet"`
	Home       bool      `json:"home" firestore:"home"`
	PhotoURL   string    `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	DateJoined time.Time `json:"dateJoined" firestore:"dateJoined,serverTimestamp"`

	// Parent-only fields.
	Children string `json:"children,omitempty" firestore:"children,omitempty"`
	Pets     string `json:"pets,omitempty" firestore:"pets,omitempty"`

	// Worker-only fields.
	Mobile string     `json:"mobile,omitempty" firestore:"mobile,omitempty"`
	Gender string     `json:"gender,omitempty" firestore:"gender,omitempty"`
	DOB    *time.Time `json:"dob,omitempty" firestore:"dob,omitempty"`
	School string     `json:"school,omitempty" firestore:"school,omitempty"`
	Notes  string     `json:"notes,omitempty" firestore:"notes,omitempty"`
}

// IsParent reports whether the user registered as a job poster.
func (u *User) IsParent() bool { return u.Type == RoleParent }

// IsWorker reports whether the user registered as a job applicant.
func (u *User) IsWorker() bool { return u.Type == RoleWorker }
