package models

import "time"

// CreateProfileRequest is the body for creating the caller's profile after
// client-side Firebase registration. Type is fixed at creation time.
type CreateProfileRequest struct {
	Name     string     `json:"name" binding:"required"`
	Email    string     `json:"email" binding:"required,email"`
	Type     string     `json:"type" binding:"required,oneof=parent worker"`
	Phone    string     `json:"phone,omitempty"`
	Address  string     `json:"address,omitempty"`
	City     string     `json:"city,omitempty"`
	State    string     `json:"state,omitempty"`
	Zip      string     `json:"zip,omitempty"`
	Baby     bool       `json:"baby"`
	Pet      bool       `json:"pet"`
	Home     bool       `json:"home"`
	Children string     `json:"children,omitempty"`
	Pets     string     `json:"pets,omitempty"`
	Mobile   string     `json:"mobile,omitempty"`
	Gender   string     `json:"gender,omitempty"`
	DOB      *time.Time `json:"dob,omitempty"`
	School   string     `json:"school,omitempty"`
	Notes    string     `json:"notes,omitempty"`
}

// UpdateProfileRequest is the body for profile edits. Role and email are
// not editable here; email changes go through the auth provider.
type UpdateProfileRequest struct {
	Name     string     `json:"name" binding:"required"`
	Phone    string     `json:"phone,omitempty"`
	Address  string     `json:"address,omitempty"`
	City     string     `json:"city,omitempty"`
	State    string     `json:"state,omitempty"`
	Zip      string     `json:"zip,omitempty"`
	Baby     bool       `json:"baby"`
	Pet      bool       `json:"pet"`
	Home     bool       `json:"home"`
	Children string     `json:"children,omitempty"`
	Pets     string     `json:"pets,omitempty"`
	Mobile   string     `json:"mobile,omitempty"`
	Gender   string     `json:"gender,omitempty"`
	DOB      *time.Time `json:"dob,omitempty"`
	School   string     `json:"school,omitempty"`
	Notes    string     `json:"notes,omitempty"`
}

// JobDraft is the body for creating or overwriting a job posting.
// At least one of Baby/Pet/Home must be true; that cross-field rule is
// checked in the service, not by binding tags.
type JobDraft struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description" binding:"required"`
	Location      string    `json:"location,omitempty"`
	StartDateTime time.Time `json:"startDateTime" binding:"required"`
	Active        bool      `json:"active"`
	Baby          bool      `json:"baby"`
	Pet           bool      `json:"pet"`
	Home          bool      `json:"home"`
}

// AwardJobRequest is the body for the award operation.
type AwardJobRequest struct {
	WorkerID string `json:"workerId" binding:"required"`
}

// SubmitReviewRequest is the body for the one-time review of an awarded job.
type SubmitReviewRequest struct {
	JobID  string `json:"jobId" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review" binding:"required"`
}

// RegisterDeviceRequest is the body for registering an FCM token.
type RegisterDeviceRequest struct {
	Token string `json:"token" binding:"required"`
}
