package models

import "time"

// DeviceToken represents a document in the DeviceTokens collection.
// The document ID is the FCM registration token itself, so re-registering
// the same browser is an overwrite rather than a duplicate.
type DeviceToken struct {
	Token     string    `json:"token" firestore:"token"`
	UserID    string    `json:"userId" firestore:"userId"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
