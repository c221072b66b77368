package db

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/warsonwoods/jobs-backend/internal/config"
)

// Sentinel errors shared by all repositories. gRPC status codes from the
// Firestore client are translated into these at the repository boundary so
// the rest of the application never imports grpc/codes.
var (
	ErrNotFound      = errors.New("document not found")
	ErrAlreadyExists = errors.New("document already exists")
)

var (
	fsClient        *firestore.Client
	fbAuthClient    *auth.Client
	fcmClient       *messaging.Client
	storageBucket   *gcs.BucketHandle
	storageBucketID string
)

// InitFirebase initializes the Firebase Admin SDK and the Firestore, Auth,
// Messaging and Storage clients. Credentials come from appConfig: either a
// service account file path, a base64-encoded service account JSON, or
// Application Default Credentials when neither is set.
func InitFirebase(ctx context.Context, appConfig *config.Config) error {
	if appConfig == nil {
		return fmt.Errorf("InitFirebase: appConfig cannot be nil")
	}

	var opts []option.ClientOption
	switch {
	case appConfig.GoogleApplicationCredentials != "":
		opts = append(opts, option.WithCredentialsFile(appConfig.GoogleApplicationCredentials))
	case appConfig.FirebaseServiceAccountJSONBase64 != "":
		decoded, err := base64.StdEncoding.DecodeString(appConfig.FirebaseServiceAccountJSONBase64)
		if err != nil {
			return fmt.Errorf("failed to decode FIREBASE_SERVICE_ACCOUNT_JSON_BASE64: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decoded))
	default:
		log.Println("Initializing Firebase using Application Default Credentials (ADC).")
	}

	fbConfig := &firebase.Config{
		ProjectID:     appConfig.FirebaseProjectID,
		StorageBucket: appConfig.StorageBucket,
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return fmt.Errorf("firebase.NewApp: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("app.Firestore: %w", err)
	}

	authCl, err := app.Auth(ctx)
	if err != nil {
		client.Close()
		return fmt.Errorf("app.Auth: %w", err)
	}

	msgCl, err := app.Messaging(ctx)
	if err != nil {
		client.Close()
		return fmt.Errorf("app.Messaging: %w", err)
	}

	storageCl, err := app.Storage(ctx)
	if err != nil {
		client.Close()
		return fmt.Errorf("app.Storage: %w", err)
	}
	bucket, err := storageCl.DefaultBucket()
	if err != nil {
		client.Close()
		return fmt.Errorf("storage.DefaultBucket: %w", err)
	}

	fsClient = client
	fbAuthClient = authCl
	fcmClient = msgCl
	storageBucket = bucket
	storageBucketID = appConfig.StorageBucket
	return nil
}

// GetFirestoreClient returns the global Firestore client. Callers should
// check for nil, which means InitFirebase was not called or failed.
func GetFirestoreClient() *firestore.Client {
	if fsClient == nil {
		log.Println("Warning: GetFirestoreClient called before InitFirebase or InitFirebase failed.")
	}
	return fsClient
}

// GetFirebaseAuthClient returns the global Firebase Auth client.
func GetFirebaseAuthClient() *auth.Client {
	if fbAuthClient == nil {
		log.Println("Warning: GetFirebaseAuthClient called before InitFirebase or InitFirebase failed.")
	}
	return fbAuthClient
}

// GetMessagingClient returns the global FCM client.
func GetMessagingClient() *messaging.Client {
	if fcmClient == nil {
		log.Println("Warning: GetMessagingClient called before InitFirebase or InitFirebase failed.")
	}
	return fcmClient
}

// GetStorageBucket returns the default Cloud Storage bucket handle and its
// bucket name.
func GetStorageBucket() (*gcs.BucketHandle, string) {
	if storageBucket == nil {
		log.Println("Warning: GetStorageBucket called before InitFirebase or InitFirebase failed.")
	}
	return storageBucket, storageBucketID
}
