package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/warsonwoods/jobs-backend/internal/models"
)

const deviceTokensCollection = "DeviceTokens"

// firestoreDeviceTokenRepository implements the DeviceTokenRepository
// interface using Firestore.
type firestoreDeviceTokenRepository struct {
	client *firestore.Client
}

// NewFirestoreDeviceTokenRepository creates a new instance of
// firestoreDeviceTokenRepository.
func NewFirestoreDeviceTokenRepository(client *firestore.Client) DeviceTokenRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for DeviceTokenRepository.")
	}
	return &firestoreDeviceTokenRepository{client: client}
}

// Save upserts a token document keyed by the token string, so the same
// browser re-registering just refreshes its record.
func (r *firestoreDeviceTokenRepository) Save(ctx context.Context, token *models.DeviceToken) error {
	if token.Token == "" {
		return errors.New("token cannot be empty for Save operation")
	}
	_, err := r.client.Collection(deviceTokensCollection).Doc(token.Token).Set(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to save device token for user '%s': %w", token.UserID, err)
	}
	return nil
}

// ListByUser retrieves all registered token strings for one user.
func (r *firestoreDeviceTokenRepository) ListByUser(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for ListByUser operation")
	}
	query := r.client.Collection(deviceTokensCollection).Where("userId", "==", userID)
	iter := query.Documents(ctx)
	defer iter.Stop()

	var tokens []string
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate device tokens for user '%s': %w", userID, err)
		}
		var tok models.DeviceToken
		if err := doc.DataTo(&tok); err != nil {
			log.Printf("Error decoding device token (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		tokens = append(tokens, tok.Token)
	}
	return tokens, nil
}

// Delete removes a token document, typically after FCM reports it stale.
func (r *firestoreDeviceTokenRepository) Delete(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("token cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(deviceTokensCollection).Doc(token).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return fmt.Errorf("failed to delete device token: %w", err)
	}
	return nil
}
