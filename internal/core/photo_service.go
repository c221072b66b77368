package core

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/warsonwoods/jobs-backend/internal/db"
)

// ErrUnsupportedImage is returned when an upload is not a PNG or JPEG.
var ErrUnsupportedImage = errors.New("unsupported image type")

// Accepted magic-byte prefixes: PNG and the common JPEG variants.
var allowedImagePrefixes = map[string]string{
	"89504E47": "image/png",
	"FFD8FFDB": "image/jpeg",
	"FFD8FFE0": "image/jpeg",
	"FFD8FFE1": "image/jpeg",
}

// photoService implements the PhotoService interface.
type photoService struct {
	store    db.ObjectStore
	userRepo db.UserRepository
}

// NewPhotoService creates a new PhotoService instance.
func NewPhotoService(store db.ObjectStore, userRepo db.UserRepository) PhotoService {
	return &photoService{store: store, userRepo: userRepo}
}

// SanitizePicture inspects the first four bytes of an upload and returns
// the content type when it is a PNG or JPEG, or ErrUnsupportedImage. The
// declared Content-Type header is never trusted.
func SanitizePicture(data []byte) (string, error) {
	if len(data) < 4 {
		return "", fmt.Errorf("%w: file too short", ErrUnsupportedImage)
	}
	prefix := strings.ToUpper(hex.EncodeToString(data[:4]))
	contentType, ok := allowedImagePrefixes[prefix]
	if !ok {
		return "", fmt.Errorf("%w: prefix %s", ErrUnsupportedImage, prefix)
	}
	return contentType, nil
}

// UploadProfilePhoto validates the image, stores it at userImages/{uid}
// (overwriting any previous photo) and records the URL on the profile.
func (s *photoService) UploadProfilePhoto(ctx context.Context, userID string, data []byte) (string, error) {
	contentType, err := SanitizePicture(data)
	if err != nil {
		return "", err
	}

	objectName := "userImages/" + userID
	url, err := s.store.Put(ctx, objectName, contentType, data)
	if err != nil {
		return "", fmt.Errorf("failed to upload profile photo for user '%s': %w", userID, err)
	}

	if err := s.userRepo.SetPhotoURL(ctx, userID, url); err != nil {
		return "", fmt.Errorf("photo uploaded but profile update failed for user '%s': %w", userID, err)
	}
	return url, nil
}
