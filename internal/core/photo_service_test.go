package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warsonwoods/jobs-backend/internal/models"
)

func TestSanitizePicture(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantType string
		wantErr  bool
	}{
		{"png", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A}, "image/png", false},
		{"jpeg jfif", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, "image/jpeg", false},
		{"jpeg exif", []byte{0xFF, 0xD8, 0xFF, 0xE1, 0x00}, "image/jpeg", false},
		{"jpeg raw", []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x00}, "image/jpeg", false},
		{"gif rejected", []byte{0x47, 0x49, 0x46, 0x38, 0x39}, "", true},
		{"zero prefix rejected", []byte{0x00, 0x00, 0x00, 0x00, 0x01}, "", true},
		{"too short", []byte{0xFF, 0xD8}, "", true},
		{"empty", nil, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			contentType, err := SanitizePicture(tc.data)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedImage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantType, contentType)
		})
	}
}

func TestUploadProfilePhoto(t *testing.T) {
	ctx := context.Background()
	store := newFakeObjectStore()
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.Create(ctx, &models.User{ID: "uid-1", Name: "Ann", Type: models.RoleWorker}))

	svc := NewPhotoService(store, userRepo)

	data := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	url, err := svc.UploadProfilePhoto(ctx, "uid-1", data)
	require.NoError(t, err)

	assert.Equal(t, "https://storage.example.com/userImages/uid-1", url)
	assert.Equal(t, data, store.objects["userImages/uid-1"])
	assert.Equal(t, "image/png", store.types["userImages/uid-1"])

	user, err := userRepo.GetByID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, url, user.PhotoURL)
}

func TestUploadProfilePhotoRejectsUnknownType(t *testing.T) {
	svc := NewPhotoService(newFakeObjectStore(), newFakeUserRepo())

	_, err := svc.UploadProfilePhoto(context.Background(), "uid-1", []byte("not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}
