package db

import (
	"context"
	"fmt"
	"log"

	gcs "cloud.google.com/go/storage"
)

// ObjectStore writes binary blobs to object storage and returns a public
// URL for the stored object.
type ObjectStore interface {
	Put(ctx context.Context, objectName, contentType string, data []byte) (string, error)
}

// gcsObjectStore implements ObjectStore over the default Firebase storage
// bucket.
type gcsObjectStore struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

// NewGCSObjectStore creates a new gcsObjectStore.
func NewGCSObjectStore(bucket *gcs.BucketHandle, bucketName string) ObjectStore {
	if bucket == nil {
		log.Fatal("Storage bucket is not initialized for ObjectStore.")
	}
	return &gcsObjectStore{bucket: bucket, bucketName: bucketName}
}

// Put uploads an object, overwriting any previous version, and returns its
// public download URL.
func (s *gcsObjectStore) Put(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	if objectName == "" {
		return "", fmt.Errorf("objectName cannot be empty for Put operation")
	}
	w := s.bucket.Object(objectName).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object '%s': %w", objectName, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object '%s': %w", objectName, err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, objectName), nil
}
