package repository

import "context"

// Bucket names on the object-storage service.
const (
	BucketAvatars        = "avatars"
	BucketEstablishments = "establishments"
	BucketSpots          = "spots"
)

// StorageRepository is the blob-storage collaborator: upload-by-key plus
// public-URL retrieval. The contract is behavioral, not wire-exact.
type StorageRepository interface {
	// Upload stores bytes under bucket/key and returns the object path.
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)

	// PublicURL returns the public retrieval URL for an object path.
	PublicURL(bucket, path string) string
}
