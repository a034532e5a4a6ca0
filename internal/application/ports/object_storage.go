package ports

import (
	"context"
	"io"
	"time"
)

// ObjectStorage output port for the document bucket (S3, Spaces, MinIO...).
type ObjectStorage interface {
	// Put uploads body under key and returns the public URL of the object.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	// PresignPut returns a URL the client can PUT the object to directly.
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
	// PublicURL where the object is served once stored.
	PublicURL(key string) string
}
