package storage_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YudheerRM/bidding-insights/internal/infrastructure/storage"
	"github.com/YudheerRM/bidding-insights/pkg/config"
)

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com",
		storage.PublicBaseURL(config.StorageConfig{CDNURL: "https://cdn.example.com/", Bucket: "docs"}))
	assert.Equal(t, "https://docs.nyc3.digitaloceanspaces.com",
		storage.PublicBaseURL(config.StorageConfig{Endpoint: "https://nyc3.digitaloceanspaces.com", Bucket: "docs"}))
	assert.Equal(t, "https://docs.s3.eu-west-1.amazonaws.com",
		storage.PublicBaseURL(config.StorageConfig{Region: "eu-west-1", Bucket: "docs"}))
}

func TestPresignPut_SignsLocally(t *testing.T) {
	s, err := storage.NewS3Storage(context.Background(), config.StorageConfig{
		Endpoint:  "https://nyc3.digitaloceanspaces.com",
		Region:    "us-east-1",
		AccessKey: "AKIDEXAMPLE",
		SecretKey: "secret",
		Bucket:    "docs",
		CDNURL:    "https://cdn.example.com",
	})
	require.NoError(t, err)

	url, err := s.PresignPut(context.Background(), "tender-documents/1-a.pdf", "application/pdf", 5*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "tender-documents/1-a.pdf")
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.True(t, strings.HasPrefix(url, "https://"))
	assert.Equal(t, "https://cdn.example.com/tender-documents/1-a.pdf", s.PublicURL("tender-documents/1-a.pdf"))
}
