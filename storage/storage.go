package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Storage abstracts where uploaded case documents live.
type Storage interface {
	// Upload stores a document and returns its storage key.
	Upload(ctx context.Context, fileID uuid.UUID, filename string, data io.Reader) (string, error)

	// Download opens a stored document by its storage key.
	Download(ctx context.Context, storageKey string) (io.ReadCloser, error)

	// Delete removes a stored document. Deleting a missing key is not an error.
	Delete(ctx context.Context, storageKey string) error
}

// Backend identifies the storage implementation.
type Backend string

const (
	BackendLocal Backend = "local"
	BackendS3    Backend = "s3"
)

// Config holds settings for the selected backend.
type Config struct {
	Backend      Backend
	LocalDir     string
	S3Bucket     string
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorage builds a Storage from an explicit config.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Backend {
	case BackendLocal:
		return NewLocalStorage(cfg.LocalDir)
	case BackendS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("S3 storage requires a bucket name")
		}
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Backend)
	}
}

// NewStorageFromEnv reads STORAGE_TYPE and related variables and builds
// the matching backend. Local storage is the development default.
func NewStorageFromEnv() (Storage, error) {
	cfg := Config{
		Backend:      Backend(envOr("STORAGE_TYPE", string(BackendLocal))),
		LocalDir:     envOr("STORAGE_LOCAL_PATH", "./storage/files"),
		S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
		S3Region:     envOr("AWS_REGION", "us-east-1"),
		AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
	return NewStorage(cfg)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// storageKey lays documents out under a year/month prefix so a bucket
// listing stays navigable. The file ID keeps keys unique even when two
// users upload the same filename.
func storageKey(fileID uuid.UUID, filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	base = sanitizeName(base)
	if base == "" {
		base = "document"
	}

	now := time.Now().UTC()
	return fmt.Sprintf("%04d/%02d/%s_%s%s", now.Year(), now.Month(), fileID, base, ext)
}

func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
