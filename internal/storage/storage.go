package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage persists uploaded profile photos and returns the reference clients fetch them by.
type Storage interface {
	// Save stores the object under name and returns its public reference.
	Save(ctx context.Context, name string, reader io.Reader, contentType string) (string, error)
	// Delete removes the object; deleting a missing object is not an error.
	Delete(ctx context.Context, name string) error
}

// Config holds storage configuration
type Config struct {
	Type      string // local, s3
	BasePath  string // local directory
	BaseURL   string // public prefix or URL the reference is built from
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string // custom S3-compatible endpoint
}

// New creates a storage backend based on configuration.
func New(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
