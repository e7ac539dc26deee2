package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded files live.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	GetURL(ctx context.Context, path string) (string, error)
}

// Config holds storage configuration.
type Config struct {
	BasePath string
	BaseURL  string
}

// NewStorage builds the configured backend. Local disk is the only backend
// right now; the interface is what the rest of the code depends on.
func NewStorage(cfg Config) (Storage, error) {
	return NewLocalStorage(cfg)
}
