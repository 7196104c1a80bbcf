package upload

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/google/uuid"
)

// allowedExtensions limits uploads to the image types the site renders.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".svg":  true,
}

type Service interface {
	// Upload stores an image and returns its object URL.
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type service struct {
	store objectStore
}

func NewService(store objectStore) Service {
	return &service{store: store}
}

func (s *service) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("unsupported file type %q: %w", ext, domain.ErrBadRequest)
	}
	key := "uploads/" + uuid.NewString() + ext
	return s.store.Upload(ctx, key, r, contentType)
}

func (s *service) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, key)
}
