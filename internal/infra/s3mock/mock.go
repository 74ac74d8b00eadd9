package s3mock

import (
	"context"
	"path"
	"sync"
	"time"

	"github.com/cineverse/core/internal/model"
)

// S3Storage is an in-memory stand-in used when no object store is
// configured.
type S3Storage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func New() *S3Storage {
	return &S3Storage{
		objects: make(map[string][]byte),
	}
}

func (s *S3Storage) Save(ctx context.Context, obj model.FileObject, readyKey *string) (string, error) {
	key := path.Join(obj.GetParent(), obj.GetFilename())
	if readyKey != nil {
		key = *readyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = obj.GetContent()

	return key, nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)

	return nil
}

func (s *S3Storage) GeneratePresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return key, nil
}
