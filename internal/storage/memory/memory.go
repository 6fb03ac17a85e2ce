package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Repository is an in-memory implementation of storage.KV and
// storage.UploadRepository. Useful for tests and ephemeral runs.
type Repository struct {
	kv      map[string]string
	uploads map[string]model.Upload
	mu      sync.RWMutex
	logger  log.Logger
}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		kv:      make(map[string]string),
		uploads: make(map[string]model.Upload),
		logger:  cfg.Logger,
	}, nil
}

// Get returns the value for a key.
func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.kv[key]
	if !ok {
		return "", fmt.Errorf("key %s: %w", key, model.ErrNotFound)
	}
	return value, nil
}

// Set stores a value under a key, replacing any previous value.
func (r *Repository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.kv[key] = value
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (r *Repository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.kv, key)
	return nil
}

// CreateUpload records a document submission in the local history.
func (r *Repository) CreateUpload(ctx context.Context, u model.Upload) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.uploads[u.ID]; ok {
		return fmt.Errorf("upload %s already exists: %w", u.ID, model.ErrNotValid)
	}
	r.uploads[u.ID] = u
	return nil
}

// ListUploads returns the local upload history, newest first.
func (r *Repository) ListUploads(ctx context.Context) ([]model.Upload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	uploads := make([]model.Upload, 0, len(r.uploads))
	for _, u := range r.uploads {
		uploads = append(uploads, u)
	}
	sort.Slice(uploads, func(i, j int) bool {
		return uploads[i].CreatedAt.After(uploads[j].CreatedAt)
	})

	return uploads, nil
}
