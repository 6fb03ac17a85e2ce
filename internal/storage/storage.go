package storage

import (
	"context"

	"github.com/sedu-app/sedu/internal/model"
)

// jobRefKeyPrefix is the key namespace for remembered job ids. The format
// matches the one the web client writes to browser local storage, so state
// stays recognizable across tooling.
const jobRefKeyPrefix = "sedu:job:"

// JobRefKey returns the KV key that remembers the tracked job id for a set.
func JobRefKey(setID string) string {
	return jobRefKeyPrefix + setID
}

// KV is a small client-local key-value store. It backs best-effort caches
// (like the job-id-by-set-id refs) and is always injected, never ambient.
type KV interface {
	// Get returns the value for a key, or model.ErrNotFound when absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// UploadRepository persists the local history of document submissions.
type UploadRepository interface {
	CreateUpload(ctx context.Context, u model.Upload) error
	ListUploads(ctx context.Context) ([]model.Upload, error)
}
