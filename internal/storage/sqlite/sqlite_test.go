package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/storage"
	"github.com/sedu-app/sedu/internal/storage/sqlite"
)

func newRepo(t *testing.T) *sqlite.Repository {
	t.Helper()
	repo, err := sqlite.NewRepository(context.Background(), sqlite.RepositoryConfig{
		DBPath: filepath.Join(t.TempDir(), "test.db"),
		Logger: log.Noop,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestRepositoryKV(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	repo := newRepo(t)

	// Missing key.
	_, err := repo.Get(ctx, storage.JobRefKey("set_1"))
	require.ErrorIs(err, model.ErrNotFound)

	// Set and get.
	require.NoError(repo.Set(ctx, storage.JobRefKey("set_1"), "job_1"))
	got, err := repo.Get(ctx, storage.JobRefKey("set_1"))
	require.NoError(err)
	assert.Equal("job_1", got)

	// Overwrite.
	require.NoError(repo.Set(ctx, storage.JobRefKey("set_1"), "job_2"))
	got, err = repo.Get(ctx, storage.JobRefKey("set_1"))
	require.NoError(err)
	assert.Equal("job_2", got)

	// Delete, then missing again.
	require.NoError(repo.Delete(ctx, storage.JobRefKey("set_1")))
	_, err = repo.Get(ctx, storage.JobRefKey("set_1"))
	require.ErrorIs(err, model.ErrNotFound)

	// Deleting a missing key is not an error.
	require.NoError(repo.Delete(ctx, storage.JobRefKey("set_1")))
}

func TestRepositoryKVSurvivesReopen(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{DBPath: dbPath, Logger: log.Noop})
	require.NoError(err)
	require.NoError(repo.Set(ctx, storage.JobRefKey("set_1"), "job_1"))
	require.NoError(repo.Close())

	repo, err = sqlite.NewRepository(ctx, sqlite.RepositoryConfig{DBPath: dbPath, Logger: log.Noop})
	require.NoError(err)
	defer repo.Close()

	got, err := repo.Get(ctx, storage.JobRefKey("set_1"))
	require.NoError(err)
	assert.Equal("job_1", got)
}

func TestRepositoryUploads(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	repo := newRepo(t)

	uploads, err := repo.ListUploads(ctx)
	require.NoError(err)
	assert.Empty(uploads)

	first := model.Upload{
		ID:        "01JX0000000000000000000001",
		SetID:     "set_1",
		JobID:     "job_1",
		Filename:  "exam.pdf",
		SizeBytes: 1024,
		CreatedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
	second := model.Upload{
		ID:        "01JX0000000000000000000002",
		SetID:     "set_2",
		JobID:     "job_2",
		Filename:  "quiz.png",
		SizeBytes: 2048,
		CreatedAt: time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC),
	}
	require.NoError(repo.CreateUpload(ctx, first))
	require.NoError(repo.CreateUpload(ctx, second))

	uploads, err = repo.ListUploads(ctx)
	require.NoError(err)
	require.Len(uploads, 2)

	// Newest first.
	assert.Equal("quiz.png", uploads[0].Filename)
	assert.Equal("exam.pdf", uploads[1].Filename)
	assert.Equal(int64(1024), uploads[1].SizeBytes)
	assert.Equal(first.CreatedAt, uploads[1].CreatedAt)
}
