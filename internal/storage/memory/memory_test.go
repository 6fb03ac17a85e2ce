package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/storage"
	"github.com/sedu-app/sedu/internal/storage/memory"
)

func TestRepositoryKV(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	repo, err := memory.NewRepository(memory.RepositoryConfig{})
	require.NoError(err)

	_, err = repo.Get(ctx, storage.JobRefKey("set_1"))
	require.ErrorIs(err, model.ErrNotFound)

	require.NoError(repo.Set(ctx, storage.JobRefKey("set_1"), "job_1"))
	got, err := repo.Get(ctx, storage.JobRefKey("set_1"))
	require.NoError(err)
	assert.Equal("job_1", got)

	require.NoError(repo.Delete(ctx, storage.JobRefKey("set_1")))
	_, err = repo.Get(ctx, storage.JobRefKey("set_1"))
	require.ErrorIs(err, model.ErrNotFound)
}

func TestRepositoryUploads(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	repo, err := memory.NewRepository(memory.RepositoryConfig{})
	require.NoError(err)

	older := model.Upload{ID: "u1", Filename: "exam.pdf", CreatedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)}
	newer := model.Upload{ID: "u2", Filename: "quiz.png", CreatedAt: time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC)}

	require.NoError(repo.CreateUpload(ctx, older))
	require.NoError(repo.CreateUpload(ctx, newer))

	// Duplicated ids are rejected.
	err = repo.CreateUpload(ctx, older)
	require.ErrorIs(err, model.ErrNotValid)

	uploads, err := repo.ListUploads(ctx)
	require.NoError(err)
	require.Len(uploads, 2)
	assert.Equal("quiz.png", uploads[0].Filename)
	assert.Equal("exam.pdf", uploads[1].Filename)
}
