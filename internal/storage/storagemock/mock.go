// Package storagemock has mocks for the storage interfaces.
package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/storage"
)

// MockKV is a mock implementation of storage.KV.
type MockKV struct {
	mock.Mock
}

var _ storage.KV = (*MockKV)(nil)

func (m *MockKV) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockKV) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKV) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockUploadRepository is a mock implementation of storage.UploadRepository.
type MockUploadRepository struct {
	mock.Mock
}

var _ storage.UploadRepository = (*MockUploadRepository)(nil)

func (m *MockUploadRepository) CreateUpload(ctx context.Context, u model.Upload) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUploadRepository) ListUploads(ctx context.Context) ([]model.Upload, error) {
	args := m.Called(ctx)
	uploads, _ := args.Get(0).([]model.Upload)
	return uploads, args.Error(1)
}
