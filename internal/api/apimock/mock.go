// Package apimock has mocks for the backend API client.
package apimock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/model"
)

// MockClient is a mock implementation of api.Client.
type MockClient struct {
	mock.Mock
}

var _ api.Client = (*MockClient)(nil)

func (m *MockClient) UploadDocument(ctx context.Context, req api.UploadDocumentRequest) (*model.UploadReceipt, error) {
	args := m.Called(ctx, req)
	receipt, _ := args.Get(0).(*model.UploadReceipt)
	return receipt, args.Error(1)
}

func (m *MockClient) GetJob(ctx context.Context, jobID string) (*model.Job, error) {
	args := m.Called(ctx, jobID)
	job, _ := args.Get(0).(*model.Job)
	return job, args.Error(1)
}

func (m *MockClient) ListJobEvents(ctx context.Context, jobID string) ([]model.JobEvent, error) {
	args := m.Called(ctx, jobID)
	events, _ := args.Get(0).([]model.JobEvent)
	return events, args.Error(1)
}

func (m *MockClient) ListSets(ctx context.Context, req api.ListSetsRequest) ([]model.SetSummary, error) {
	args := m.Called(ctx, req)
	sets, _ := args.Get(0).([]model.SetSummary)
	return sets, args.Error(1)
}

func (m *MockClient) GetSet(ctx context.Context, setID string) (*model.Set, error) {
	args := m.Called(ctx, setID)
	set, _ := args.Get(0).(*model.Set)
	return set, args.Error(1)
}

func (m *MockClient) DeleteSet(ctx context.Context, setID string) error {
	args := m.Called(ctx, setID)
	return args.Error(0)
}

func (m *MockClient) ListSetQuestions(ctx context.Context, setID string) ([]model.QuestionSummary, error) {
	args := m.Called(ctx, setID)
	questions, _ := args.Get(0).([]model.QuestionSummary)
	return questions, args.Error(1)
}

func (m *MockClient) GetQuestion(ctx context.Context, questionID string) (*model.Question, error) {
	args := m.Called(ctx, questionID)
	question, _ := args.Get(0).(*model.Question)
	return question, args.Error(1)
}

func (m *MockClient) ReprocessQuestion(ctx context.Context, questionID string) (*model.Question, error) {
	args := m.Called(ctx, questionID)
	question, _ := args.Get(0).(*model.Question)
	return question, args.Error(1)
}

func (m *MockClient) ListVariants(ctx context.Context, questionID string) ([]model.Variant, error) {
	args := m.Called(ctx, questionID)
	variants, _ := args.Get(0).([]model.Variant)
	return variants, args.Error(1)
}

func (m *MockClient) CreateVariant(ctx context.Context, questionID string, variantType model.VariantType) (*model.Variant, error) {
	args := m.Called(ctx, questionID, variantType)
	variant, _ := args.Get(0).(*model.Variant)
	return variant, args.Error(1)
}

func (m *MockClient) CreateHint(ctx context.Context, req api.HintRequest) (*model.Hint, error) {
	args := m.Called(ctx, req)
	hint, _ := args.Get(0).(*model.Hint)
	return hint, args.Error(1)
}

func (m *MockClient) ReviewQueue(ctx context.Context, reviewStatus model.ReviewStatus) ([]model.ReviewQueueItem, error) {
	args := m.Called(ctx, reviewStatus)
	items, _ := args.Get(0).([]model.ReviewQueueItem)
	return items, args.Error(1)
}

func (m *MockClient) ApplyReview(ctx context.Context, questionID string, action model.ReviewAction) (*model.Question, error) {
	args := m.Called(ctx, questionID, action)
	question, _ := args.Get(0).(*model.Question)
	return question, args.Error(1)
}
