package api

import (
	"context"
	"io"

	"github.com/sedu-app/sedu/internal/model"
)

// UploadDocumentRequest are the parameters for submitting a document.
type UploadDocumentRequest struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

// ListSetsRequest are the parameters for listing sets.
type ListSetsRequest struct {
	Limit  int
	Offset int
	// Status filters by set status when not empty.
	Status model.SetStatus
}

// HintRequest are the parameters for requesting a tutoring hint.
type HintRequest struct {
	QuestionID    string
	Level         model.HintLevel
	RecentChat    []model.ChatTurn
	StrokeSummary string
}

// Client knows how to talk to the sedu extraction backend API.
//
// All calls are synchronous and idempotent unless noted; non-2xx responses
// are returned as model.APIError (404s also match model.ErrNotFound).
type Client interface {
	UploadDocument(ctx context.Context, req UploadDocumentRequest) (*model.UploadReceipt, error)
	GetJob(ctx context.Context, jobID string) (*model.Job, error)
	ListJobEvents(ctx context.Context, jobID string) ([]model.JobEvent, error)
	ListSets(ctx context.Context, req ListSetsRequest) ([]model.SetSummary, error)
	GetSet(ctx context.Context, setID string) (*model.Set, error)
	DeleteSet(ctx context.Context, setID string) error
	ListSetQuestions(ctx context.Context, setID string) ([]model.QuestionSummary, error)
	GetQuestion(ctx context.Context, questionID string) (*model.Question, error)
	ReprocessQuestion(ctx context.Context, questionID string) (*model.Question, error)
	ListVariants(ctx context.Context, questionID string) ([]model.Variant, error)
	CreateVariant(ctx context.Context, questionID string, variantType model.VariantType) (*model.Variant, error)
	CreateHint(ctx context.Context, req HintRequest) (*model.Hint, error)
	ReviewQueue(ctx context.Context, reviewStatus model.ReviewStatus) ([]model.ReviewQueueItem, error)
	ApplyReview(ctx context.Context, questionID string, action model.ReviewAction) (*model.Question, error)
}
