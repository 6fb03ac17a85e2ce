package upload

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/storage"
)

// ServiceConfig is the configuration for the upload service.
type ServiceConfig struct {
	Client  api.Client
	KV      storage.KV
	Uploads storage.UploadRepository
	Logger  log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Client == nil {
		return fmt.Errorf("api client is required")
	}
	if c.KV == nil {
		return fmt.Errorf("kv store is required")
	}
	if c.Uploads == nil {
		return fmt.Errorf("upload repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	return nil
}

// Service submits documents for extraction.
type Service struct {
	client  api.Client
	kv      storage.KV
	uploads storage.UploadRepository
	logger  log.Logger
}

// NewService creates a new upload service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		client:  cfg.Client,
		kv:      cfg.KV,
		uploads: cfg.Uploads,
		logger:  cfg.Logger,
	}, nil
}

// Request represents the upload request parameters.
type Request struct {
	Filename    string
	ContentType string
	Data        io.Reader
	// SizeBytes is the document size when known, used only for the local
	// history record.
	SizeBytes int64
}

// Run submits a document and remembers the returned job id for the set so a
// later run can resume tracking. Local persistence is best effort: the
// upload succeeds even when the local store is unavailable.
func (s *Service) Run(ctx context.Context, req Request) (*model.UploadReceipt, error) {
	s.logger.Debugf("uploading document: %s", req.Filename)

	receipt, err := s.client.UploadDocument(ctx, api.UploadDocumentRequest{
		Filename:    req.Filename,
		ContentType: req.ContentType,
		Data:        req.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("could not upload document: %w", err)
	}

	if err := s.kv.Set(ctx, storage.JobRefKey(receipt.SetID), receipt.JobID); err != nil {
		s.logger.Debugf("could not persist job ref for set %s: %s", receipt.SetID, err)
	}

	err = s.uploads.CreateUpload(ctx, model.Upload{
		ID:        ulid.Make().String(),
		SetID:     receipt.SetID,
		JobID:     receipt.JobID,
		Filename:  req.Filename,
		SizeBytes: req.SizeBytes,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warningf("could not record upload history: %s", err)
	}

	return receipt, nil
}
