package uploadhistory

import (
	"context"
	"fmt"

	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/storage"
)

// ServiceConfig is the configuration for the upload history service.
type ServiceConfig struct {
	Uploads storage.UploadRepository
	Logger  log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Uploads == nil {
		return fmt.Errorf("upload repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	return nil
}

// Service lists the local history of document submissions.
type Service struct {
	uploads storage.UploadRepository
	logger  log.Logger
}

// NewService creates a new upload history service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		uploads: cfg.Uploads,
		logger:  cfg.Logger,
	}, nil
}

// Request represents the upload history request parameters.
type Request struct{}

// Run lists locally recorded uploads, newest first.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Upload, error) {
	uploads, err := s.uploads.ListUploads(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list uploads: %w", err)
	}

	return uploads, nil
}
