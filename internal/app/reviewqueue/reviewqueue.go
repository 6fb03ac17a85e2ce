package reviewqueue

import (
	"context"
	"fmt"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
)

// ServiceConfig is the configuration for the review queue service.
type ServiceConfig struct {
	Client api.Client
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Client == nil {
		return fmt.Errorf("api client is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	return nil
}

// Service lists questions waiting for review.
type Service struct {
	client api.Client
	logger log.Logger
}

// NewService creates a new review queue service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		client: cfg.Client,
		logger: cfg.Logger,
	}, nil
}

// Request represents the review queue request parameters.
type Request struct {
	// Status filters the queue; defaults to auto_flagged, the state the
	// extraction pipeline parks uncertain questions in.
	Status model.ReviewStatus
}

// Run lists the review queue.
func (s *Service) Run(ctx context.Context, req Request) ([]model.ReviewQueueItem, error) {
	status := req.Status
	if status == "" {
		status = model.ReviewStatusAutoFlagged
	}

	items, err := s.client.ReviewQueue(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("could not get review queue: %w", err)
	}

	return items, nil
}
