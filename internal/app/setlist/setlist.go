package setlist

import (
	"context"
	"fmt"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
)

// ServiceConfig is the configuration for the set list service.
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

// Service lists question sets.
type Service struct {
	client api.Client
	logger log.Logger
}

// NewService creates a new set list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		client: cfg.Client,
		logger: cfg.Logger,
	}, nil
}

// Request represents the set list request parameters.
type Request struct {
	Limit  int
	Offset int
	Status model.SetStatus
}

// Run lists sets from the backend.
func (s *Service) Run(ctx context.Context, req Request) ([]model.SetSummary, error) {
	sets, err := s.client.ListSets(ctx, api.ListSetsRequest{
		Limit:  req.Limit,
		Offset: req.Offset,
		Status: req.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("could not list sets: %w", err)
	}

	return sets, nil
}
