package variantlist

import (
	"context"
	"fmt"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
)

// ServiceConfig is the configuration for the variant list service.
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

// Service lists the AI generated variants of a question.
type Service struct {
	client api.Client
	logger log.Logger
}

// NewService creates a new variant list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		client: cfg.Client,
		logger: cfg.Logger,
	}, nil
}

// Request represents the variant list request parameters.
type Request struct {
	QuestionID string
}

// Run lists the variants of a question.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Variant, error) {
	variants, err := s.client.ListVariants(ctx, req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("could not list variants: %w", err)
	}

	return variants, nil
}
