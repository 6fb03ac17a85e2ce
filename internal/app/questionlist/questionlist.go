package questionlist

import (
	"context"
	"fmt"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
)

// ServiceConfig is the configuration for the question list service.
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

// Service lists the questions of a set.
type Service struct {
	client api.Client
	logger log.Logger
}

// NewService creates a new question list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		client: cfg.Client,
		logger: cfg.Logger,
	}, nil
}

// Request represents the question list request parameters.
type Request struct {
	SetID string
}

// Run lists the questions of a set.
func (s *Service) Run(ctx context.Context, req Request) ([]model.QuestionSummary, error) {
	questions, err := s.client.ListSetQuestions(ctx, req.SetID)
	if err != nil {
		return nil, fmt.Errorf("could not list questions: %w", err)
	}

	return questions, nil
}
