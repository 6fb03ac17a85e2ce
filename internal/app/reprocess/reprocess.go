package reprocess

import (
	"context"
	"fmt"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
)

// ServiceConfig is the configuration for the reprocess service.
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

// Service requests a re-run of a question's extraction.
type Service struct {
	client api.Client
	logger log.Logger
}

// NewService creates a new reprocess service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		client: cfg.Client,
		logger: cfg.Logger,
	}, nil
}

// Request represents the reprocess request parameters.
type Request struct {
	QuestionID string
}

// Run requests reprocessing of a question and returns its updated review
// state.
func (s *Service) Run(ctx context.Context, req Request) (*model.Question, error) {
	question, err := s.client.ReprocessQuestion(ctx, req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("could not reprocess question: %w", err)
	}

	s.logger.Infof("Reprocess requested for question %s", req.QuestionID)
	return question, nil
}
