package questionget

import (
	"context"
	"errors"
	"fmt"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
)

// ServiceConfig is the configuration for the question get service.
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

// Service retrieves question detail.
type Service struct {
	client api.Client
	logger log.Logger
}

// NewService creates a new question get service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		client: cfg.Client,
		logger: cfg.Logger,
	}, nil
}

// Request represents the question get request parameters.
type Request struct {
	QuestionID string
}

// Run retrieves a question by id.
func (s *Service) Run(ctx context.Context, req Request) (*model.Question, error) {
	question, err := s.client.GetQuestion(ctx, req.QuestionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("question not found: %s: %w", req.QuestionID, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get question: %w", err)
	}

	return question, nil
}
