package hint

import (
	"context"
	"fmt"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
)

// ServiceConfig is the configuration for the hint service.
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

// Service requests tutoring hints for questions.
type Service struct {
	client api.Client
	logger log.Logger
}

// NewService creates a new hint service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		client: cfg.Client,
		logger: cfg.Logger,
	}, nil
}

// Request represents the hint request parameters.
type Request struct {
	QuestionID string
	Level      model.HintLevel
}

// Run requests a hint for a question.
func (s *Service) Run(ctx context.Context, req Request) (*model.Hint, error) {
	level := req.Level
	if level == "" {
		level = model.HintLevelWeak
	}

	hint, err := s.client.CreateHint(ctx, api.HintRequest{
		QuestionID: req.QuestionID,
		Level:      level,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create hint: %w", err)
	}

	return hint, nil
}
