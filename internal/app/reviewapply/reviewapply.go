package reviewapply

import (
	"context"
	"fmt"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
)

// ServiceConfig is the configuration for the review apply service.
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

// Service applies review decisions to questions.
type Service struct {
	client api.Client
	logger log.Logger
}

// NewService creates a new review apply service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		client: cfg.Client,
		logger: cfg.Logger,
	}, nil
}

// Request represents the review apply request parameters.
type Request struct {
	QuestionID string
	Reviewer   string
	Status     model.ReviewStatus
	Note       string
}

// Run applies a review decision to a question.
func (s *Service) Run(ctx context.Context, req Request) (*model.Question, error) {
	action := model.ReviewAction{
		Reviewer:     req.Reviewer,
		ReviewStatus: req.Status,
		Note:         req.Note,
	}
	if err := action.Validate(); err != nil {
		return nil, fmt.Errorf("invalid review action: %w", err)
	}

	question, err := s.client.ApplyReview(ctx, req.QuestionID, action)
	if err != nil {
		return nil, fmt.Errorf("could not apply review: %w", err)
	}

	s.logger.Infof("Applied review %s to question %s", req.Status, req.QuestionID)
	return question, nil
}
