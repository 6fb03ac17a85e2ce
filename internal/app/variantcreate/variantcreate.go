package variantcreate

import (
	"context"
	"fmt"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
)

// ServiceConfig is the configuration for the variant create service.
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

// Service generates new variants of a question.
type Service struct {
	client api.Client
	logger log.Logger
}

// NewService creates a new variant create service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		client: cfg.Client,
		logger: cfg.Logger,
	}, nil
}

// Request represents the variant create request parameters.
type Request struct {
	QuestionID string
	Type       model.VariantType
}

// Run generates a new variant for a question.
func (s *Service) Run(ctx context.Context, req Request) (*model.Variant, error) {
	variantType := req.Type
	if variantType == "" {
		variantType = model.VariantTypeParaphrase
	}

	variant, err := s.client.CreateVariant(ctx, req.QuestionID, variantType)
	if err != nil {
		return nil, fmt.Errorf("could not create variant: %w", err)
	}

	s.logger.Infof("Created %s variant %s for question %s", variant.Type, variant.ID, req.QuestionID)
	return variant, nil
}
