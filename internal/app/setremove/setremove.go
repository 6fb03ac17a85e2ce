package setremove

import (
	"context"
	"fmt"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/storage"
)

// ServiceConfig is the configuration for the set remove service.
type ServiceConfig struct {
	Client api.Client
	KV     storage.KV
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Client == nil {
		return fmt.Errorf("api client is required")
	}
	if c.KV == nil {
		return fmt.Errorf("kv store is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	return nil
}

// Service deletes question sets.
type Service struct {
	client api.Client
	kv     storage.KV
	logger log.Logger
}

// NewService creates a new set remove service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		client: cfg.Client,
		kv:     cfg.KV,
		logger: cfg.Logger,
	}, nil
}

// Request represents the set remove request parameters.
type Request struct {
	SetID string
}

// Run deletes a set on the backend and drops the locally remembered job ref.
// The local cleanup is best effort.
func (s *Service) Run(ctx context.Context, req Request) error {
	if err := s.client.DeleteSet(ctx, req.SetID); err != nil {
		return fmt.Errorf("could not delete set: %w", err)
	}

	if err := s.kv.Delete(ctx, storage.JobRefKey(req.SetID)); err != nil {
		s.logger.Debugf("could not delete job ref for set %s: %s", req.SetID, err)
	}

	s.logger.Infof("Deleted set %s", req.SetID)
	return nil
}
