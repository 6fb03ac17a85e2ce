package watch

import (
	"context"
	"fmt"

	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/tracker"
)

// ServiceConfig is the configuration for the watch service.
type ServiceConfig struct {
	Tracker *tracker.Tracker
	Logger  log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Tracker == nil {
		return fmt.Errorf("tracker is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	return nil
}

// Service follows an extraction job until it settles.
type Service struct {
	tracker *tracker.Tracker
	logger  log.Logger
}

// NewService creates a new watch service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		tracker: cfg.Tracker,
		logger:  cfg.Logger,
	}, nil
}

// Request represents the watch request parameters.
type Request struct {
	SetID string
	// JobID optionally pins the job to track; otherwise the tracker resolves
	// one from local state or the set itself.
	JobID string
	// OnSnapshot is called after every poll cycle.
	OnSnapshot func(tracker.Snapshot)
}

// Run tracks the set's extraction job until it settles or the context is
// cancelled, and returns the final snapshot.
func (s *Service) Run(ctx context.Context, req Request) (*tracker.Snapshot, error) {
	s.logger.Debugf("watching set %s", req.SetID)

	session, err := s.tracker.Start(ctx, tracker.Request{
		SetID:      req.SetID,
		JobID:      req.JobID,
		OnSnapshot: req.OnSnapshot,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start tracking session: %w", err)
	}

	select {
	case <-session.Done():
	case <-ctx.Done():
		session.Stop()
		<-session.Done()
	}

	snap := session.Snapshot()
	return &snap, ctx.Err()
}
