package setstatus

import (
	"context"
	"errors"
	"fmt"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/storage"
)

// ServiceConfig is the configuration for the set status service.
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

// Service retrieves detailed set status including the latest job.
type Service struct {
	client api.Client
	kv     storage.KV
	logger log.Logger
}

// NewService creates a new set status service.
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

// Request represents the set status request parameters.
type Request struct {
	SetID string
}

// Response is the set detail plus the latest job view when one is known.
type Response struct {
	Set *model.Set
	// Job is nil when the set has no known job, or its fetch failed.
	Job *model.Job
	// Events are the job's most recent events, newest first. Nil when the
	// fetch failed or there is no job.
	Events []model.JobEvent
	// JobErr carries a non-fatal job/events fetch error for display.
	JobErr string
}

// Run retrieves the status of a set. The extraction job view is best effort:
// a job fetch failure does not fail the whole request, it is surfaced as an
// inline error instead.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	s.logger.Debugf("getting status for set: %s", req.SetID)

	set, err := s.client.GetSet(ctx, req.SetID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("set not found: %s: %w", req.SetID, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get set: %w", err)
	}

	resp := &Response{Set: set}

	// Prefer the server-reported latest job, fall back to the locally
	// remembered one.
	jobID := set.LatestJobID
	if jobID == "" {
		stored, err := s.kv.Get(ctx, storage.JobRefKey(req.SetID))
		if err == nil {
			jobID = stored
		}
	}
	if jobID == "" {
		return resp, nil
	}

	job, err := s.client.GetJob(ctx, jobID)
	if err != nil {
		resp.JobErr = err.Error()
		return resp, nil
	}
	resp.Job = job

	events, err := s.client.ListJobEvents(ctx, jobID)
	if err != nil {
		resp.JobErr = err.Error()
		return resp, nil
	}
	// Newest first for display.
	for i := len(events) - 1; i >= 0; i-- {
		resp.Events = append(resp.Events, events[i])
	}

	return resp, nil
}
