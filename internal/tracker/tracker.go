// Package tracker reconciles a server-side asynchronous extraction job with
// locally observed state, across polling ticks and client restarts.
//
// The server is authoritative: job and set are two independently-polled,
// eventually-consistent views of the same underlying state and are never
// assumed to update atomically together.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/storage"
)

const (
	// DefaultInterval is the default polling interval.
	DefaultInterval = 2 * time.Second

	// displayedEventCap is the maximum number of job events exposed on a
	// snapshot, newest first.
	displayedEventCap = 8
)

// State is the client-observed session state.
type State string

const (
	// StateUnresolved means no job id is known yet.
	StateUnresolved State = "unresolved"
	// StatePolling means a job id is known and polling continues.
	StatePolling State = "resolved-polling"
	// StateSettled means polling has stopped for good within this session.
	StateSettled State = "resolved-settled"
)

// Snapshot is an immutable view of the tracked job handed to observers after
// every poll cycle. Last-good data survives individual fetch failures; only
// the error strings change.
type Snapshot struct {
	SetID string
	// JobID is empty while the session is unresolved.
	JobID string
	State State

	Job *model.Job
	Set *model.Set
	// Events are the most recent observations, newest first, capped.
	Events []model.JobEvent

	// Inline, non-fatal fetch errors for the last cycle. Empty when the
	// corresponding fetch succeeded.
	JobErr    string
	EventsErr string
	SetErr    string
}

// Config is the configuration for the tracker.
type Config struct {
	Client api.Client
	// KV remembers resolved job ids per set (best effort, failures are
	// swallowed).
	KV       storage.KV
	Interval time.Duration
	Logger   log.Logger
}

func (c *Config) defaults() error {
	if c.Client == nil {
		return fmt.Errorf("api client is required")
	}
	if c.KV == nil {
		return fmt.Errorf("kv store is required")
	}
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "tracker.Tracker"})
	return nil
}

// Tracker creates polling sessions for extraction jobs.
type Tracker struct {
	client   api.Client
	kv       storage.KV
	interval time.Duration
	logger   log.Logger
}

// New creates a new tracker.
func New(cfg Config) (*Tracker, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Tracker{
		client:   cfg.Client,
		kv:       cfg.KV,
		interval: cfg.Interval,
		logger:   cfg.Logger,
	}, nil
}

// Request are the parameters for starting a tracking session.
type Request struct {
	SetID string
	// JobID is an explicitly supplied job id (e.g. straight from an upload).
	// When empty the tracker falls back to the locally remembered id, then
	// to the set's server-reported latest job.
	JobID string
	// OnSnapshot, when set, is called after every poll cycle with the
	// current snapshot. Called from the session goroutine.
	OnSnapshot func(Snapshot)
}

// Session is a handle to a running tracking session.
type Session struct {
	tracker *Tracker
	req     Request

	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	stopped  bool
	snapshot Snapshot
}

// Start begins a tracking session for a set. The session polls until the job
// settles (job terminal and set out of its transitional statuses), the
// context is cancelled, or Stop is called.
func (t *Tracker) Start(ctx context.Context, req Request) (*Session, error) {
	if req.SetID == "" {
		return nil, fmt.Errorf("set id is required: %w", model.ErrNotValid)
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &Session{
		tracker: t,
		req:     req,
		cancel:  cancel,
		done:    make(chan struct{}),
		snapshot: Snapshot{
			SetID: req.SetID,
			State: StateUnresolved,
		},
	}

	// Resolve the job id before the first tick: explicit id wins, then the
	// locally remembered one. The set's latestJobId fallback needs a set
	// fetch and is handled inside the loop.
	jobID := req.JobID
	if jobID == "" {
		jobID = t.storedJobID(ctx, req.SetID)
	}
	if jobID != "" {
		s.resolve(ctx, jobID)
	}

	go s.run(ctx)

	return s, nil
}

// Stop cancels the session. In-flight fetch results are discarded and no
// further ticks run. Safe to call multiple times.
func (s *Session) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
	s.cancel()
}

// Done is closed once the session has fully stopped, either settled or
// cancelled.
func (s *Session) Done() <-chan struct{} { return s.done }

// Snapshot returns the latest snapshot.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// resolve fixes the session's job id and persists it for future runs.
// Persistence is best effort: local storage failures never block tracking.
func (s *Session) resolve(ctx context.Context, jobID string) {
	s.mu.Lock()
	s.snapshot.JobID = jobID
	s.snapshot.State = StatePolling
	s.mu.Unlock()

	err := s.tracker.kv.Set(ctx, storage.JobRefKey(s.req.SetID), jobID)
	if err != nil {
		s.tracker.logger.Debugf("Could not persist job ref for set %s: %s", s.req.SetID, err)
	}
}

// storedJobID returns the locally remembered job id for a set, if any.
func (t *Tracker) storedJobID(ctx context.Context, setID string) string {
	jobID, err := t.kv.Get(ctx, storage.JobRefKey(setID))
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			t.logger.Debugf("Could not read job ref for set %s: %s", setID, err)
		}
		return ""
	}
	return jobID
}

// run is the session loop. Ticks never overlap: the next tick is scheduled
// only after the previous cycle completed.
func (s *Session) run(ctx context.Context) {
	defer close(s.done)
	defer s.cancel()

	ticker := time.NewTicker(s.tracker.interval)
	defer ticker.Stop()

	for {
		keepPolling := s.cycle(ctx)
		if !keepPolling {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// cycle runs one poll cycle and reports whether polling should continue.
// The continue/stop decision is re-evaluated after every cycle.
func (s *Session) cycle(ctx context.Context) bool {
	snap := s.Snapshot()

	// The set view drives the latestJobId fallback and the stop decision.
	set, setErr := s.tracker.client.GetSet(ctx, s.req.SetID)

	var job *model.Job
	var events []model.JobEvent
	var jobErr, eventsErr error

	jobID := snap.JobID
	if jobID == "" && setErr == nil && set.LatestJobID != "" {
		jobID = set.LatestJobID
		s.resolve(ctx, jobID)
	}

	if jobID != "" {
		// Job detail and event history are independent and idempotent;
		// fetch them together and await both.
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			job, jobErr = s.tracker.client.GetJob(ctx, jobID)
		}()
		go func() {
			defer wg.Done()
			events, eventsErr = s.tracker.client.ListJobEvents(ctx, jobID)
		}()
		wg.Wait()
	}

	s.mu.Lock()
	if s.stopped || ctx.Err() != nil {
		// The session is no longer relevant, drop the in-flight results.
		s.mu.Unlock()
		return false
	}

	// Apply results, keeping last-good data on per-fetch failures.
	s.snapshot.SetErr = errString(setErr)
	if setErr == nil {
		s.snapshot.Set = set
	}
	s.snapshot.JobErr = errString(jobErr)
	if jobErr == nil && job != nil {
		s.snapshot.Job = job
	}
	s.snapshot.EventsErr = errString(eventsErr)
	if eventsErr == nil && events != nil {
		s.snapshot.Events = reduceEvents(events)
	}

	keepPolling := continuePolling(s.snapshot.Job, s.snapshot.Set)
	if !keepPolling {
		// No transition back from settled within a session.
		s.snapshot.State = StateSettled
	}

	snap = s.snapshot
	s.mu.Unlock()

	if s.req.OnSnapshot != nil {
		s.req.OnSnapshot(snap)
	}

	return keepPolling
}

// continuePolling decides whether another tick is needed: poll while the job
// is queued/running, or while the set is still transitional (which covers
// the window where no job detail has been fetched at all).
func continuePolling(job *model.Job, set *model.Set) bool {
	if job != nil && !job.Status.Terminal() {
		return true
	}
	if set != nil && set.Status.Transitional() {
		return true
	}
	// Neither view is known yet, keep trying.
	if job == nil && set == nil {
		return true
	}
	// With only a terminal job and no set view we cannot confirm the set has
	// left its transitional statuses.
	if set == nil {
		return true
	}
	return false
}

// reduceEvents returns the display view of an event history: newest first,
// capped. The input is ordered oldest first as returned by the server, but
// out-of-order arrival is tolerated by not assuming anything beyond order
// of appearance.
func reduceEvents(events []model.JobEvent) []model.JobEvent {
	if len(events) > displayedEventCap {
		events = events[len(events)-displayedEventCap:]
	}

	reduced := make([]model.JobEvent, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		reduced = append(reduced, events[i])
	}
	return reduced
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
