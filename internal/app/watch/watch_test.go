package watch_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sedu-app/sedu/internal/api/apimock"
	"github.com/sedu-app/sedu/internal/app/watch"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/storage/storagemock"
	"github.com/sedu-app/sedu/internal/tracker"
)

func newTestTracker(t *testing.T, mc *apimock.MockClient, mkv *storagemock.MockKV) *tracker.Tracker {
	t.Helper()

	trk, err := tracker.New(tracker.Config{
		Client:   mc,
		KV:       mkv,
		Interval: time.Millisecond,
		Logger:   log.Noop,
	})
	require.NoError(t, err)
	return trk
}

func TestServiceRunUntilSettled(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	mc := &apimock.MockClient{}
	mkv := &storagemock.MockKV{}

	readySet := &model.Set{ID: "set_1", Status: model.SetStatusReady, LatestJobID: "job_1"}
	doneJob := &model.Job{ID: "job_1", SetID: "set_1", Status: model.JobStatusDone, Stage: "completed", Percent: 100}

	mkv.On("Set", mock.Anything, "sedu:job:set_1", "job_1").Once().Return(nil)
	mc.On("GetSet", mock.Anything, "set_1").Return(readySet, nil)
	mc.On("GetJob", mock.Anything, "job_1").Return(doneJob, nil)
	mc.On("ListJobEvents", mock.Anything, "job_1").Return([]model.JobEvent{}, nil)

	svc, err := watch.NewService(watch.ServiceConfig{
		Tracker: newTestTracker(t, mc, mkv),
		Logger:  log.Noop,
	})
	require.NoError(err)

	var snapshots []tracker.Snapshot
	snap, err := svc.Run(context.Background(), watch.Request{
		SetID:      "set_1",
		JobID:      "job_1",
		OnSnapshot: func(s tracker.Snapshot) { snapshots = append(snapshots, s) },
	})
	require.NoError(err)

	assert.Equal(tracker.StateSettled, snap.State)
	assert.Equal(doneJob, snap.Job)
	assert.Len(snapshots, 1)
}

func TestServiceRunStopsOnContextCancel(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	mc := &apimock.MockClient{}
	mkv := &storagemock.MockKV{}

	extractingSet := &model.Set{ID: "set_1", Status: model.SetStatusExtracting, LatestJobID: "job_1"}
	runningJob := &model.Job{ID: "job_1", SetID: "set_1", Status: model.JobStatusRunning, Stage: "ocr", Percent: 40}

	mkv.On("Set", mock.Anything, "sedu:job:set_1", "job_1").Return(nil)
	mc.On("GetSet", mock.Anything, "set_1").Return(extractingSet, nil)
	mc.On("GetJob", mock.Anything, "job_1").Return(runningJob, nil)
	mc.On("ListJobEvents", mock.Anything, "job_1").Return([]model.JobEvent{}, nil)

	svc, err := watch.NewService(watch.ServiceConfig{
		Tracker: newTestTracker(t, mc, mkv),
		Logger:  log.Noop,
	})
	require.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	firstSnap := make(chan struct{}, 1)
	go func() {
		<-firstSnap
		cancel()
	}()

	var gotFirst bool
	snap, err := svc.Run(ctx, watch.Request{
		SetID: "set_1",
		JobID: "job_1",
		OnSnapshot: func(tracker.Snapshot) {
			if !gotFirst {
				gotFirst = true
				firstSnap <- struct{}{}
			}
		},
	})
	require.ErrorIs(err, context.Canceled)
	require.NotNil(snap)

	// The session was cancelled before settling, the last snapshot survives.
	assert.Equal(tracker.StatePolling, snap.State)
	assert.Equal(runningJob, snap.Job)
}
