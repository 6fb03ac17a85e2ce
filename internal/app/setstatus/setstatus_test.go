package setstatus_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sedu-app/sedu/internal/api/apimock"
	"github.com/sedu-app/sedu/internal/app/setstatus"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/storage/storagemock"
)

func TestServiceRun(t *testing.T) {
	readySet := &model.Set{ID: "set_1", Status: model.SetStatusReady, LatestJobID: "job_1"}
	noJobSet := &model.Set{ID: "set_1", Status: model.SetStatusCreated}
	doneJob := &model.Job{ID: "job_1", SetID: "set_1", Status: model.JobStatusDone, Stage: "completed", Percent: 100}
	events := []model.JobEvent{
		{Status: model.JobStatusQueued, Stage: "preprocess"},
		{Status: model.JobStatusDone, Stage: "completed", Percent: 100},
	}

	tests := map[string]struct {
		mock      func(mc *apimock.MockClient, mkv *storagemock.MockKV)
		req       setstatus.Request
		expResult *setstatus.Response
		expErr    error
	}{
		"the server-reported latest job should be preferred": {
			mock: func(mc *apimock.MockClient, mkv *storagemock.MockKV) {
				mc.On("GetSet", mock.Anything, "set_1").Once().Return(readySet, nil)
				mc.On("GetJob", mock.Anything, "job_1").Once().Return(doneJob, nil)
				mc.On("ListJobEvents", mock.Anything, "job_1").Once().Return(events, nil)
			},
			req: setstatus.Request{SetID: "set_1"},
			expResult: &setstatus.Response{
				Set: readySet,
				Job: doneJob,
				Events: []model.JobEvent{
					{Status: model.JobStatusDone, Stage: "completed", Percent: 100},
					{Status: model.JobStatusQueued, Stage: "preprocess"},
				},
			},
		},
		"without a server-reported job the locally remembered one should be used": {
			mock: func(mc *apimock.MockClient, mkv *storagemock.MockKV) {
				mc.On("GetSet", mock.Anything, "set_1").Once().Return(noJobSet, nil)
				mkv.On("Get", mock.Anything, "sedu:job:set_1").Once().Return("job_1", nil)
				mc.On("GetJob", mock.Anything, "job_1").Once().Return(doneJob, nil)
				mc.On("ListJobEvents", mock.Anything, "job_1").Once().Return([]model.JobEvent{}, nil)
			},
			req: setstatus.Request{SetID: "set_1"},
			expResult: &setstatus.Response{
				Set: noJobSet,
				Job: doneJob,
			},
		},
		"without any job the set alone should be returned": {
			mock: func(mc *apimock.MockClient, mkv *storagemock.MockKV) {
				mc.On("GetSet", mock.Anything, "set_1").Once().Return(noJobSet, nil)
				mkv.On("Get", mock.Anything, "sedu:job:set_1").Once().Return("", model.ErrNotFound)
			},
			req:       setstatus.Request{SetID: "set_1"},
			expResult: &setstatus.Response{Set: noJobSet},
		},
		"a job fetch failure should surface inline, not fail the request": {
			mock: func(mc *apimock.MockClient, mkv *storagemock.MockKV) {
				mc.On("GetSet", mock.Anything, "set_1").Once().Return(readySet, nil)
				mc.On("GetJob", mock.Anything, "job_1").Once().Return(nil, fmt.Errorf("something happened"))
			},
			req: setstatus.Request{SetID: "set_1"},
			expResult: &setstatus.Response{
				Set:    readySet,
				JobErr: "something happened",
			},
		},
		"a missing set should fail with not found": {
			mock: func(mc *apimock.MockClient, mkv *storagemock.MockKV) {
				mc.On("GetSet", mock.Anything, "set_2").Once().Return(nil, fmt.Errorf("boom: %w", model.ErrNotFound))
			},
			req:    setstatus.Request{SetID: "set_2"},
			expErr: model.ErrNotFound,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			mc := &apimock.MockClient{}
			mkv := &storagemock.MockKV{}
			test.mock(mc, mkv)

			svc, err := setstatus.NewService(setstatus.ServiceConfig{
				Client: mc,
				KV:     mkv,
				Logger: log.Noop,
			})
			require.NoError(err)

			resp, err := svc.Run(context.Background(), test.req)

			if test.expErr != nil {
				require.Error(err)
				require.ErrorIs(err, test.expErr)
			} else {
				require.NoError(err)
				assert.Equal(test.expResult, resp)
			}
			mc.AssertExpectations(t)
			mkv.AssertExpectations(t)
		})
	}
}
