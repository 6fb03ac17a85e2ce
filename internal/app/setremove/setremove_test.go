package setremove_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sedu-app/sedu/internal/api/apimock"
	"github.com/sedu-app/sedu/internal/app/setremove"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/storage/storagemock"
)

func TestServiceRun(t *testing.T) {
	tests := map[string]struct {
		mock   func(mc *apimock.MockClient, mkv *storagemock.MockKV)
		expErr bool
	}{
		"removing a set should also drop the local job ref": {
			mock: func(mc *apimock.MockClient, mkv *storagemock.MockKV) {
				mc.On("DeleteSet", mock.Anything, "set_1").Once().Return(nil)
				mkv.On("Delete", mock.Anything, "sedu:job:set_1").Once().Return(nil)
			},
		},
		"a local cleanup failure should not fail the removal": {
			mock: func(mc *apimock.MockClient, mkv *storagemock.MockKV) {
				mc.On("DeleteSet", mock.Anything, "set_1").Once().Return(nil)
				mkv.On("Delete", mock.Anything, "sedu:job:set_1").Once().Return(fmt.Errorf("disk full"))
			},
		},
		"a backend failure should fail the removal": {
			mock: func(mc *apimock.MockClient, mkv *storagemock.MockKV) {
				mc.On("DeleteSet", mock.Anything, "set_1").Once().Return(fmt.Errorf("something happened"))
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			mc := &apimock.MockClient{}
			mkv := &storagemock.MockKV{}
			test.mock(mc, mkv)

			svc, err := setremove.NewService(setremove.ServiceConfig{
				Client: mc,
				KV:     mkv,
				Logger: log.Noop,
			})
			require.NoError(err)

			err = svc.Run(context.Background(), setremove.Request{SetID: "set_1"})

			if test.expErr {
				require.Error(err)
			} else {
				require.NoError(err)
			}
			mc.AssertExpectations(t)
			mkv.AssertExpectations(t)
		})
	}
}
