package upload_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/api/apimock"
	"github.com/sedu-app/sedu/internal/app/upload"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
	"github.com/sedu-app/sedu/internal/storage/storagemock"
)

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		config upload.ServiceConfig
		expErr bool
	}{
		"valid config should create service": {
			config: upload.ServiceConfig{
				Client:  &apimock.MockClient{},
				KV:      &storagemock.MockKV{},
				Uploads: &storagemock.MockUploadRepository{},
				Logger:  log.Noop,
			},
			expErr: false,
		},
		"missing api client should fail": {
			config: upload.ServiceConfig{
				KV:      &storagemock.MockKV{},
				Uploads: &storagemock.MockUploadRepository{},
			},
			expErr: true,
		},
		"missing kv store should fail": {
			config: upload.ServiceConfig{
				Client:  &apimock.MockClient{},
				Uploads: &storagemock.MockUploadRepository{},
			},
			expErr: true,
		},
		"missing upload repository should fail": {
			config: upload.ServiceConfig{
				Client: &apimock.MockClient{},
				KV:     &storagemock.MockKV{},
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			svc, err := upload.NewService(test.config)

			if test.expErr {
				require.Error(err)
				require.Nil(svc)
			} else {
				require.NoError(err)
				require.NotNil(svc)
			}
		})
	}
}

func TestServiceRun(t *testing.T) {
	receipt := &model.UploadReceipt{
		DocumentID: "doc_1",
		SetID:      "set_1",
		JobID:      "job_1",
		Status:     model.JobStatusQueued,
	}

	tests := map[string]struct {
		mock   func(mc *apimock.MockClient, mkv *storagemock.MockKV, mu *storagemock.MockUploadRepository)
		expErr bool
	}{
		"an upload should persist the job ref and record local history": {
			mock: func(mc *apimock.MockClient, mkv *storagemock.MockKV, mu *storagemock.MockUploadRepository) {
				mc.On("UploadDocument", mock.Anything, mock.Anything).Once().Return(receipt, nil)
				mkv.On("Set", mock.Anything, "sedu:job:set_1", "job_1").Once().Return(nil)
				mu.On("CreateUpload", mock.Anything, mock.MatchedBy(func(u model.Upload) bool {
					return u.SetID == "set_1" && u.JobID == "job_1" && u.Filename == "exam.pdf" && u.SizeBytes == 1024
				})).Once().Return(nil)
			},
		},
		"a job ref persistence failure should not fail the upload": {
			mock: func(mc *apimock.MockClient, mkv *storagemock.MockKV, mu *storagemock.MockUploadRepository) {
				mc.On("UploadDocument", mock.Anything, mock.Anything).Once().Return(receipt, nil)
				mkv.On("Set", mock.Anything, "sedu:job:set_1", "job_1").Once().Return(fmt.Errorf("disk full"))
				mu.On("CreateUpload", mock.Anything, mock.Anything).Once().Return(nil)
			},
		},
		"an upload history failure should not fail the upload": {
			mock: func(mc *apimock.MockClient, mkv *storagemock.MockKV, mu *storagemock.MockUploadRepository) {
				mc.On("UploadDocument", mock.Anything, mock.Anything).Once().Return(receipt, nil)
				mkv.On("Set", mock.Anything, "sedu:job:set_1", "job_1").Once().Return(nil)
				mu.On("CreateUpload", mock.Anything, mock.Anything).Once().Return(fmt.Errorf("disk full"))
			},
		},
		"a backend failure should fail the upload": {
			mock: func(mc *apimock.MockClient, mkv *storagemock.MockKV, mu *storagemock.MockUploadRepository) {
				mc.On("UploadDocument", mock.Anything, mock.Anything).Once().Return(nil, fmt.Errorf("something happened"))
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			mc := &apimock.MockClient{}
			mkv := &storagemock.MockKV{}
			mu := &storagemock.MockUploadRepository{}
			test.mock(mc, mkv, mu)

			svc, err := upload.NewService(upload.ServiceConfig{
				Client:  mc,
				KV:      mkv,
				Uploads: mu,
				Logger:  log.Noop,
			})
			require.NoError(err)

			got, err := svc.Run(context.Background(), upload.Request{
				Filename:    "exam.pdf",
				ContentType: "application/pdf",
				Data:        strings.NewReader("%PDF-fake"),
				SizeBytes:   1024,
			})

			if test.expErr {
				require.Error(err)
			} else {
				require.NoError(err)
				assert.Equal(receipt, got)
			}
			mc.AssertExpectations(t)
			mkv.AssertExpectations(t)
			mu.AssertExpectations(t)
		})
	}
}

// Keep the request type assembly honest: the reader is forwarded untouched to
// the API client.
func TestServiceRunForwardsDocument(t *testing.T) {
	require := require.New(t)

	mc := &apimock.MockClient{}
	mkv := &storagemock.MockKV{}
	mu := &storagemock.MockUploadRepository{}

	data := strings.NewReader("%PDF-fake")
	mc.On("UploadDocument", mock.Anything, api.UploadDocumentRequest{
		Filename:    "exam.pdf",
		ContentType: "application/pdf",
		Data:        data,
	}).Once().Return(&model.UploadReceipt{SetID: "set_1", JobID: "job_1"}, nil)
	mkv.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mu.On("CreateUpload", mock.Anything, mock.Anything).Return(nil)

	svc, err := upload.NewService(upload.ServiceConfig{Client: mc, KV: mkv, Uploads: mu, Logger: log.Noop})
	require.NoError(err)

	_, err = svc.Run(context.Background(), upload.Request{
		Filename:    "exam.pdf",
		ContentType: "application/pdf",
		Data:        data,
	})
	require.NoError(err)
	mc.AssertExpectations(t)
}
