package reviewapply_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sedu-app/sedu/internal/api/apimock"
	"github.com/sedu-app/sedu/internal/app/reviewapply"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
)

func TestServiceRun(t *testing.T) {
	approved := &model.Question{ID: "q_1", SetID: "set_1", ReviewStatus: model.ReviewStatusApproved}

	tests := map[string]struct {
		mock        func(mc *apimock.MockClient)
		req         reviewapply.Request
		expErr      bool
		expNotValid bool
	}{
		"a valid review decision should be applied": {
			mock: func(mc *apimock.MockClient) {
				mc.On("ApplyReview", mock.Anything, "q_1", model.ReviewAction{
					Reviewer:     "ana",
					ReviewStatus: model.ReviewStatusApproved,
					Note:         "looks good",
				}).Once().Return(approved, nil)
			},
			req: reviewapply.Request{
				QuestionID: "q_1",
				Reviewer:   "ana",
				Status:     model.ReviewStatusApproved,
				Note:       "looks good",
			},
		},
		"an invalid review status should fail without calling the backend": {
			mock: func(mc *apimock.MockClient) {},
			req: reviewapply.Request{
				QuestionID: "q_1",
				Reviewer:   "ana",
				Status:     model.ReviewStatus("wat"),
			},
			expErr:      true,
			expNotValid: true,
		},
		"a backend failure should fail the request": {
			mock: func(mc *apimock.MockClient) {
				mc.On("ApplyReview", mock.Anything, "q_1", mock.Anything).Once().Return(nil, fmt.Errorf("something happened"))
			},
			req: reviewapply.Request{
				QuestionID: "q_1",
				Reviewer:   "ana",
				Status:     model.ReviewStatusRejected,
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			mc := &apimock.MockClient{}
			test.mock(mc)

			svc, err := reviewapply.NewService(reviewapply.ServiceConfig{
				Client: mc,
				Logger: log.Noop,
			})
			require.NoError(err)

			question, err := svc.Run(context.Background(), test.req)

			if test.expErr {
				require.Error(err)
				if test.expNotValid {
					require.ErrorIs(err, model.ErrNotValid)
				}
			} else {
				require.NoError(err)
				assert.Equal(approved, question)
			}
			mc.AssertExpectations(t)
		})
	}
}
