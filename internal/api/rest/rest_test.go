package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/api/rest"
	"github.com/sedu-app/sedu/internal/model"
)

// newTestClient creates a rest client backed by an httptest server.
func newTestClient(t *testing.T, handler http.Handler) *rest.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := rest.NewClient(rest.ClientConfig{BaseURL: server.URL})
	require.NoError(t, err)

	return c
}

func TestClientUploadDocument(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/v2/documents", r.URL.Path)

		// The document travels as a single multipart "file" field.
		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(err)
		require.Equal("multipart/form-data", mediaType)

		mr := multipart.NewReader(r.Body, params["boundary"])
		part, err := mr.NextPart()
		require.NoError(err)
		assert.Equal("file", part.FormName())
		assert.Equal("exam.pdf", part.FileName())
		assert.Equal("application/pdf", part.Header.Get("Content-Type"))

		data, err := io.ReadAll(part)
		require.NoError(err)
		assert.Equal("%PDF-fake", string(data))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"documentId": "doc_1",
			"setId":      "set_1",
			"jobId":      "job_1",
			"status":     "queued",
		})
	})

	c := newTestClient(t, handler)
	receipt, err := c.UploadDocument(context.Background(), api.UploadDocumentRequest{
		Filename:    "exam.pdf",
		ContentType: "application/pdf",
		Data:        strings.NewReader("%PDF-fake"),
	})
	require.NoError(err)

	assert.Equal(&model.UploadReceipt{
		DocumentID: "doc_1",
		SetID:      "set_1",
		JobID:      "job_1",
		Status:     model.JobStatusQueued,
	}, receipt)
}

func TestClientUploadDocumentValidation(t *testing.T) {
	tests := map[string]struct {
		req api.UploadDocumentRequest
	}{
		"missing filename should fail": {
			req: api.UploadDocumentRequest{Data: strings.NewReader("x")},
		},
		"missing data should fail": {
			req: api.UploadDocumentRequest{Filename: "exam.pdf"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			c := newTestClient(t, http.NotFoundHandler())
			_, err := c.UploadDocument(context.Background(), test.req)
			require.Error(err)
			require.ErrorIs(err, model.ErrNotValid)
		})
	}
}

func TestClientGetJob(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v2/jobs/job_1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jobId":   "job_1",
			"setId":   "set_1",
			"status":  "running",
			"stage":   "ocr",
			"percent": 42.5,
		})
	})

	c := newTestClient(t, handler)
	job, err := c.GetJob(context.Background(), "job_1")
	require.NoError(err)

	assert.Equal(&model.Job{
		ID:      "job_1",
		SetID:   "set_1",
		Status:  model.JobStatusRunning,
		Stage:   "ocr",
		Percent: 42.5,
	}, job)
}

func TestClientListJobEvents(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v2/jobs/job_1/events", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jobId": "job_1",
			"events": []map[string]interface{}{
				{"status": "queued", "stage": "preprocess", "percent": 0, "createdAt": "2026-08-30T10:00:00Z"},
				{"status": "running", "stage": "ocr", "percent": 40, "createdAt": "2026-08-30T10:00:05Z"},
			},
		})
	})

	c := newTestClient(t, handler)
	events, err := c.ListJobEvents(context.Background(), "job_1")
	require.NoError(err)

	require.Len(events, 2)
	assert.Equal(model.JobStatusQueued, events[0].Status)
	assert.Equal("preprocess", events[0].Stage)
	assert.Equal(model.JobStatusRunning, events[1].Status)
	assert.Equal(40.0, events[1].Percent)
	assert.Equal("2026-08-30T10:00:05Z", events[1].CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
}

func TestClientListSets(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v2/sets", r.URL.Path)
		assert.Equal("10", r.URL.Query().Get("limit"))
		assert.Equal("5", r.URL.Query().Get("offset"))
		assert.Equal("ready", r.URL.Query().Get("status"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"sets": []map[string]interface{}{
				{"setId": "set_1", "status": "ready", "title": "Algebra exam", "questionCount": 12},
			},
		})
	})

	c := newTestClient(t, handler)
	sets, err := c.ListSets(context.Background(), api.ListSetsRequest{
		Limit:  10,
		Offset: 5,
		Status: model.SetStatusReady,
	})
	require.NoError(err)

	require.Len(sets, 1)
	assert.Equal("set_1", sets[0].ID)
	assert.Equal(model.SetStatusReady, sets[0].Status)
	assert.Equal(12, sets[0].QuestionCount)
}

func TestClientErrorDetail(t *testing.T) {
	tests := map[string]struct {
		status      int
		body        string
		expDetail   string
		expNotFound bool
	}{
		"a backend detail message should surface in the error": {
			status:    http.StatusConflict,
			body:      `{"detail": "document already processing"}`,
			expDetail: "document already processing",
		},
		"a 404 should match the not found sentinel": {
			status:      http.StatusNotFound,
			body:        `{"detail": "set not found"}`,
			expDetail:   "set not found",
			expNotFound: true,
		},
		"a body without detail should fall back to the status code": {
			status:    http.StatusInternalServerError,
			body:      `boom`,
			expDetail: "request failed with status 500",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
				_, _ = w.Write([]byte(test.body))
			})

			c := newTestClient(t, handler)
			_, err := c.GetSet(context.Background(), "set_1")
			require.Error(err)

			var apiErr model.APIError
			require.True(errors.As(err, &apiErr))
			assert.Equal(test.status, apiErr.StatusCode)
			assert.Equal(test.expDetail, apiErr.Detail)
			assert.Equal(test.expNotFound, errors.Is(err, model.ErrNotFound))
		})
	}
}

func TestClientApplyReview(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPatch, r.Method)
		assert.Equal("/v2/questions/q_1/review", r.URL.Path)

		var body map[string]interface{}
		require.NoError(json.NewDecoder(r.Body).Decode(&body))
		assert.Equal("ana", body["reviewer"])
		assert.Equal("approved", body["reviewStatus"])
		// The metadata patch is always present, empty when there is nothing to change.
		assert.Equal(map[string]interface{}{}, body["metadataPatch"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":           true,
			"questionId":   "q_1",
			"setId":        "set_1",
			"reviewStatus": "approved",
		})
	})

	c := newTestClient(t, handler)
	question, err := c.ApplyReview(context.Background(), "q_1", model.ReviewAction{
		Reviewer:     "ana",
		ReviewStatus: model.ReviewStatusApproved,
	})
	require.NoError(err)

	assert.Equal("q_1", question.ID)
	assert.Equal(model.ReviewStatusApproved, question.ReviewStatus)
}

func TestClientCreateHint(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/v2/questions/q_1/hint", r.URL.Path)

		var body map[string]interface{}
		require.NoError(json.NewDecoder(r.Body).Decode(&body))
		assert.Equal("weak", body["level"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"questionId": "q_1",
			"level":      "weak",
			"hint":       "Start from the definition.",
			"model":      "gemini-2.5-flash",
		})
	})

	c := newTestClient(t, handler)
	hint, err := c.CreateHint(context.Background(), api.HintRequest{QuestionID: "q_1"})
	require.NoError(err)

	assert.Equal(&model.Hint{
		QuestionID: "q_1",
		Level:      model.HintLevelWeak,
		Text:       "Start from the definition.",
		Model:      "gemini-2.5-flash",
	}, hint)
}

func TestClientCreateVariant(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/v2/questions/q_1/variants", r.URL.Path)

		var body map[string]interface{}
		require.NoError(json.NewDecoder(r.Body).Decode(&body))
		assert.Equal("numeric_swap", body["variantType"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"questionId": "q_1",
			"variant": map[string]interface{}{
				"variantId":   "var_1",
				"questionId":  "q_1",
				"variantType": "numeric_swap",
				"body":        "What is 7+7?",
				"answer":      "14",
			},
		})
	})

	c := newTestClient(t, handler)
	variant, err := c.CreateVariant(context.Background(), "q_1", model.VariantTypeNumericSwap)
	require.NoError(err)

	assert.Equal("var_1", variant.ID)
	assert.Equal(model.VariantTypeNumericSwap, variant.Type)
	assert.Equal("14", variant.Answer)
}

func TestClientDeleteSet(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodDelete, r.Method)
		assert.Equal("/v2/sets/set_1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true, "setId": "set_1"})
	})

	c := newTestClient(t, handler)
	require.NoError(c.DeleteSet(context.Background(), "set_1"))
}
