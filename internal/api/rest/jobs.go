package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/model"
)

// --- JSON wire types (private, matching the backend v2 schemas) ---

type uploadReceiptJSON struct {
	DocumentID string `json:"documentId"`
	SetID      string `json:"setId"`
	JobID      string `json:"jobId"`
	Status     string `json:"status"`
}

type jobDetailJSON struct {
	JobID        string  `json:"jobId"`
	SetID        string  `json:"setId"`
	Status       string  `json:"status"`
	Stage        string  `json:"stage"`
	Percent      float64 `json:"percent"`
	ErrorMessage string  `json:"errorMessage"`
}

func (j *jobDetailJSON) toModel() *model.Job {
	return &model.Job{
		ID:           j.JobID,
		SetID:        j.SetID,
		Status:       model.JobStatus(j.Status),
		Stage:        j.Stage,
		Percent:      j.Percent,
		ErrorMessage: j.ErrorMessage,
	}
}

type jobEventJSON struct {
	Status    string  `json:"status"`
	Stage     string  `json:"stage"`
	Percent   float64 `json:"percent"`
	CreatedAt string  `json:"createdAt"`
}

type jobEventListJSON struct {
	JobID  string         `json:"jobId"`
	Events []jobEventJSON `json:"events"`
}

// --- api.Client implementation ---

func (c *Client) UploadDocument(ctx context.Context, req api.UploadDocumentRequest) (*model.UploadReceipt, error) {
	if req.Filename == "" {
		return nil, fmt.Errorf("filename is required: %w", model.ErrNotValid)
	}
	if req.Data == nil {
		return nil, fmt.Errorf("document data is required: %w", model.ErrNotValid)
	}

	body, contentType, err := multipartBody(req.Filename, req.ContentType, req.Data)
	if err != nil {
		return nil, fmt.Errorf("building upload body: %w", err)
	}

	var wire uploadReceiptJSON
	if err := c.do(ctx, http.MethodPost, "/v2/documents", body, contentType, &wire); err != nil {
		return nil, fmt.Errorf("uploading document: %w", err)
	}

	c.logger.Debugf("Uploaded document %s (set %s, job %s)", wire.DocumentID, wire.SetID, wire.JobID)

	return &model.UploadReceipt{
		DocumentID: wire.DocumentID,
		SetID:      wire.SetID,
		JobID:      wire.JobID,
		Status:     model.JobStatus(wire.Status),
	}, nil
}

func (c *Client) GetJob(ctx context.Context, jobID string) (*model.Job, error) {
	var wire jobDetailJSON
	err := c.getJSON(ctx, "/v2/jobs/"+url.PathEscape(jobID), &wire)
	if err != nil {
		return nil, fmt.Errorf("getting job %s: %w", jobID, err)
	}
	return wire.toModel(), nil
}

func (c *Client) ListJobEvents(ctx context.Context, jobID string) ([]model.JobEvent, error) {
	var wire jobEventListJSON
	err := c.getJSON(ctx, "/v2/jobs/"+url.PathEscape(jobID)+"/events", &wire)
	if err != nil {
		return nil, fmt.Errorf("listing events for job %s: %w", jobID, err)
	}

	events := make([]model.JobEvent, 0, len(wire.Events))
	for _, e := range wire.Events {
		events = append(events, model.JobEvent{
			Status:    model.JobStatus(e.Status),
			Stage:     e.Stage,
			Percent:   e.Percent,
			CreatedAt: parseTime(e.CreatedAt),
		})
	}
	return events, nil
}
