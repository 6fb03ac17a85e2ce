package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sedu-app/sedu/internal/model"
)

type questionDetailJSON struct {
	QuestionID   string                 `json:"questionId"`
	SetID        string                 `json:"setId"`
	NumberLabel  string                 `json:"numberLabel"`
	OrderIndex   int                    `json:"orderIndex"`
	ReviewStatus string                 `json:"reviewStatus"`
	Confidence   *float64               `json:"confidence"`
	OCRText      string                 `json:"ocrText"`
	Metadata     map[string]interface{} `json:"metadata"`
	Structure    map[string]interface{} `json:"structure"`
}

func (q *questionDetailJSON) toModel() *model.Question {
	return &model.Question{
		ID:           q.QuestionID,
		SetID:        q.SetID,
		NumberLabel:  q.NumberLabel,
		OrderIndex:   q.OrderIndex,
		ReviewStatus: model.ReviewStatus(q.ReviewStatus),
		Confidence:   q.Confidence,
		OCRText:      q.OCRText,
		Metadata:     q.Metadata,
		Structure:    q.Structure,
	}
}

type questionReprocessJSON struct {
	OK           bool   `json:"ok"`
	QuestionID   string `json:"questionId"`
	SetID        string `json:"setId"`
	ReviewStatus string `json:"reviewStatus"`
}

type reviewQueueItemJSON struct {
	QuestionID   string                 `json:"questionId"`
	SetID        string                 `json:"setId"`
	NumberLabel  string                 `json:"numberLabel"`
	OrderIndex   int                    `json:"orderIndex"`
	ReviewStatus string                 `json:"reviewStatus"`
	Confidence   *float64               `json:"confidence"`
	Metadata     map[string]interface{} `json:"metadata"`
}

type reviewQueueJSON struct {
	Items []reviewQueueItemJSON `json:"items"`
	Count int                   `json:"count"`
}

type reviewPatchRequestJSON struct {
	Reviewer      string                 `json:"reviewer"`
	ReviewStatus  string                 `json:"reviewStatus"`
	Note          string                 `json:"note,omitempty"`
	MetadataPatch map[string]interface{} `json:"metadataPatch"`
}

type reviewPatchResponseJSON struct {
	QuestionID   string                 `json:"questionId"`
	ReviewStatus string                 `json:"reviewStatus"`
	Metadata     map[string]interface{} `json:"metadata"`
}

func (c *Client) GetQuestion(ctx context.Context, questionID string) (*model.Question, error) {
	var wire questionDetailJSON
	err := c.getJSON(ctx, "/v2/questions/"+url.PathEscape(questionID), &wire)
	if err != nil {
		return nil, fmt.Errorf("getting question %s: %w", questionID, err)
	}
	return wire.toModel(), nil
}

func (c *Client) ReprocessQuestion(ctx context.Context, questionID string) (*model.Question, error) {
	var wire questionReprocessJSON
	err := c.sendJSON(ctx, http.MethodPost, "/v2/questions/"+url.PathEscape(questionID)+"/reprocess", nil, &wire)
	if err != nil {
		return nil, fmt.Errorf("reprocessing question %s: %w", questionID, err)
	}

	c.logger.Debugf("Requested reprocess of question %s", questionID)

	return &model.Question{
		ID:           wire.QuestionID,
		SetID:        wire.SetID,
		ReviewStatus: model.ReviewStatus(wire.ReviewStatus),
	}, nil
}

func (c *Client) ReviewQueue(ctx context.Context, reviewStatus model.ReviewStatus) ([]model.ReviewQueueItem, error) {
	path := "/v2/review/queue"
	if reviewStatus != "" {
		q := url.Values{}
		q.Set("reviewStatus", string(reviewStatus))
		path += "?" + q.Encode()
	}

	var wire reviewQueueJSON
	if err := c.getJSON(ctx, path, &wire); err != nil {
		return nil, fmt.Errorf("getting review queue: %w", err)
	}

	items := make([]model.ReviewQueueItem, 0, len(wire.Items))
	for _, it := range wire.Items {
		items = append(items, model.ReviewQueueItem{
			QuestionID:   it.QuestionID,
			SetID:        it.SetID,
			NumberLabel:  it.NumberLabel,
			OrderIndex:   it.OrderIndex,
			ReviewStatus: model.ReviewStatus(it.ReviewStatus),
			Confidence:   it.Confidence,
			Metadata:     it.Metadata,
		})
	}
	return items, nil
}

func (c *Client) ApplyReview(ctx context.Context, questionID string, action model.ReviewAction) (*model.Question, error) {
	if err := action.Validate(); err != nil {
		return nil, fmt.Errorf("invalid review action: %w", err)
	}

	patch := action.MetadataPatch
	if patch == nil {
		patch = map[string]interface{}{}
	}
	in := reviewPatchRequestJSON{
		Reviewer:      action.Reviewer,
		ReviewStatus:  string(action.ReviewStatus),
		Note:          action.Note,
		MetadataPatch: patch,
	}

	var wire reviewPatchResponseJSON
	err := c.sendJSON(ctx, http.MethodPatch, "/v2/questions/"+url.PathEscape(questionID)+"/review", in, &wire)
	if err != nil {
		return nil, fmt.Errorf("applying review to question %s: %w", questionID, err)
	}

	c.logger.Debugf("Applied review %s to question %s", action.ReviewStatus, questionID)

	return &model.Question{
		ID:           wire.QuestionID,
		ReviewStatus: model.ReviewStatus(wire.ReviewStatus),
		Metadata:     wire.Metadata,
	}, nil
}
