package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/model"
)

type setSummaryJSON struct {
	SetID          string `json:"setId"`
	Status         string `json:"status"`
	Title          string `json:"title"`
	QuestionCount  int    `json:"questionCount"`
	SourceFilename string `json:"sourceFilename"`
}

type setListJSON struct {
	Sets   []setSummaryJSON `json:"sets"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

type setDetailJSON struct {
	SetID          string `json:"setId"`
	Status         string `json:"status"`
	LatestJobID    string `json:"latestJobId"`
	Title          string `json:"title"`
	SourceFilename string `json:"sourceFilename"`
	SourceMime     string `json:"sourceMime"`
	SourceSize     int64  `json:"sourceSize"`
	QuestionCount  int    `json:"questionCount"`
}

func (s *setDetailJSON) toModel() *model.Set {
	return &model.Set{
		ID:             s.SetID,
		Status:         model.SetStatus(s.Status),
		Title:          s.Title,
		SourceFilename: s.SourceFilename,
		SourceMime:     s.SourceMime,
		SourceSize:     s.SourceSize,
		QuestionCount:  s.QuestionCount,
		LatestJobID:    s.LatestJobID,
	}
}

type setQuestionSummaryJSON struct {
	QuestionID      string   `json:"questionId"`
	NumberLabel     string   `json:"numberLabel"`
	OrderIndex      int      `json:"orderIndex"`
	ReviewStatus    string   `json:"reviewStatus"`
	Confidence      *float64 `json:"confidence"`
	CroppedImageURL string   `json:"croppedImageUrl"`
}

type setQuestionListJSON struct {
	SetID     string                   `json:"setId"`
	Questions []setQuestionSummaryJSON `json:"questions"`
}

type setDeleteJSON struct {
	OK    bool   `json:"ok"`
	SetID string `json:"setId"`
}

func (c *Client) ListSets(ctx context.Context, req api.ListSetsRequest) ([]model.SetSummary, error) {
	q := url.Values{}
	if req.Limit > 0 {
		q.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.Offset > 0 {
		q.Set("offset", strconv.Itoa(req.Offset))
	}
	if req.Status != "" {
		q.Set("status", string(req.Status))
	}

	path := "/v2/sets"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var wire setListJSON
	if err := c.getJSON(ctx, path, &wire); err != nil {
		return nil, fmt.Errorf("listing sets: %w", err)
	}

	sets := make([]model.SetSummary, 0, len(wire.Sets))
	for _, s := range wire.Sets {
		sets = append(sets, model.SetSummary{
			ID:             s.SetID,
			Status:         model.SetStatus(s.Status),
			Title:          s.Title,
			QuestionCount:  s.QuestionCount,
			SourceFilename: s.SourceFilename,
		})
	}
	return sets, nil
}

func (c *Client) GetSet(ctx context.Context, setID string) (*model.Set, error) {
	var wire setDetailJSON
	if err := c.getJSON(ctx, "/v2/sets/"+url.PathEscape(setID), &wire); err != nil {
		return nil, fmt.Errorf("getting set %s: %w", setID, err)
	}
	return wire.toModel(), nil
}

func (c *Client) DeleteSet(ctx context.Context, setID string) error {
	var wire setDeleteJSON
	if err := c.do(ctx, http.MethodDelete, "/v2/sets/"+url.PathEscape(setID), nil, "", &wire); err != nil {
		return fmt.Errorf("deleting set %s: %w", setID, err)
	}
	c.logger.Debugf("Deleted set %s", setID)
	return nil
}

func (c *Client) ListSetQuestions(ctx context.Context, setID string) ([]model.QuestionSummary, error) {
	var wire setQuestionListJSON
	err := c.getJSON(ctx, "/v2/sets/"+url.PathEscape(setID)+"/questions", &wire)
	if err != nil {
		return nil, fmt.Errorf("listing questions for set %s: %w", setID, err)
	}

	questions := make([]model.QuestionSummary, 0, len(wire.Questions))
	for _, q := range wire.Questions {
		questions = append(questions, model.QuestionSummary{
			ID:              q.QuestionID,
			NumberLabel:     q.NumberLabel,
			OrderIndex:      q.OrderIndex,
			ReviewStatus:    model.ReviewStatus(q.ReviewStatus),
			Confidence:      q.Confidence,
			CroppedImageURL: q.CroppedImageURL,
		})
	}
	return questions, nil
}
