package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/model"
)

type variantItemJSON struct {
	VariantID   string `json:"variantId"`
	QuestionID  string `json:"questionId"`
	VariantType string `json:"variantType"`
	Body        string `json:"body"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
	Model       string `json:"model"`
	CreatedAt   string `json:"createdAt"`
}

func (v *variantItemJSON) toModel() model.Variant {
	return model.Variant{
		ID:          v.VariantID,
		QuestionID:  v.QuestionID,
		Type:        model.VariantType(v.VariantType),
		Body:        v.Body,
		Answer:      v.Answer,
		Explanation: v.Explanation,
		Model:       v.Model,
		CreatedAt:   parseTime(v.CreatedAt),
	}
}

type variantListJSON struct {
	QuestionID string            `json:"questionId"`
	Variants   []variantItemJSON `json:"variants"`
}

type variantCreateRequestJSON struct {
	VariantType string `json:"variantType"`
}

type variantCreateResponseJSON struct {
	QuestionID string          `json:"questionId"`
	Variant    variantItemJSON `json:"variant"`
}

type chatTurnJSON struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type hintRequestJSON struct {
	Level         string         `json:"level"`
	RecentChat    []chatTurnJSON `json:"recentChat"`
	StrokeSummary string         `json:"strokeSummary,omitempty"`
}

type hintResponseJSON struct {
	QuestionID string `json:"questionId"`
	Level      string `json:"level"`
	Hint       string `json:"hint"`
	Model      string `json:"model"`
}

func (c *Client) ListVariants(ctx context.Context, questionID string) ([]model.Variant, error) {
	var wire variantListJSON
	err := c.getJSON(ctx, "/v2/questions/"+url.PathEscape(questionID)+"/variants", &wire)
	if err != nil {
		return nil, fmt.Errorf("listing variants for question %s: %w", questionID, err)
	}

	variants := make([]model.Variant, 0, len(wire.Variants))
	for _, v := range wire.Variants {
		variants = append(variants, v.toModel())
	}
	return variants, nil
}

func (c *Client) CreateVariant(ctx context.Context, questionID string, variantType model.VariantType) (*model.Variant, error) {
	if err := variantType.Validate(); err != nil {
		return nil, fmt.Errorf("invalid variant type %q: %w", variantType, err)
	}

	in := variantCreateRequestJSON{VariantType: string(variantType)}

	var wire variantCreateResponseJSON
	err := c.sendJSON(ctx, http.MethodPost, "/v2/questions/"+url.PathEscape(questionID)+"/variants", in, &wire)
	if err != nil {
		return nil, fmt.Errorf("creating variant for question %s: %w", questionID, err)
	}

	c.logger.Debugf("Created %s variant for question %s", variantType, questionID)

	v := wire.Variant.toModel()
	return &v, nil
}

func (c *Client) CreateHint(ctx context.Context, req api.HintRequest) (*model.Hint, error) {
	level := req.Level
	if level == "" {
		level = model.HintLevelWeak
	}
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("invalid hint level %q: %w", level, err)
	}

	chat := make([]chatTurnJSON, 0, len(req.RecentChat))
	for _, t := range req.RecentChat {
		chat = append(chat, chatTurnJSON{Role: t.Role, Text: t.Text})
	}

	in := hintRequestJSON{
		Level:         string(level),
		RecentChat:    chat,
		StrokeSummary: req.StrokeSummary,
	}

	var wire hintResponseJSON
	err := c.sendJSON(ctx, http.MethodPost, "/v2/questions/"+url.PathEscape(req.QuestionID)+"/hint", in, &wire)
	if err != nil {
		return nil, fmt.Errorf("creating hint for question %s: %w", req.QuestionID, err)
	}

	return &model.Hint{
		QuestionID: wire.QuestionID,
		Level:      model.HintLevel(wire.Level),
		Text:       wire.Hint,
		Model:      wire.Model,
	}, nil
}
