package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/sedu-app/sedu/internal/model"
)

// JSONPrinter prints sedu information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

type setListItem struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	Title          string `json:"title,omitempty"`
	QuestionCount  int    `json:"question_count"`
	SourceFilename string `json:"source_filename,omitempty"`
}

type jobOutput struct {
	ID           string  `json:"id"`
	Status       string  `json:"status"`
	Stage        string  `json:"stage,omitempty"`
	Percent      float64 `json:"percent"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

type jobEventOutput struct {
	Status    string    `json:"status"`
	Stage     string    `json:"stage,omitempty"`
	Percent   float64   `json:"percent"`
	CreatedAt time.Time `json:"created_at"`
}

type setStatusOutput struct {
	ID             string           `json:"id"`
	Status         string           `json:"status"`
	Title          string           `json:"title,omitempty"`
	SourceFilename string           `json:"source_filename,omitempty"`
	SourceMime     string           `json:"source_mime,omitempty"`
	SourceSize     int64            `json:"source_size,omitempty"`
	QuestionCount  int              `json:"question_count"`
	Job            *jobOutput       `json:"job,omitempty"`
	Events         []jobEventOutput `json:"events,omitempty"`
}

type questionListItem struct {
	ID           string   `json:"id"`
	NumberLabel  string   `json:"number_label,omitempty"`
	OrderIndex   int      `json:"order_index"`
	ReviewStatus string   `json:"review_status"`
	Confidence   *float64 `json:"confidence,omitempty"`
}

type questionOutput struct {
	ID           string                 `json:"id"`
	SetID        string                 `json:"set_id"`
	NumberLabel  string                 `json:"number_label,omitempty"`
	OrderIndex   int                    `json:"order_index"`
	ReviewStatus string                 `json:"review_status"`
	Confidence   *float64               `json:"confidence,omitempty"`
	OCRText      string                 `json:"ocr_text,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	Structure    map[string]interface{} `json:"structure,omitempty"`
}

type variantOutput struct {
	ID          string    `json:"id"`
	QuestionID  string    `json:"question_id"`
	Type        string    `json:"type"`
	Body        string    `json:"body"`
	Answer      string    `json:"answer,omitempty"`
	Explanation string    `json:"explanation,omitempty"`
	Model       string    `json:"model,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type hintOutput struct {
	QuestionID string `json:"question_id"`
	Level      string `json:"level"`
	Hint       string `json:"hint"`
	Model      string `json:"model,omitempty"`
}

type reviewQueueItemOutput struct {
	QuestionID   string   `json:"question_id"`
	SetID        string   `json:"set_id"`
	NumberLabel  string   `json:"number_label,omitempty"`
	OrderIndex   int      `json:"order_index"`
	ReviewStatus string   `json:"review_status"`
	Confidence   *float64 `json:"confidence,omitempty"`
}

type uploadOutput struct {
	ID        string    `json:"id"`
	SetID     string    `json:"set_id"`
	JobID     string    `json:"job_id"`
	Filename  string    `json:"filename"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

type messageOutput struct {
	Message string `json:"message"`
}

func (j *JSONPrinter) encode(v interface{}) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintSetList prints sets in JSON format.
func (j *JSONPrinter) PrintSetList(sets []model.SetSummary) error {
	items := make([]setListItem, len(sets))
	for i, s := range sets {
		items[i] = setListItem{
			ID:             s.ID,
			Status:         string(s.Status),
			Title:          s.Title,
			QuestionCount:  s.QuestionCount,
			SourceFilename: s.SourceFilename,
		}
	}
	return j.encode(items)
}

// PrintSetStatus prints detailed set status in JSON format.
func (j *JSONPrinter) PrintSetStatus(view SetStatusView) error {
	s := view.Set
	out := setStatusOutput{
		ID:             s.ID,
		Status:         string(s.Status),
		Title:          s.Title,
		SourceFilename: s.SourceFilename,
		SourceMime:     s.SourceMime,
		SourceSize:     s.SourceSize,
		QuestionCount:  s.QuestionCount,
	}

	if view.Job != nil {
		out.Job = &jobOutput{
			ID:           view.Job.ID,
			Status:       string(view.Job.Status),
			Stage:        view.Job.Stage,
			Percent:      view.Job.Percent,
			ErrorMessage: view.Job.ErrorMessage,
		}
	}

	for _, e := range view.Events {
		out.Events = append(out.Events, jobEventOutput{
			Status:    string(e.Status),
			Stage:     e.Stage,
			Percent:   e.Percent,
			CreatedAt: e.CreatedAt.UTC(),
		})
	}

	return j.encode(out)
}

// PrintQuestionList prints question summaries in JSON format.
func (j *JSONPrinter) PrintQuestionList(questions []model.QuestionSummary) error {
	items := make([]questionListItem, len(questions))
	for i, q := range questions {
		items[i] = questionListItem{
			ID:           q.ID,
			NumberLabel:  q.NumberLabel,
			OrderIndex:   q.OrderIndex,
			ReviewStatus: string(q.ReviewStatus),
			Confidence:   q.Confidence,
		}
	}
	return j.encode(items)
}

// PrintQuestion prints question detail in JSON format.
func (j *JSONPrinter) PrintQuestion(q model.Question) error {
	return j.encode(questionOutput{
		ID:           q.ID,
		SetID:        q.SetID,
		NumberLabel:  q.NumberLabel,
		OrderIndex:   q.OrderIndex,
		ReviewStatus: string(q.ReviewStatus),
		Confidence:   q.Confidence,
		OCRText:      q.OCRText,
		Metadata:     q.Metadata,
		Structure:    q.Structure,
	})
}

// PrintVariantList prints variants in JSON format.
func (j *JSONPrinter) PrintVariantList(variants []model.Variant) error {
	items := make([]variantOutput, len(variants))
	for i, v := range variants {
		items[i] = newVariantOutput(v)
	}
	return j.encode(items)
}

// PrintVariant prints a single variant in JSON format.
func (j *JSONPrinter) PrintVariant(v model.Variant) error {
	return j.encode(newVariantOutput(v))
}

// PrintHint prints a tutoring hint in JSON format.
func (j *JSONPrinter) PrintHint(h model.Hint) error {
	return j.encode(hintOutput{
		QuestionID: h.QuestionID,
		Level:      string(h.Level),
		Hint:       h.Text,
		Model:      h.Model,
	})
}

// PrintReviewQueue prints the review queue in JSON format.
func (j *JSONPrinter) PrintReviewQueue(items []model.ReviewQueueItem) error {
	out := make([]reviewQueueItemOutput, len(items))
	for i, it := range items {
		out[i] = reviewQueueItemOutput{
			QuestionID:   it.QuestionID,
			SetID:        it.SetID,
			NumberLabel:  it.NumberLabel,
			OrderIndex:   it.OrderIndex,
			ReviewStatus: string(it.ReviewStatus),
			Confidence:   it.Confidence,
		}
	}
	return j.encode(out)
}

// PrintUploadList prints the local upload history in JSON format.
func (j *JSONPrinter) PrintUploadList(uploads []model.Upload) error {
	items := make([]uploadOutput, len(uploads))
	for i, u := range uploads {
		items[i] = uploadOutput{
			ID:        u.ID,
			SetID:     u.SetID,
			JobID:     u.JobID,
			Filename:  u.Filename,
			SizeBytes: u.SizeBytes,
			CreatedAt: u.CreatedAt.UTC(),
		}
	}
	return j.encode(items)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}

func newVariantOutput(v model.Variant) variantOutput {
	return variantOutput{
		ID:          v.ID,
		QuestionID:  v.QuestionID,
		Type:        string(v.Type),
		Body:        v.Body,
		Answer:      v.Answer,
		Explanation: v.Explanation,
		Model:       v.Model,
		CreatedAt:   v.CreatedAt.UTC(),
	}
}
