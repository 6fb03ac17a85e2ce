package printer

import "github.com/sedu-app/sedu/internal/model"

// SetStatusView groups everything the status command shows for one set.
type SetStatusView struct {
	Set *model.Set
	// Job is the latest extraction job, when one could be fetched.
	Job *model.Job
	// Events are the most recent job events, newest first.
	Events []model.JobEvent
}

// Printer knows how to print sedu information in different formats.
type Printer interface {
	PrintSetList(sets []model.SetSummary) error
	PrintSetStatus(view SetStatusView) error
	PrintQuestionList(questions []model.QuestionSummary) error
	PrintQuestion(question model.Question) error
	PrintVariantList(variants []model.Variant) error
	PrintVariant(variant model.Variant) error
	PrintHint(hint model.Hint) error
	PrintReviewQueue(items []model.ReviewQueueItem) error
	PrintUploadList(uploads []model.Upload) error
	PrintMessage(msg string) error
}
