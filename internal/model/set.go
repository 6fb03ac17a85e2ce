package model

// SetStatus represents the status of a question set.
type SetStatus string

const (
	// SetStatusCreated indicates the set exists but extraction has not started.
	SetStatusCreated SetStatus = "created"
	// SetStatusExtracting indicates the extraction job is in progress.
	SetStatusExtracting SetStatus = "extracting"
	// SetStatusReady indicates extraction finished and no questions need review.
	SetStatusReady SetStatus = "ready"
	// SetStatusNeedsReview indicates extraction finished with flagged questions.
	SetStatusNeedsReview SetStatus = "needs_review"
	// SetStatusError indicates extraction failed.
	SetStatusError SetStatus = "error"
)

// Transitional reports whether the set is still waiting on its extraction job.
func (s SetStatus) Transitional() bool {
	return s == SetStatusCreated || s == SetStatusExtracting
}

// setStatusLabels maps set statuses to human readable labels.
var setStatusLabels = map[SetStatus]string{
	SetStatusCreated:     "Created",
	SetStatusExtracting:  "Extracting",
	SetStatusReady:       "Ready",
	SetStatusNeedsReview: "Needs review",
	SetStatusError:       "Error",
}

// Label returns the human readable label of a set status.
func (s SetStatus) Label() string {
	if l, ok := setStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Set represents a question set extracted from an uploaded document.
type Set struct {
	ID             string
	Status         SetStatus
	Title          string
	SourceFilename string
	SourceMime     string
	SourceSize     int64
	QuestionCount  int
	// LatestJobID references the most recent extraction job, if any.
	LatestJobID string
}

// SetSummary is a reduced set view used in listings.
type SetSummary struct {
	ID             string
	Status         SetStatus
	Title          string
	QuestionCount  int
	SourceFilename string
}
