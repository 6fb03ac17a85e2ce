package model

// ReviewStatus represents the moderation state of an extracted question.
type ReviewStatus string

const (
	ReviewStatusUnreviewed  ReviewStatus = "unreviewed"
	ReviewStatusAutoOK      ReviewStatus = "auto_ok"
	ReviewStatusAutoFlagged ReviewStatus = "auto_flagged"
	ReviewStatusApproved    ReviewStatus = "approved"
	ReviewStatusRejected    ReviewStatus = "rejected"
)

// reviewStatuses is the set of valid review statuses.
var reviewStatuses = map[ReviewStatus]struct{}{
	ReviewStatusUnreviewed:  {},
	ReviewStatusAutoOK:      {},
	ReviewStatusAutoFlagged: {},
	ReviewStatusApproved:    {},
	ReviewStatusRejected:    {},
}

// Validate validates the review status value.
func (s ReviewStatus) Validate() error {
	if _, ok := reviewStatuses[s]; !ok {
		return ErrNotValid
	}
	return nil
}

// Question represents a single question extracted from a set.
type Question struct {
	ID           string
	SetID        string
	NumberLabel  string
	OrderIndex   int
	ReviewStatus ReviewStatus
	Confidence   *float64
	OCRText      string
	Metadata     map[string]interface{}
	Structure    map[string]interface{}
}

// QuestionSummary is a reduced question view used in set listings.
type QuestionSummary struct {
	ID              string
	NumberLabel     string
	OrderIndex      int
	ReviewStatus    ReviewStatus
	Confidence      *float64
	CroppedImageURL string
}

// ReviewQueueItem is a question waiting for human review.
type ReviewQueueItem struct {
	QuestionID   string
	SetID        string
	NumberLabel  string
	OrderIndex   int
	ReviewStatus ReviewStatus
	Confidence   *float64
	Metadata     map[string]interface{}
}

// ReviewAction is a review decision to apply to a question.
type ReviewAction struct {
	Reviewer      string
	ReviewStatus  ReviewStatus
	Note          string
	MetadataPatch map[string]interface{}
}

// Validate validates the review action.
func (a ReviewAction) Validate() error {
	if a.Reviewer == "" {
		return ErrNotValid
	}
	return a.ReviewStatus.Validate()
}
