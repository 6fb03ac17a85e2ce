package model

import "time"

// UploadReceipt is the backend acknowledgement of a submitted document.
type UploadReceipt struct {
	DocumentID string
	SetID      string
	JobID      string
	Status     JobStatus
}

// Upload is a locally recorded document submission, kept so users can list
// what they sent and resume tracking after the fact.
type Upload struct {
	ID        string
	SetID     string
	JobID     string
	Filename  string
	SizeBytes int64
	CreatedAt time.Time
}
