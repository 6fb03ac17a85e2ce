package model

import "time"

// JobStatus represents the status of an extraction job.
type JobStatus string

const (
	// JobStatusQueued indicates the job is waiting to be processed.
	JobStatusQueued JobStatus = "queued"
	// JobStatusRunning indicates the job is being processed.
	JobStatusRunning JobStatus = "running"
	// JobStatusDone indicates the job finished successfully.
	JobStatusDone JobStatus = "done"
	// JobStatusFailed indicates the job finished with an error.
	JobStatusFailed JobStatus = "failed"
)

// Terminal reports whether the job has finished (successfully or not).
func (s JobStatus) Terminal() bool {
	return s == JobStatusDone || s == JobStatusFailed
}

// jobStatusLabels maps job statuses to human readable labels.
var jobStatusLabels = map[JobStatus]string{
	JobStatusQueued:  "Queued",
	JobStatusRunning: "Running",
	JobStatusDone:    "Done",
	JobStatusFailed:  "Failed",
}

// Label returns the human readable label of a job status.
func (s JobStatus) Label() string {
	if l, ok := jobStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// jobStageLabels maps the backend pipeline stage names to human readable labels.
var jobStageLabels = map[string]string{
	"preprocess":          "Preprocessing",
	"gemini_page_extract": "Page extraction",
	"layout":              "Layout analysis",
	"ocr":                 "OCR",
	"merge":               "Merging",
	"split":               "Splitting",
	"crop":                "Cropping",
	"completed":           "Completed",
}

// StageLabel returns a human readable label for a job stage. Unknown stages
// are returned as-is so new backend stages still render.
func StageLabel(stage string) string {
	if l, ok := jobStageLabels[stage]; ok {
		return l
	}
	return stage
}

// Job represents a server side asynchronous extraction job tied to one set.
type Job struct {
	ID           string
	SetID        string
	Status       JobStatus
	Stage        string
	Percent      float64
	ErrorMessage string
}

// JobEvent is an immutable observation of a past job state, used only for
// display. Events are ordered by creation time and never mutated.
type JobEvent struct {
	Status    JobStatus
	Stage     string
	Percent   float64
	CreatedAt time.Time
}
