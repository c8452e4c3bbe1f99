package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/models"
)

// EventType identifies the kind of domain event on the wire.
type EventType string

const (
	EventResultRecorded EventType = "result.recorded"
)

// ResultRecordedEvent is emitted after a scored attempt has been durably
// stored in the ledger. Consumers receive the derived outcome only, never
// the raw submission.
type ResultRecordedEvent struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	ExamCode    string    `json:"exam_code"`
	StudentName string    `json:"student_name"`
	Score       int       `json:"score"`
	TotalMarks  int       `json:"total_marks"`
	Percentage  float64   `json:"percentage"`
	Passed      bool      `json:"passed"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewResultRecordedEvent builds the event for a freshly recorded result.
func NewResultRecordedEvent(result *models.Result) *ResultRecordedEvent {
	return &ResultRecordedEvent{
		ID:          uuid.New().String(),
		Type:        EventResultRecorded,
		ExamCode:    result.ExamCode,
		StudentName: result.StudentName,
		Score:       result.Score,
		TotalMarks:  result.TotalMarks,
		Percentage:  result.Percentage,
		Passed:      result.Passed,
		Timestamp:   result.SubmittedAtUtc,
	}
}
