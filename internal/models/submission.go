package models

// Submission is a caller-supplied attempt at answering an exam. It is
// never persisted in raw form; only its derived Result is. Answers map
// question IDs to selected option indices. Unanswered questions, unknown
// question IDs and out-of-range indices are simply non-scoring.
type Submission struct {
	StudentName string       `json:"studentName" validate:"required,notblank"`
	Email       string       `json:"email"`
	College     string       `json:"college"`
	Answers     map[uint]int `json:"answers"`
}
