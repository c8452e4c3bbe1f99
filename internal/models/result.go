package models

import "time"

// Result is the durable outcome of scoring one submission. Results are
// append-only: once created they are never updated or deleted.
type Result struct {
	ID             uint      `json:"-" gorm:"primaryKey"`
	ExamCode       string    `json:"examCode" gorm:"not null;size:50;index"`
	StudentName    string    `json:"studentName" gorm:"not null;size:100"`
	Email          string    `json:"email" gorm:"size:200"`
	College        string    `json:"college" gorm:"size:200"`
	Score          int       `json:"score" gorm:"not null"`
	TotalMarks     int       `json:"totalMarks" gorm:"not null"`
	Percentage     float64   `json:"percentage" gorm:"not null"`
	Passed         bool      `json:"passed" gorm:"not null"`
	SubmittedAtUtc time.Time `json:"submittedAtUtc" gorm:"not null;index"`
}

func (Result) TableName() string {
	return "results"
}
