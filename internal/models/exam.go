package models

import (
	"time"

	"gorm.io/datatypes"
)

// Exam is a named, fixed set of scored questions with a pass threshold.
// The code is the public identity and is matched case-insensitively;
// exams are seeded once at startup and read-only afterwards.
type Exam struct {
	ID                uint    `json:"-" gorm:"primaryKey"`
	Code              string  `json:"code" gorm:"uniqueIndex;not null;size:50" validate:"required,max=50"`
	Title             string  `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description       string  `json:"description" gorm:"type:text"`
	DurationMinutes   int     `json:"durationMinutes" gorm:"not null"` // informational only, not enforced
	PassingPercentage float64 `json:"passingPercentage" gorm:"not null" validate:"min=0,max=100"`

	Questions []Question `json:"questions" gorm:"foreignKey:ExamID"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Computed field (not stored)
	TotalQuestions int `json:"totalQuestions" gorm:"-"`
}

// Question is one scoring unit within an exam. Its numeric ID is unique
// across the whole catalog and is the key submissions answer against.
// The option list is stored as a serialized JSON value; correctIndex is
// served alongside the options in the exam payload (preserved behavior
// of the source system).
type Question struct {
	ID           uint                        `json:"id" gorm:"primaryKey"`
	ExamID       uint                        `json:"-" gorm:"not null;index"`
	Section      string                      `json:"section" gorm:"size:100"`
	Text         string                      `json:"text" gorm:"type:text;not null" validate:"required"`
	Options      datatypes.JSONSlice[string] `json:"options" gorm:"not null" validate:"required,min=1"`
	CorrectIndex int                         `json:"correctIndex" gorm:"not null" validate:"min=0"`
	Marks        int                         `json:"marks" gorm:"not null;default:1" validate:"min=0"`
}

// TotalMarks sums the marks over all questions of the exam.
func (e *Exam) TotalMarks() int {
	total := 0
	for _, q := range e.Questions {
		total += q.Marks
	}
	return total
}

func (Exam) TableName() string {
	return "exams"
}

func (Question) TableName() string {
	return "questions"
}
