package services

import (
	"testing"
	"time"

	"github.com/rishi-1234-cpu/ExamPortalApi/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func twoQuestionExam() *models.Exam {
	return &models.Exam{
		Code:              "INT-2025-001",
		Title:             "Screening",
		PassingPercentage: 60,
		Questions: []models.Question{
			{
				ID:           1,
				Section:      "SQL",
				Text:         "Which clause filters rows after aggregation?",
				Options:      datatypes.NewJSONSlice([]string{"WHERE", "HAVING"}),
				CorrectIndex: 1,
				Marks:        1,
			},
			{
				ID:           2,
				Section:      "SQL",
				Text:         "Which JOIN keeps all left rows?",
				Options:      datatypes.NewJSONSlice([]string{"LEFT JOIN", "INNER JOIN"}),
				CorrectIndex: 0,
				Marks:        1,
			},
		},
	}
}

func TestEvaluate_Scoring(t *testing.T) {
	tests := []struct {
		name           string
		answers        map[uint]int
		wantScore      int
		wantTotal      int
		wantPercentage float64
		wantPassed     bool
	}{
		{
			name:           "both correct",
			answers:        map[uint]int{1: 1, 2: 0},
			wantScore:      2,
			wantTotal:      2,
			wantPercentage: 100.00,
			wantPassed:     true,
		},
		{
			name:           "one correct one wrong",
			answers:        map[uint]int{1: 1, 2: 1},
			wantScore:      1,
			wantTotal:      2,
			wantPercentage: 50.00,
			wantPassed:     false,
		},
		{
			name:           "unanswered questions do not score",
			answers:        map[uint]int{1: 1},
			wantScore:      1,
			wantTotal:      2,
			wantPercentage: 50.00,
			wantPassed:     false,
		},
		{
			name:           "unknown question ids contribute nothing",
			answers:        map[uint]int{1: 1, 2: 0, 999: 0},
			wantScore:      2,
			wantTotal:      2,
			wantPercentage: 100.00,
			wantPassed:     true,
		},
		{
			name:           "out of range index does not score",
			answers:        map[uint]int{1: 7, 2: 0},
			wantScore:      1,
			wantTotal:      2,
			wantPercentage: 50.00,
			wantPassed:     false,
		},
		{
			name:           "empty answer map",
			answers:        map[uint]int{},
			wantScore:      0,
			wantTotal:      2,
			wantPercentage: 0,
			wantPassed:     false,
		},
		{
			name:           "nil answer map",
			answers:        nil,
			wantScore:      0,
			wantTotal:      2,
			wantPercentage: 0,
			wantPassed:     false,
		},
	}

	svc := NewEvaluationService()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := svc.Evaluate(twoQuestionExam(), &models.Submission{
				StudentName: "Asha Rao",
				Answers:     tc.answers,
			})

			assert.Equal(t, tc.wantScore, result.Score)
			assert.Equal(t, tc.wantTotal, result.TotalMarks)
			assert.Equal(t, tc.wantPercentage, result.Percentage)
			assert.Equal(t, tc.wantPassed, result.Passed)
			assert.LessOrEqual(t, result.Score, result.TotalMarks)
		})
	}
}

func TestEvaluate_WeightedMarks(t *testing.T) {
	exam := &models.Exam{
		Code:              "DB-2025-002",
		PassingPercentage: 50,
		Questions: []models.Question{
			{ID: 10, Options: datatypes.NewJSONSlice([]string{"a", "b"}), CorrectIndex: 0, Marks: 2},
			{ID: 11, Options: datatypes.NewJSONSlice([]string{"a", "b"}), CorrectIndex: 1, Marks: 1},
			{ID: 12, Options: datatypes.NewJSONSlice([]string{"a", "b"}), CorrectIndex: 1, Marks: 0},
		},
	}

	result := NewEvaluationService().Evaluate(exam, &models.Submission{
		StudentName: "Asha Rao",
		Answers:     map[uint]int{10: 0, 12: 1},
	})

	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 3, result.TotalMarks)
	assert.Equal(t, 66.67, result.Percentage)
	assert.True(t, result.Passed)
}

func TestEvaluate_EmptyExamYieldsZeroPercentage(t *testing.T) {
	exam := &models.Exam{Code: "EMPTY", PassingPercentage: 0}

	result := NewEvaluationService().Evaluate(exam, &models.Submission{StudentName: "Asha Rao"})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.TotalMarks)
	assert.Equal(t, 0.0, result.Percentage)
	// passing percentage of 0 means a 0% result still passes
	assert.True(t, result.Passed)
}

func TestEvaluate_CopiesStudentIdentityAndStampsUTC(t *testing.T) {
	before := time.Now().UTC()
	result := NewEvaluationService().Evaluate(twoQuestionExam(), &models.Submission{
		StudentName: "Asha Rao",
		Email:       "asha@example.com",
		College:     "Institute of Technology",
		Answers:     map[uint]int{1: 1},
	})
	after := time.Now().UTC()

	assert.Equal(t, "INT-2025-001", result.ExamCode)
	assert.Equal(t, "Asha Rao", result.StudentName)
	assert.Equal(t, "asha@example.com", result.Email)
	assert.Equal(t, "Institute of Technology", result.College)

	require.Equal(t, time.UTC, result.SubmittedAtUtc.Location())
	assert.False(t, result.SubmittedAtUtc.Before(before))
	assert.False(t, result.SubmittedAtUtc.After(after))
}

func TestEvaluate_Deterministic(t *testing.T) {
	svc := NewEvaluationService()
	submission := &models.Submission{
		StudentName: "Asha Rao",
		Answers:     map[uint]int{1: 1, 2: 1},
	}

	first := svc.Evaluate(twoQuestionExam(), submission)
	second := svc.Evaluate(twoQuestionExam(), submission)

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.TotalMarks, second.TotalMarks)
	assert.Equal(t, first.Percentage, second.Percentage)
	assert.Equal(t, first.Passed, second.Passed)
}
