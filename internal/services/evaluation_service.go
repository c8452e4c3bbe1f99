package services

import (
	"math"
	"time"

	"github.com/rishi-1234-cpu/ExamPortalApi/internal/models"
)

// EvaluationService scores a submission against an exam's answer key.
// Evaluation is deterministic and side-effect-free: identical submissions
// against the same exam produce identical scores (timestamp aside) and
// each call builds an independent Result. There is no deduplication and
// no attempt limit.
type EvaluationService interface {
	Evaluate(exam *models.Exam, submission *models.Submission) *models.Result
}

type evaluationService struct{}

func NewEvaluationService() EvaluationService {
	return &evaluationService{}
}

// Evaluate walks the exam's questions, awarding each question's marks when
// the submission selected its correct option index. Unanswered questions,
// answers referencing unknown question IDs and out-of-range indices simply
// do not score; they are documented behavior, not errors. Validation of
// the student identity fields is the boundary layer's responsibility.
func (s *evaluationService) Evaluate(exam *models.Exam, submission *models.Submission) *models.Result {
	total := exam.TotalMarks()
	score := 0
	for _, q := range exam.Questions {
		selected, answered := submission.Answers[q.ID]
		if answered && selected == q.CorrectIndex {
			score += q.Marks
		}
	}

	percentage := 0.0
	if total > 0 {
		percentage = roundTo2(float64(score) * 100 / float64(total))
	}

	return &models.Result{
		ExamCode:       exam.Code,
		StudentName:    submission.StudentName,
		Email:          submission.Email,
		College:        submission.College,
		Score:          score,
		TotalMarks:     total,
		Percentage:     percentage,
		Passed:         percentage >= exam.PassingPercentage,
		SubmittedAtUtc: time.Now().UTC(),
	}
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
