package repositories

import (
	"context"

	"github.com/rishi-1234-cpu/ExamPortalApi/internal/models"
)

// ExamRepository provides read access to the exam catalog plus the
// write operations the one-time seed needs. The catalog is immutable
// after seeding; no update or delete is exposed.
type ExamRepository interface {
	// GetByCode returns the exam with its full question set ordered by
	// question ID ascending. The code match is case-insensitive.
	GetByCode(ctx context.Context, code string) (*models.Exam, error)

	// Count returns the number of exams in the catalog. Used by the
	// seed routine to decide whether seeding is a no-op.
	Count(ctx context.Context) (int64, error)

	// Create inserts an exam together with its questions. Seed-time only.
	Create(ctx context.Context, exam *models.Exam) error
}
