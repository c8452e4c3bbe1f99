package repositories

import (
	"context"
	"errors"

	"github.com/rishi-1234-cpu/ExamPortalApi/internal/models"
	"gorm.io/gorm"
)

// ResultRepository is the append-only store of scored attempts.
type ResultRepository interface {
	// Create durably stores a result as a single atomic insert. Duplicate
	// content is not an error; every submission creates its own row.
	Create(ctx context.Context, result *models.Result) error

	// GetByExamCode returns all results for an exam code (case-insensitive
	// match), ordered by submission time descending, most recent first.
	GetByExamCode(ctx context.Context, code string) ([]*models.Result, error)
}

// IsNotFoundError checks if the error represents a missing record
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
