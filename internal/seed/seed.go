package seed

import (
	"context"
	"fmt"

	"github.com/rishi-1234-cpu/ExamPortalApi/internal/repositories"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/utils"
)

// Seeder populates the exam catalog at process start. Seeding runs to
// completion before any endpoint becomes reachable and is idempotent:
// if any exam already exists the routine is a no-op, so restarting the
// process against a populated store never duplicates data.
type Seeder struct {
	repo   repositories.ExamRepository
	logger utils.Logger
}

func NewSeeder(repo repositories.ExamRepository, logger utils.Logger) *Seeder {
	return &Seeder{
		repo:   repo,
		logger: logger,
	}
}

// Seed inserts the built-in exams when the catalog is empty.
func (s *Seeder) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalog: %w", err)
	}
	if count > 0 {
		s.logger.Info("Catalog already seeded", "exams", count)
		return nil
	}

	for _, exam := range seedExams() {
		if err := s.repo.Create(ctx, exam); err != nil {
			return fmt.Errorf("failed to seed exam %s: %w", exam.Code, err)
		}
		s.logger.Info("Seeded exam", "code", exam.Code, "questions", len(exam.Questions))
	}

	return nil
}
