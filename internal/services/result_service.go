package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/rishi-1234-cpu/ExamPortalApi/internal/events"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/models"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/repositories"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/utils"
)

// ResultService is the append-only ledger of scored attempts.
type ResultService interface {
	// Record durably stores a scored result and publishes a
	// result.recorded event. Results are immutable once stored.
	Record(ctx context.Context, result *models.Result) error

	// ListByExamCode returns all results for an exam code, newest first.
	// The operator key is checked before any data is read; a mismatch
	// yields ErrUnauthorized regardless of whether the code exists.
	ListByExamCode(ctx context.Context, code, key string) ([]*models.Result, error)
}

type resultService struct {
	repo      repositories.ResultRepository
	publisher events.EventPublisher
	adminKey  string
	logger    utils.Logger
}

func NewResultService(repo repositories.ResultRepository, publisher events.EventPublisher, adminKey string, logger utils.Logger) ResultService {
	return &resultService{
		repo:      repo,
		publisher: publisher,
		adminKey:  adminKey,
		logger:    logger,
	}
}

func (s *resultService) Record(ctx context.Context, result *models.Result) error {
	if err := s.repo.Create(ctx, result); err != nil {
		return fmt.Errorf("failed to store result: %w", err)
	}

	s.logger.Info("Result recorded",
		"exam_code", result.ExamCode,
		"student_name", result.StudentName,
		"score", result.Score,
		"total_marks", result.TotalMarks,
		"passed", result.Passed)

	// The result is already durable; a publish failure must not fail the attempt
	if err := s.publisher.PublishResultRecorded(ctx, events.NewResultRecordedEvent(result)); err != nil {
		s.logger.Warn("Failed to publish result event", "exam_code", result.ExamCode, "error", err)
	}

	return nil
}

func (s *resultService) ListByExamCode(ctx context.Context, code, key string) ([]*models.Result, error) {
	if subtle.ConstantTimeCompare([]byte(key), []byte(s.adminKey)) != 1 {
		return nil, ErrUnauthorized
	}

	results, err := s.repo.GetByExamCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}
