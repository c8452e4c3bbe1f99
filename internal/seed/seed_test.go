package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rishi-1234-cpu/ExamPortalApi/internal/models"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockExamRepository is a mock implementation of ExamRepository
type MockExamRepository struct {
	mock.Mock
}

func (m *MockExamRepository) GetByCode(ctx context.Context, code string) (*models.Exam, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Exam), args.Error(1)
}

func (m *MockExamRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	args := m.Called(ctx, exam)
	return args.Error(0)
}

func testLogger() utils.Logger {
	return utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSeed_PopulatesEmptyCatalog(t *testing.T) {
	repo := new(MockExamRepository)
	repo.On("Count", mock.Anything).Return(int64(0), nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	err := NewSeeder(repo, testLogger()).Seed(context.Background())

	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "Create", len(seedExams()))
}

func TestSeed_IsIdempotent(t *testing.T) {
	repo := new(MockExamRepository)
	repo.On("Count", mock.Anything).Return(int64(2), nil)

	err := NewSeeder(repo, testLogger()).Seed(context.Background())

	require.NoError(t, err)
	// A populated catalog means seeding is a no-op
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSeedExams_SatisfyCatalogInvariants(t *testing.T) {
	exams := seedExams()
	require.NotEmpty(t, exams)

	codes := make(map[string]bool)
	for _, exam := range exams {
		assert.NotEmpty(t, exam.Code)
		assert.False(t, codes[exam.Code], "duplicate exam code %s", exam.Code)
		codes[exam.Code] = true

		assert.GreaterOrEqual(t, exam.PassingPercentage, 0.0)
		assert.LessOrEqual(t, exam.PassingPercentage, 100.0)
		require.NotEmpty(t, exam.Questions, "exam %s has no questions", exam.Code)

		for _, q := range exam.Questions {
			require.NotEmpty(t, q.Options, "question %q has no options", q.Text)
			assert.GreaterOrEqual(t, q.CorrectIndex, 0)
			assert.Less(t, q.CorrectIndex, len(q.Options),
				"question %q correct index out of range", q.Text)
			assert.GreaterOrEqual(t, q.Marks, 0)
		}
	}
}
