package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rishi-1234-cpu/ExamPortalApi/internal/events"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportAttempts_WrongKeyIsUnauthorized(t *testing.T) {
	repo := new(MockResultRepository)
	results := NewResultService(repo, events.NewMockEventPublisher(), "secret123", testLogger())
	svc := NewExportService(results, testLogger())

	workbook, err := svc.ExportAttempts(context.Background(), "INT-2025-001", "wrong")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Nil(t, workbook)
	repo.AssertNotCalled(t, "GetByExamCode", mock.Anything, mock.Anything)
}

func TestExportAttempts_RendersOneRowPerResult(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	stored := []*models.Result{
		{
			ExamCode:       "INT-2025-001",
			StudentName:    "Asha Rao",
			Email:          "asha@example.com",
			College:        "Institute of Technology",
			Score:          2,
			TotalMarks:     2,
			Percentage:     100,
			Passed:         true,
			SubmittedAtUtc: base.Add(time.Hour),
		},
		{
			ExamCode:       "INT-2025-001",
			StudentName:    "Vikram Mehta",
			Score:          1,
			TotalMarks:     2,
			Percentage:     50,
			Passed:         false,
			SubmittedAtUtc: base,
		},
	}

	repo := new(MockResultRepository)
	repo.On("GetByExamCode", mock.Anything, "INT-2025-001").Return(stored, nil)
	results := NewResultService(repo, events.NewMockEventPublisher(), "secret123", testLogger())
	svc := NewExportService(results, testLogger())

	workbook, err := svc.ExportAttempts(context.Background(), "INT-2025-001", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, workbook)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attempts")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 results

	assert.Equal(t, "Exam Code", rows[0][0])
	assert.Equal(t, "Asha Rao", rows[1][1])
	assert.Equal(t, "Vikram Mehta", rows[2][1])
}

func TestExportAttempts_EmptyLedgerYieldsHeaderOnlySheet(t *testing.T) {
	repo := new(MockResultRepository)
	repo.On("GetByExamCode", mock.Anything, "INT-2025-001").Return([]*models.Result{}, nil)
	results := NewResultService(repo, events.NewMockEventPublisher(), "secret123", testLogger())
	svc := NewExportService(results, testLogger())

	workbook, err := svc.ExportAttempts(context.Background(), "INT-2025-001", "secret123")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attempts")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
