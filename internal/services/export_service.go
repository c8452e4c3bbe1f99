package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rishi-1234-cpu/ExamPortalApi/internal/utils"
	"github.com/xuri/excelize/v2"
)

// ExportService renders an exam's recorded attempts as a spreadsheet for
// the operator. It reuses the ledger's shared-secret gate, so an invalid
// key fails with ErrUnauthorized before anything is read.
type ExportService interface {
	ExportAttempts(ctx context.Context, code, key string) ([]byte, error)
}

type exportService struct {
	results ResultService
	logger  utils.Logger
}

func NewExportService(results ResultService, logger utils.Logger) ExportService {
	return &exportService{
		results: results,
		logger:  logger,
	}
}

var attemptExportHeaders = []string{
	"Exam Code", "Student Name", "Email", "College",
	"Score", "Total Marks", "Percentage", "Passed", "Submitted At (UTC)",
}

func (s *exportService) ExportAttempts(ctx context.Context, code, key string) ([]byte, error) {
	results, err := s.results.ListByExamCode(ctx, code, key)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attempts"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range attemptExportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, result := range results {
		values := []interface{}{
			result.ExamCode,
			result.StudentName,
			result.Email,
			result.College,
			result.Score,
			result.TotalMarks,
			result.Percentage,
			result.Passed,
			result.SubmittedAtUtc.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Info("Exported attempts", "exam_code", code, "count", len(results))
	return buf.Bytes(), nil
}
