package postgres

import (
	"context"

	"github.com/rishi-1234-cpu/ExamPortalApi/internal/models"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/repositories"
	"gorm.io/gorm"
)

type ExamPostgreSQL struct {
	db *gorm.DB
}

func NewExamPostgreSQL(db *gorm.DB) repositories.ExamRepository {
	return &ExamPostgreSQL{db: db}
}

func (e ExamPostgreSQL) GetByCode(ctx context.Context, code string) (*models.Exam, error) {
	var exam models.Exam
	if err := e.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id ASC")
		}).
		Where("LOWER(code) = LOWER(?)", code).
		First(&exam).Error; err != nil {
		return nil, err
	}

	exam.TotalQuestions = len(exam.Questions)
	return &exam, nil
}

func (e ExamPostgreSQL) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := e.db.WithContext(ctx).Model(&models.Exam{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (e ExamPostgreSQL) Create(ctx context.Context, exam *models.Exam) error {
	return e.db.WithContext(ctx).Create(exam).Error
}
