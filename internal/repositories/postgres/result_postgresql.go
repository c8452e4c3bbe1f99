package postgres

import (
	"context"

	"github.com/rishi-1234-cpu/ExamPortalApi/internal/models"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/repositories"
	"gorm.io/gorm"
)

type ResultPostgreSQL struct {
	db *gorm.DB
}

func NewResultPostgreSQL(db *gorm.DB) repositories.ResultRepository {
	return &ResultPostgreSQL{db: db}
}

func (r ResultPostgreSQL) Create(ctx context.Context, result *models.Result) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r ResultPostgreSQL) GetByExamCode(ctx context.Context, code string) ([]*models.Result, error) {
	var results []*models.Result
	if err := r.db.WithContext(ctx).
		Where("LOWER(exam_code) = LOWER(?)", code).
		Order("submitted_at_utc DESC, id DESC"). // id breaks timestamp ties so the order is stable
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
