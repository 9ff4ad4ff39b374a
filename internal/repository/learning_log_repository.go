package repository

import (
	"learnify_backend/internal/model"

	"gorm.io/gorm"
)

type LearningLogRepository struct {
	DB *gorm.DB
}

func NewLearningLogRepository(db *gorm.DB) *LearningLogRepository {
	return &LearningLogRepository{DB: db}
}

func (r *LearningLogRepository) Create(log *model.LearningLog) error {
	return r.DB.Create(log).Error
}

func (r *LearningLogRepository) ListByUser(userID uint, limit int) ([]model.LearningLog, error) {
	var logs []model.LearningLog
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
