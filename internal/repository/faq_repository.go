package repository

import (
	"learnify_backend/internal/model"

	"gorm.io/gorm"
)

type FAQRepository struct {
	DB *gorm.DB
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{DB: db}
}

func (r *FAQRepository) ListPublished(category string) ([]model.FAQ, error) {
	query := r.DB.Where("is_published = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var faqs []model.FAQ
	err := query.Order("`order` asc, id asc").Find(&faqs).Error
	return faqs, err
}
