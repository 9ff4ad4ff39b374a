package service

import (
	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
)

type FAQService struct {
	FAQRepo *repository.FAQRepository
}

func NewFAQService(faqRepo *repository.FAQRepository) *FAQService {
	return &FAQService{FAQRepo: faqRepo}
}

func (s *FAQService) List(category string) ([]model.FAQ, error) {
	return s.FAQRepo.ListPublished(category)
}
