package repository

import (
	"learnify_backend/internal/model"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.First(&exam, id).Error
	return &exam, err
}

func (r *ExamRepository) ListPublished() ([]model.Exam, error) {
	var exams []model.Exam
	err := r.DB.Where("is_published = ?", true).
		Order("id asc").
		Find(&exams).Error
	return exams, err
}

// ListQuestions 按 Order 字段返回整卷题目。
func (r *ExamRepository) ListQuestions(examID uint) ([]model.ExamQuestion, error) {
	var questions []model.ExamQuestion
	err := r.DB.Where("exam_id = ?", examID).
		Order("`order` asc, id asc").
		Find(&questions).Error
	return questions, err
}
