package repository

import (
	"learnify_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.ExamAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) FindByID(id string) (*model.ExamAttempt, error) {
	var attempt model.ExamAttempt
	err := r.DB.First(&attempt, "id = ?", id).Error
	return &attempt, err
}

func (r *AttemptRepository) FindInProgress(userID, examID uint) (*model.ExamAttempt, error) {
	var attempt model.ExamAttempt
	err := r.DB.Where("user_id = ? AND exam_id = ? AND status = ?", userID, examID, model.AttemptInProgress).
		First(&attempt).Error
	return &attempt, err
}

func (r *AttemptRepository) Update(attempt *model.ExamAttempt) error {
	return r.DB.Save(attempt).Error
}

// SaveResult 原子写入成绩与逐题终态。
func (r *AttemptRepository) SaveResult(attempt *model.ExamAttempt, answers []model.ExamAttemptAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(attempt).Error; err != nil {
			return err
		}
		if len(answers) > 0 {
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AttemptRepository) ListAnswers(attemptID string) ([]model.ExamAttemptAnswer, error) {
	var answers []model.ExamAttemptAnswer
	err := r.DB.Where("attempt_id = ?", attemptID).
		Order("question_id asc").
		Find(&answers).Error
	return answers, err
}

func (r *AttemptRepository) ListCompletedByUser(userID uint) ([]model.ExamAttempt, error) {
	var attempts []model.ExamAttempt
	err := r.DB.Where("user_id = ? AND status = ?", userID, model.AttemptCompleted).
		Order("completed_at desc").
		Find(&attempts).Error
	return attempts, err
}

// AggregateByCategory 岗位推荐用：按课程类别聚合已完成测验的平均正确率。
// 未挂靠课程的测验归入 "general"。
func (r *AttemptRepository) AggregateByCategory(userID uint) ([]model.CategoryAccuracy, error) {
	var rows []model.CategoryAccuracy
	err := r.DB.Model(&model.ExamAttempt{}).
		Select("COALESCE(NULLIF(courses.category, ''), 'general') AS category, COUNT(*) AS attempts, ROUND(AVG(exam_attempts.accuracy)) AS accuracy").
		Joins("JOIN exams ON exams.id = exam_attempts.exam_id").
		Joins("LEFT JOIN courses ON courses.id = exams.course_id").
		Where("exam_attempts.user_id = ? AND exam_attempts.status = ?", userID, model.AttemptCompleted).
		Group("category").
		Scan(&rows).Error
	return rows, err
}
