package repository

import (
	"learnify_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) ListPublished() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("is_published = ?", true).
		Order("`order` asc, id asc").
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByIDWithModules(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Modules", func(db *gorm.DB) *gorm.DB {
		return db.Order("`order` asc, id asc")
	}).First(&course, id).Error
	return &course, err
}
