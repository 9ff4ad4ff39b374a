package service

import (
	"context"
	"encoding/json"
	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const courseListCacheKey = "course_list"

type CourseService struct {
	CourseRepo *repository.CourseRepository
	Redis      *redis.Client
}

func NewCourseService(courseRepo *repository.CourseRepository, rdb *redis.Client) *CourseService {
	return &CourseService{CourseRepo: courseRepo, Redis: rdb}
}

// ListCourses 课程列表走 Redis 缓存，命中失败时回源数据库。
func (s *CourseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, courseListCacheKey).Result()
		if err == nil {
			var courses []model.Course
			if json.Unmarshal([]byte(cached), &courses) == nil {
				return courses, nil
			}
		}
	}

	courses, err := s.CourseRepo.ListPublished()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(courses); err == nil {
			s.Redis.Set(ctx, courseListCacheKey, data, 5*time.Minute)
		}
	}
	return courses, nil
}

func (s *CourseService) GetCourse(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByIDWithModules(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	if !course.IsPublished {
		return nil, util.ErrCourseNotFound
	}
	return course, nil
}
