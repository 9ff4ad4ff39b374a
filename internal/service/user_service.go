package service

import (
	"context"
	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"
	"mime/multipart"
	"path/filepath"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	UserRepo *repository.UserRepository
	LogRepo  *repository.LearningLogRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, logRepo *repository.LearningLogRepository, storage *StorageService) *UserService {
	return &UserService{UserRepo: userRepo, LogRepo: logRepo, Storage: storage}
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

// ProfileUpdate 可编辑的资料字段；nil 表示不修改。
type ProfileUpdate struct {
	Name     *string `json:"name"`
	Bio      *string `json:"bio"`
	Language *string `json:"language"`
}

func (s *UserService) UpdateProfile(userID uint, req ProfileUpdate) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Language != nil && *req.Language != "" {
		user.Language = *req.Language
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return util.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.UserRepo.Update(user)
}

// RecentActivity 最近的学习记录，limit 不合法时取 20。
func (s *UserService) RecentActivity(userID uint, limit int) ([]model.LearningLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.LogRepo.ListByUser(userID, limit)
}

// UploadAvatar 上传头像并更新用户记录，返回可访问的 URL。
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (string, error) {
	if err := util.ValidateImageExt(file.Filename); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	filename := "avatars/" + time.Now().Format("20060102150405") + "_" + util.GenerateRandomString(6) + ext

	url, err := s.Storage.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	if err := s.UserRepo.UpdateAvatar(userID, url); err != nil {
		return "", err
	}
	return url, nil
}
