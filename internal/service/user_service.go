package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wilkensonio/reconnect-api/internal/dto"
	"github.com/wilkensonio/reconnect-api/internal/model"
	"github.com/wilkensonio/reconnect-api/internal/repository"
)

// UserService 教职工业务接口
type UserService interface {
	GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error)
	GetByUserID(ctx context.Context, userID string) (*dto.UserResponse, error)
	List(ctx context.Context) ([]dto.UserResponse, error)
	Update(ctx context.Context, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, identifier string) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	faculty, err := s.repo.Faculty.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询教职工失败", zap.Error(err))
		return nil, err
	}
	return facultyToResponse(faculty), nil
}

func (s *userService) GetByUserID(ctx context.Context, userID string) (*dto.UserResponse, error) {
	faculty, err := s.repo.Faculty.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询教职工失败", zap.Error(err))
		return nil, err
	}
	return facultyToResponse(faculty), nil
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	faculties, err := s.repo.Faculty.List(ctx)
	if err != nil {
		s.logger.Error("查询教职工列表失败", zap.Error(err))
		return nil, err
	}

	users := make([]dto.UserResponse, 0, len(faculties))
	for i := range faculties {
		users = append(users, *facultyToResponse(&faculties[i]))
	}
	return users, nil
}

func (s *userService) Update(ctx context.Context, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	faculty, err := s.repo.Faculty.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询教职工失败", zap.Error(err))
		return nil, err
	}

	// 指针字段非 nil 才更新
	if req.FirstName != nil {
		faculty.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		faculty.LastName = *req.LastName
	}
	if req.Email != nil {
		faculty.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		faculty.PhoneNumber = *req.PhoneNumber
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("密码哈希失败", zap.Error(err))
			return nil, err
		}
		faculty.Password = string(hash)
	}

	if err := s.repo.Faculty.Update(ctx, faculty); err != nil {
		s.logger.Error("更新教职工失败", zap.Error(err))
		return nil, err
	}
	return facultyToResponse(faculty), nil
}

// Delete 按邮箱或工号删除：先按邮箱试，未命中再按工号
func (s *userService) Delete(ctx context.Context, identifier string) error {
	affected, err := s.repo.Faculty.DeleteByEmail(ctx, identifier)
	if err != nil {
		s.logger.Error("删除教职工失败", zap.Error(err))
		return err
	}
	if affected > 0 {
		s.logger.Info("教职工已删除", zap.String("email", identifier))
		return nil
	}

	affected, err = s.repo.Faculty.DeleteByUserID(ctx, identifier)
	if err != nil {
		s.logger.Error("删除教职工失败", zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	s.logger.Info("教职工已删除", zap.String("user_id", identifier))
	return nil
}

func facultyToResponse(faculty *model.Faculty) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          faculty.ID,
		UserID:      faculty.UserID,
		FirstName:   faculty.FirstName,
		LastName:    faculty.LastName,
		Email:       faculty.Email,
		PhoneNumber: faculty.PhoneNumber,
		CreatedAt:   faculty.CreatedAt,
	}
}
