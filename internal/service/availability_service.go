package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wilkensonio/reconnect-api/internal/dto"
	"github.com/wilkensonio/reconnect-api/internal/model"
	"github.com/wilkensonio/reconnect-api/internal/repository"
)

var (
	ErrAvailabilityNotFound = errors.New("Availability not found")
	ErrInvalidTimeFormat    = errors.New("Invalid time format, expected HH:MM")
)

// timePattern 时间字段只接受 HH:MM 文本
var timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// AvailabilityService 空闲时段业务接口
// 不做时段重叠校验，重复录入由前端约束
type AvailabilityService interface {
	Create(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AvailabilityResponse, error)
	List(ctx context.Context) ([]dto.AvailabilityResponse, error)
	ListByUser(ctx context.Context, userID string) ([]dto.AvailabilityResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error)
	Delete(ctx context.Context, id uint) error
}

type availabilityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAvailabilityService 创建 AvailabilityService 实例
func NewAvailabilityService(repo *repository.Repository, logger *zap.Logger) AvailabilityService {
	return &availabilityService{repo: repo, logger: logger}
}

func (s *availabilityService) Create(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	if !timePattern.MatchString(req.StartTime) || !timePattern.MatchString(req.EndTime) {
		return nil, ErrInvalidTimeFormat
	}

	slot := &model.Availability{
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		UserID:    req.UserID,
		CreatedAt: time.Now().Format(createdAtLayout),
	}
	if err := s.repo.Availability.Create(ctx, slot); err != nil {
		s.logger.Error("创建空闲时段失败", zap.Error(err))
		return nil, err
	}
	return availabilityToResponse(slot), nil
}

func (s *availabilityService) GetByID(ctx context.Context, id uint) (*dto.AvailabilityResponse, error) {
	slot, err := s.repo.Availability.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("查询空闲时段失败", zap.Error(err))
		return nil, err
	}
	return availabilityToResponse(slot), nil
}

func (s *availabilityService) List(ctx context.Context) ([]dto.AvailabilityResponse, error) {
	slots, err := s.repo.Availability.List(ctx)
	if err != nil {
		s.logger.Error("查询空闲时段失败", zap.Error(err))
		return nil, err
	}
	return availabilityListToResponse(slots), nil
}

func (s *availabilityService) ListByUser(ctx context.Context, userID string) ([]dto.AvailabilityResponse, error) {
	slots, err := s.repo.Availability.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询空闲时段失败", zap.Error(err))
		return nil, err
	}
	return availabilityListToResponse(slots), nil
}

func (s *availabilityService) Update(ctx context.Context, id uint, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	slot, err := s.repo.Availability.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("查询空闲时段失败", zap.Error(err))
		return nil, err
	}

	// 指针字段非 nil 才更新，时间字段先过格式校验
	if req.StartTime != nil {
		if !timePattern.MatchString(*req.StartTime) {
			return nil, ErrInvalidTimeFormat
		}
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if !timePattern.MatchString(*req.EndTime) {
			return nil, ErrInvalidTimeFormat
		}
		slot.EndTime = *req.EndTime
	}
	if req.Day != nil {
		slot.Day = *req.Day
	}
	if req.UserID != nil {
		slot.UserID = *req.UserID
	}

	if err := s.repo.Availability.Update(ctx, slot); err != nil {
		s.logger.Error("更新空闲时段失败", zap.Error(err))
		return nil, err
	}
	return availabilityToResponse(slot), nil
}

func (s *availabilityService) Delete(ctx context.Context, id uint) error {
	affected, err := s.repo.Availability.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除空闲时段失败", zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrAvailabilityNotFound
	}
	return nil
}

func availabilityToResponse(slot *model.Availability) *dto.AvailabilityResponse {
	return &dto.AvailabilityResponse{
		ID:        slot.ID,
		Day:       slot.Day,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		UserID:    slot.UserID,
		CreatedAt: slot.CreatedAt,
	}
}

func availabilityListToResponse(slots []model.Availability) []dto.AvailabilityResponse {
	out := make([]dto.AvailabilityResponse, 0, len(slots))
	for i := range slots {
		out = append(out, *availabilityToResponse(&slots[i]))
	}
	return out
}
