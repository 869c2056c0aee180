package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wilkensonio/reconnect-api/internal/dto"
	"github.com/wilkensonio/reconnect-api/internal/model"
	"github.com/wilkensonio/reconnect-api/internal/repository"
)

var (
	ErrNotificationNotFound = errors.New("Notification not found")
	ErrNotifyUserNotFound   = errors.New("No user found with the provided user_id")
)

// NotificationService 通知业务接口
type NotificationService interface {
	Create(ctx context.Context, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	ListByUser(ctx context.Context, userID string) ([]dto.NotificationResponse, error)
	Delete(ctx context.Context, id uint) error
	DeleteByUser(ctx context.Context, userID string) error
}

type notificationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNotificationService 创建 NotificationService 实例
func NewNotificationService(repo *repository.Repository, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, logger: logger}
}

func (s *notificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	// 通知必须挂在已存在的教职工名下
	if _, err := s.repo.Faculty.GetByUserID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotifyUserNotFound
		}
		s.logger.Error("查询教职工失败", zap.Error(err))
		return nil, err
	}

	notification := &model.Notification{
		UserID:    req.UserID,
		EventType: req.EventType,
		Message:   req.Message,
	}
	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.logger.Error("创建通知失败", zap.Error(err))
		return nil, err
	}
	return notificationToResponse(notification), nil
}

func (s *notificationService) ListByUser(ctx context.Context, userID string) ([]dto.NotificationResponse, error) {
	notifications, err := s.repo.Notification.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询通知列表失败", zap.Error(err))
		return nil, err
	}

	out := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, *notificationToResponse(&notifications[i]))
	}
	return out, nil
}

func (s *notificationService) Delete(ctx context.Context, id uint) error {
	affected, err := s.repo.Notification.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除通知失败", zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// DeleteByUser 清空用户全部通知；没有记录也算成功
func (s *notificationService) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := s.repo.Notification.DeleteByUser(ctx, userID); err != nil {
		s.logger.Error("清空通知失败", zap.Error(err))
		return err
	}
	return nil
}

func notificationToResponse(n *model.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		EventType: n.EventType,
		Message:   n.Message,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}
