package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wilkensonio/reconnect-api/internal/dto"
	"github.com/wilkensonio/reconnect-api/internal/model"
	"github.com/wilkensonio/reconnect-api/internal/repository"
	"github.com/wilkensonio/reconnect-api/pkg/redis"
)

var (
	ErrPiMessageNotFound   = errors.New("Message not found")
	ErrInvalidDuration     = errors.New("Duration must be greater than 0")
	ErrInvalidDurationUnit = errors.New("Invalid duration unit")
	ErrInvalidHootlootID   = errors.New("Invalid HootLoot ID, must contain digits only")
)

// validDurationUnits 看板消息展示时长的合法单位
var validDurationUnits = map[string]bool{
	"seconds": true,
	"minutes": true,
	"hours":   true,
	"days":    true,
	"weeks":   true,
	"months":  true,
}

// PiMessageService 看板消息业务接口
type PiMessageService interface {
	Update(ctx context.Context, req *dto.PiMessageRequest) (*dto.PiMessageResponse, error)
	GetByUser(ctx context.Context, userID string) (*dto.PiMessageResponse, error)
	List(ctx context.Context) ([]dto.PiMessageWithUserResponse, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type piMessageService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewPiMessageService 创建 PiMessageService 实例；rdb 为 nil 时不走缓存
func NewPiMessageService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) PiMessageService {
	return &piMessageService{repo: repo, rdb: rdb, logger: logger}
}

// Update 校验全部通过后才落库（upsert），成功后失效缓存
func (s *piMessageService) Update(ctx context.Context, req *dto.PiMessageRequest) (*dto.PiMessageResponse, error) {
	if req.Duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if !validDurationUnits[req.DurationUnit] {
		return nil, ErrInvalidDurationUnit
	}
	if !isDigits(req.UserID) {
		return nil, ErrInvalidHootlootID
	}

	message := &model.PiMessage{
		UserID:       req.UserID,
		Message:      req.Message,
		Duration:     req.Duration,
		DurationUnit: req.DurationUnit,
	}
	if err := s.repo.PiMessage.Upsert(ctx, message); err != nil {
		s.logger.Error("保存看板消息失败", zap.Error(err))
		return nil, err
	}

	if s.rdb != nil {
		if err := s.rdb.InvalidatePiMessage(ctx, req.UserID); err != nil {
			s.logger.Warn("失效看板消息缓存失败", zap.Error(err))
		}
	}

	return piMessageToResponse(message), nil
}

// GetByUser kiosk 轮询接口，优先读缓存
func (s *piMessageService) GetByUser(ctx context.Context, userID string) (*dto.PiMessageResponse, error) {
	if s.rdb != nil {
		var cached dto.PiMessageResponse
		hit, err := s.rdb.GetPiMessage(ctx, userID, &cached)
		if err != nil {
			s.logger.Warn("读取看板消息缓存失败", zap.Error(err))
		} else if hit {
			return &cached, nil
		}
	}

	message, err := s.repo.PiMessage.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPiMessageNotFound
		}
		s.logger.Error("查询看板消息失败", zap.Error(err))
		return nil, err
	}

	resp := piMessageToResponse(message)
	if s.rdb != nil {
		if err := s.rdb.SetPiMessage(ctx, userID, resp); err != nil {
			s.logger.Warn("写入看板消息缓存失败", zap.Error(err))
		}
	}
	return resp, nil
}

// List 返回全部看板消息并附上教职工姓名
func (s *piMessageService) List(ctx context.Context) ([]dto.PiMessageWithUserResponse, error) {
	messages, err := s.repo.PiMessage.List(ctx)
	if err != nil {
		s.logger.Error("查询看板消息列表失败", zap.Error(err))
		return nil, err
	}

	out := make([]dto.PiMessageWithUserResponse, 0, len(messages))
	for i := range messages {
		m := &messages[i]
		item := dto.PiMessageWithUserResponse{
			UserID:       m.UserID,
			Message:      m.Message,
			Duration:     m.Duration,
			DurationUnit: m.DurationUnit,
		}
		if faculty, err := s.repo.Faculty.GetByUserID(ctx, m.UserID); err == nil {
			item.FirstName = faculty.FirstName
			item.LastName = faculty.LastName
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *piMessageService) DeleteByUser(ctx context.Context, userID string) error {
	affected, err := s.repo.PiMessage.DeleteByUser(ctx, userID)
	if err != nil {
		s.logger.Error("删除看板消息失败", zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrPiMessageNotFound
	}

	if s.rdb != nil {
		if err := s.rdb.InvalidatePiMessage(ctx, userID); err != nil {
			s.logger.Warn("失效看板消息缓存失败", zap.Error(err))
		}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func piMessageToResponse(m *model.PiMessage) *dto.PiMessageResponse {
	return &dto.PiMessageResponse{
		UserID:       m.UserID,
		Message:      m.Message,
		Duration:     m.Duration,
		DurationUnit: m.DurationUnit,
	}
}
