package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wilkensonio/reconnect-api/internal/model"
)

// PiMessageRepository 看板消息数据访问接口
type PiMessageRepository interface {
	GetByUser(ctx context.Context, userID string) (*model.PiMessage, error)
	Upsert(ctx context.Context, message *model.PiMessage) error
	List(ctx context.Context) ([]model.PiMessage, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// piMessageRepo PiMessageRepository 的 GORM 实现
type piMessageRepo struct {
	db *gorm.DB
}

// NewPiMessageRepo 创建 PiMessageRepository 实例
func NewPiMessageRepo(db *gorm.DB) PiMessageRepository {
	return &piMessageRepo{db: db}
}

func (r *piMessageRepo) GetByUser(ctx context.Context, userID string) (*model.PiMessage, error) {
	var message model.PiMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Upsert 每个教职工仅保留一条看板消息，存在即覆盖
func (r *piMessageRepo) Upsert(ctx context.Context, message *model.PiMessage) error {
	var existing model.PiMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", message.UserID).
		First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return r.db.WithContext(ctx).Create(message).Error
		}
		return err
	}

	existing.Message = message.Message
	existing.Duration = message.Duration
	existing.DurationUnit = message.DurationUnit
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	*message = existing
	return nil
}

func (r *piMessageRepo) List(ctx context.Context) ([]model.PiMessage, error) {
	var messages []model.PiMessage
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *piMessageRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.PiMessage{})
	return result.RowsAffected, result.Error
}
