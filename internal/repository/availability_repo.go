package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wilkensonio/reconnect-api/internal/model"
)

// AvailabilityRepository 空闲时段数据访问接口
type AvailabilityRepository interface {
	Create(ctx context.Context, slot *model.Availability) error
	GetByID(ctx context.Context, id uint) (*model.Availability, error)
	List(ctx context.Context) ([]model.Availability, error)
	ListByUser(ctx context.Context, userID string) ([]model.Availability, error)
	Update(ctx context.Context, slot *model.Availability) error
	Delete(ctx context.Context, id uint) (int64, error)
}

// availabilityRepo AvailabilityRepository 的 GORM 实现
type availabilityRepo struct {
	db *gorm.DB
}

// NewAvailabilityRepo 创建 AvailabilityRepository 实例
func NewAvailabilityRepo(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepo{db: db}
}

func (r *availabilityRepo) Create(ctx context.Context, slot *model.Availability) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *availabilityRepo) GetByID(ctx context.Context, id uint) (*model.Availability, error) {
	var slot model.Availability
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *availabilityRepo) List(ctx context.Context) ([]model.Availability, error) {
	var slots []model.Availability
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *availabilityRepo) ListByUser(ctx context.Context, userID string) ([]model.Availability, error) {
	var slots []model.Availability
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *availabilityRepo) Update(ctx context.Context, slot *model.Availability) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *availabilityRepo) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Availability{})
	return result.RowsAffected, result.Error
}
