package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wilkensonio/reconnect-api/internal/model"
)

// SecretRepository API Key 数据访问接口
type SecretRepository interface {
	List(ctx context.Context) ([]model.Secret, error)
}

// secretRepo SecretRepository 的 GORM 实现
type secretRepo struct {
	db *gorm.DB
}

// NewSecretRepo 创建 SecretRepository 实例
func NewSecretRepo(db *gorm.DB) SecretRepository {
	return &secretRepo{db: db}
}

func (r *secretRepo) List(ctx context.Context) ([]model.Secret, error) {
	var secrets []model.Secret
	err := r.db.WithContext(ctx).
		Find(&secrets).Error
	if err != nil {
		return nil, err
	}
	return secrets, nil
}
