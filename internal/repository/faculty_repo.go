package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wilkensonio/reconnect-api/internal/model"
)

// FacultyRepository 教职工数据访问接口
type FacultyRepository interface {
	Create(ctx context.Context, faculty *model.Faculty) error
	GetByEmail(ctx context.Context, email string) (*model.Faculty, error)
	GetByUserID(ctx context.Context, userID string) (*model.Faculty, error)
	List(ctx context.Context) ([]model.Faculty, error)
	Update(ctx context.Context, faculty *model.Faculty) error
	DeleteByEmail(ctx context.Context, email string) (int64, error)
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}

// facultyRepo FacultyRepository 的 GORM 实现
type facultyRepo struct {
	db *gorm.DB
}

// NewFacultyRepo 创建 FacultyRepository 实例
func NewFacultyRepo(db *gorm.DB) FacultyRepository {
	return &facultyRepo{db: db}
}

func (r *facultyRepo) Create(ctx context.Context, faculty *model.Faculty) error {
	return r.db.WithContext(ctx).Create(faculty).Error
}

func (r *facultyRepo) GetByEmail(ctx context.Context, email string) (*model.Faculty, error) {
	var faculty model.Faculty
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&faculty).Error
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepo) GetByUserID(ctx context.Context, userID string) (*model.Faculty, error) {
	var faculty model.Faculty
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&faculty).Error
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepo) List(ctx context.Context) ([]model.Faculty, error) {
	var faculties []model.Faculty
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&faculties).Error
	if err != nil {
		return nil, err
	}
	return faculties, nil
}

func (r *facultyRepo) Update(ctx context.Context, faculty *model.Faculty) error {
	return r.db.WithContext(ctx).Save(faculty).Error
}

func (r *facultyRepo) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.Faculty{})
	return result.RowsAffected, result.Error
}

func (r *facultyRepo) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Faculty{})
	return result.RowsAffected, result.Error
}
