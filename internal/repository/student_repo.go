package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wilkensonio/reconnect-api/internal/model"
)

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByStudentID(ctx context.Context, studentID string) (*model.Student, error)
	GetByEmail(ctx context.Context, email string) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	ListBlacklist(ctx context.Context) ([]model.Blacklist, error)
	AddToBlacklist(ctx context.Context, entry *model.Blacklist) error
}

// studentRepo StudentRepository 的 GORM 实现
type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

// GetByStudentID 按学号查询；恰好 4 位时按学号后缀模糊匹配（kiosk 只刷卡尾号）
func (r *studentRepo) GetByStudentID(ctx context.Context, studentID string) (*model.Student, error) {
	var student model.Student
	query := r.db.WithContext(ctx)
	if len(studentID) == 4 {
		query = query.Where("student_id LIKE ?", "%"+studentID)
	} else {
		query = query.Where("student_id = ?", studentID)
	}
	if err := query.First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// List 返回全部未被拉黑的学生
func (r *studentRepo) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Where("student_id NOT IN (?)",
			r.db.Model(&model.Blacklist{}).Select("user_id")).
		Order("id ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepo) ListBlacklist(ctx context.Context) ([]model.Blacklist, error) {
	var entries []model.Blacklist
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *studentRepo) AddToBlacklist(ctx context.Context, entry *model.Blacklist) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
