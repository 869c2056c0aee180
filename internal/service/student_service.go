package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wilkensonio/reconnect-api/internal/dto"
	"github.com/wilkensonio/reconnect-api/internal/model"
	"github.com/wilkensonio/reconnect-api/internal/repository"
)

var ErrStudentNotFound = errors.New("Student not found")

// StudentService 学生业务接口
type StudentService interface {
	GetByStudentID(ctx context.Context, studentID string) (*dto.StudentResponse, error)
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Blacklist(ctx context.Context, identifier string) (*dto.BlacklistEntryResponse, error)
	ListBlacklist(ctx context.Context) ([]dto.BlacklistEntryResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) GetByStudentID(ctx context.Context, studentID string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}
	return studentToResponse(student), nil
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("查询学生列表失败", zap.Error(err))
		return nil, err
	}

	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, *studentToResponse(&students[i]))
	}
	return out, nil
}

// Blacklist 按学号或邮箱拉黑；邮箱先解析成学号再入库
func (s *studentService) Blacklist(ctx context.Context, identifier string) (*dto.BlacklistEntryResponse, error) {
	studentID := identifier
	if student, err := s.repo.Student.GetByEmail(ctx, identifier); err == nil {
		studentID = student.StudentID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}

	entry := &model.Blacklist{UserID: studentID}
	if err := s.repo.Student.AddToBlacklist(ctx, entry); err != nil {
		s.logger.Error("拉黑学生失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("学生已拉黑", zap.String("student_id", studentID))
	return &dto.BlacklistEntryResponse{ID: entry.ID, UserID: entry.UserID}, nil
}

func (s *studentService) ListBlacklist(ctx context.Context) ([]dto.BlacklistEntryResponse, error) {
	entries, err := s.repo.Student.ListBlacklist(ctx)
	if err != nil {
		s.logger.Error("查询黑名单失败", zap.Error(err))
		return nil, err
	}

	out := make([]dto.BlacklistEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.BlacklistEntryResponse{ID: e.ID, UserID: e.UserID})
	}
	return out, nil
}

func studentToResponse(student *model.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:          student.ID,
		StudentID:   student.StudentID,
		FirstName:   student.FirstName,
		LastName:    student.LastName,
		Email:       student.Email,
		PhoneNumber: student.PhoneNumber,
		CreatedAt:   student.CreatedAt,
	}
}
