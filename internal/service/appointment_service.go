package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wilkensonio/reconnect-api/internal/dto"
	"github.com/wilkensonio/reconnect-api/internal/model"
	"github.com/wilkensonio/reconnect-api/internal/notify"
	"github.com/wilkensonio/reconnect-api/internal/repository"
)

var (
	ErrAppointmentNotFound = errors.New("Appointment not found")
	ErrInvalidDateFormat   = errors.New("Invalid date format, expected YYYY-MM-DD")
)

// 通知事件类型
const (
	EventAppointmentScheduled = "appointment_scheduled"
	EventAppointmentUpdated   = "appointment_updated"
	EventAppointmentCanceled  = "appointment_canceled"
)

// AppointmentService 预约业务接口
type AppointmentService interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	List(ctx context.Context) ([]dto.AppointmentResponse, error)
	ListByUser(ctx context.Context, userID string) ([]dto.AppointmentResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type appointmentService struct {
	repo       *repository.Repository
	dispatcher *notify.Dispatcher
	logger     *zap.Logger
}

// NewAppointmentService 创建 AppointmentService 实例
func NewAppointmentService(
	repo *repository.Repository,
	dispatcher *notify.Dispatcher,
	logger *zap.Logger,
) AppointmentService {
	return &appointmentService{
		repo:       repo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (s *appointmentService) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if !timePattern.MatchString(req.StartTime) || !timePattern.MatchString(req.EndTime) {
		return nil, ErrInvalidTimeFormat
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrInvalidDateFormat
	}

	appt := &model.Appointment{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    "pending",
		Reason:    req.Reason,
		StudentID: req.StudentID,
		FacultyID: req.FacultyID,
		CreatedAt: time.Now().Format(createdAtLayout),
		UpdatedAt: time.Now(),
	}
	if err := s.repo.Appointment.Create(ctx, appt); err != nil {
		s.logger.Error("创建预约失败", zap.Error(err))
		return nil, err
	}

	// 通知挂在教职工名下，出口失败不影响写入路径
	s.dispatcher.Enqueue(notify.Event{
		UserID:    appt.FacultyID,
		EventType: EventAppointmentScheduled,
		Message: fmt.Sprintf("New appointment scheduled from %s to %s on %s",
			appt.StartTime, appt.EndTime, formatDate(appt.Date)),
	})

	s.logger.Info("预约已创建",
		zap.Uint("id", appt.ID), zap.String("faculty_id", appt.FacultyID))
	return appointmentToResponse(appt), nil
}

func (s *appointmentService) GetByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appt, err := s.repo.Appointment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("查询预约失败", zap.Error(err))
		return nil, err
	}
	return appointmentToResponse(appt), nil
}

func (s *appointmentService) List(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appts, err := s.repo.Appointment.List(ctx)
	if err != nil {
		s.logger.Error("查询预约列表失败", zap.Error(err))
		return nil, err
	}
	return appointmentListToResponse(appts), nil
}

// ListByUser 按教职工工号查，无结果再按学号查
func (s *appointmentService) ListByUser(ctx context.Context, userID string) ([]dto.AppointmentResponse, error) {
	appts, err := s.repo.Appointment.ListByFaculty(ctx, userID)
	if err != nil {
		s.logger.Error("查询预约列表失败", zap.Error(err))
		return nil, err
	}
	if len(appts) == 0 {
		appts, err = s.repo.Appointment.ListByStudent(ctx, userID)
		if err != nil {
			s.logger.Error("查询预约列表失败", zap.Error(err))
			return nil, err
		}
	}
	return appointmentListToResponse(appts), nil
}

func (s *appointmentService) Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appt, err := s.repo.Appointment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("查询预约失败", zap.Error(err))
		return nil, err
	}

	// 指针字段非 nil 才更新
	if req.Date != nil {
		if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			return nil, ErrInvalidDateFormat
		}
		appt.Date = *req.Date
	}
	if req.StartTime != nil {
		if !timePattern.MatchString(*req.StartTime) {
			return nil, ErrInvalidTimeFormat
		}
		appt.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if !timePattern.MatchString(*req.EndTime) {
			return nil, ErrInvalidTimeFormat
		}
		appt.EndTime = *req.EndTime
	}
	if req.Status != nil {
		appt.Status = *req.Status
	}
	if req.Reason != nil {
		appt.Reason = *req.Reason
	}
	appt.UpdatedAt = time.Now()

	if err := s.repo.Appointment.Update(ctx, appt); err != nil {
		s.logger.Error("更新预约失败", zap.Error(err))
		return nil, err
	}

	s.dispatcher.Enqueue(notify.Event{
		UserID:    appt.FacultyID,
		EventType: EventAppointmentUpdated,
		Message: fmt.Sprintf("Appt updated, New appt from %s to %s on %s",
			appt.StartTime, appt.EndTime, formatDate(appt.Date)),
	})

	return appointmentToResponse(appt), nil
}

func (s *appointmentService) Delete(ctx context.Context, id uint) error {
	appt, err := s.repo.Appointment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("查询预约失败", zap.Error(err))
		return err
	}

	if _, err := s.repo.Appointment.Delete(ctx, id); err != nil {
		s.logger.Error("删除预约失败", zap.Error(err))
		return err
	}

	s.dispatcher.Enqueue(notify.Event{
		UserID:    appt.FacultyID,
		EventType: EventAppointmentCanceled,
		Message: fmt.Sprintf("Your %s appointment on %s has been canceled",
			appt.StartTime, formatDate(appt.Date)),
	})

	s.logger.Info("预约已删除", zap.Uint("id", id))
	return nil
}

// formatDate 把 YYYY-MM-DD 转成通知文案里的 Month DD, YYYY；解析失败原样返回
func formatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format(createdAtLayout)
}

func appointmentToResponse(appt *model.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:        appt.ID,
		Date:      appt.Date,
		StartTime: appt.StartTime,
		EndTime:   appt.EndTime,
		Status:    appt.Status,
		Reason:    appt.Reason,
		StudentID: appt.StudentID,
		FacultyID: appt.FacultyID,
		CreatedAt: appt.CreatedAt,
		UpdatedAt: appt.UpdatedAt.Format(time.RFC3339),
	}
}

func appointmentListToResponse(appts []model.Appointment) []dto.AppointmentResponse {
	out := make([]dto.AppointmentResponse, 0, len(appts))
	for i := range appts {
		out = append(out, *appointmentToResponse(&appts[i]))
	}
	return out
}
