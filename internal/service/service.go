package service

import (
	"go.uber.org/zap"

	"github.com/wilkensonio/reconnect-api/config"
	"github.com/wilkensonio/reconnect-api/internal/notify"
	"github.com/wilkensonio/reconnect-api/internal/repository"
	"github.com/wilkensonio/reconnect-api/pkg/jwt"
	"github.com/wilkensonio/reconnect-api/pkg/mail"
	"github.com/wilkensonio/reconnect-api/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth         AuthService
	User         UserService
	Student      StudentService
	Availability AvailabilityService
	Appointment  AppointmentService
	Notification NotificationService
	PiMessage    PiMessageService
	Export       ExportService
}

// NewService 创建 Service 聚合
// rdb 可为 nil（Redis 不可用时限流与缓存自动降级）
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	mailSender *mail.Sender,
	dispatcher *notify.Dispatcher,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, mailSender, logger),
		User:         NewUserService(repo, logger),
		Student:      NewStudentService(repo, logger),
		Availability: NewAvailabilityService(repo, logger),
		Appointment:  NewAppointmentService(repo, dispatcher, logger),
		Notification: NewNotificationService(repo, logger),
		PiMessage:    NewPiMessageService(repo, rdb, logger),
		Export:       NewExportService(repo, logger),
	}
}
