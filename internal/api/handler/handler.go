package handler

import (
	"github.com/wilkensonio/reconnect-api/internal/notify"
	"github.com/wilkensonio/reconnect-api/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Student      *StudentHandler
	Availability *AvailabilityHandler
	Appointment  *AppointmentHandler
	Notification *NotificationHandler
	PiMessage    *PiMessageHandler
	WS           *WSHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, hub *notify.Hub) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Student:      NewStudentHandler(svc.Student),
		Availability: NewAvailabilityHandler(svc.Availability, svc.Export),
		Appointment:  NewAppointmentHandler(svc.Appointment, svc.Export),
		Notification: NewNotificationHandler(svc.Notification),
		PiMessage:    NewPiMessageHandler(svc.PiMessage),
		WS:           NewWSHandler(svc.Notification, hub),
	}
}
