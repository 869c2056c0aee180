package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Faculty      FacultyRepository
	Student      StudentRepository
	Availability AvailabilityRepository
	Appointment  AppointmentRepository
	Notification NotificationRepository
	PiMessage    PiMessageRepository
	Secret       SecretRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Faculty:      NewFacultyRepo(db),
		Student:      NewStudentRepo(db),
		Availability: NewAvailabilityRepo(db),
		Appointment:  NewAppointmentRepo(db),
		Notification: NewNotificationRepo(db),
		PiMessage:    NewPiMessageRepo(db),
		Secret:       NewSecretRepo(db),
	}
}
