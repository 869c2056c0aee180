package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/wilkensonio/reconnect-api/internal/model"
	"github.com/wilkensonio/reconnect-api/internal/repository"
)

// ── Mock FacultyRepository ──

type mockFacultyRepo struct {
	nextID    uint
	faculties map[string]*model.Faculty // key: user_id
}

func newMockFacultyRepo() *mockFacultyRepo {
	return &mockFacultyRepo{nextID: 1, faculties: make(map[string]*model.Faculty)}
}

func (m *mockFacultyRepo) Create(_ context.Context, faculty *model.Faculty) error {
	faculty.ID = m.nextID
	m.nextID++
	m.faculties[faculty.UserID] = faculty
	return nil
}

func (m *mockFacultyRepo) GetByEmail(_ context.Context, email string) (*model.Faculty, error) {
	for _, f := range m.faculties {
		if f.Email == email {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFacultyRepo) GetByUserID(_ context.Context, userID string) (*model.Faculty, error) {
	if f, ok := m.faculties[userID]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFacultyRepo) List(_ context.Context) ([]model.Faculty, error) {
	var result []model.Faculty
	for _, f := range m.faculties {
		result = append(result, *f)
	}
	return result, nil
}

func (m *mockFacultyRepo) Update(_ context.Context, faculty *model.Faculty) error {
	m.faculties[faculty.UserID] = faculty
	return nil
}

func (m *mockFacultyRepo) DeleteByEmail(_ context.Context, email string) (int64, error) {
	for id, f := range m.faculties {
		if f.Email == email {
			delete(m.faculties, id)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockFacultyRepo) DeleteByUserID(_ context.Context, userID string) (int64, error) {
	if _, ok := m.faculties[userID]; ok {
		delete(m.faculties, userID)
		return 1, nil
	}
	return 0, nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	nextID    uint
	students  map[string]*model.Student // key: student_id
	blacklist []model.Blacklist
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{nextID: 1, students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	student.ID = m.nextID
	m.nextID++
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) GetByStudentID(_ context.Context, studentID string) (*model.Student, error) {
	if len(studentID) == 4 {
		for _, s := range m.students {
			if strings.HasSuffix(s.StudentID, studentID) {
				return s, nil
			}
		}
		return nil, gorm.ErrRecordNotFound
	}
	if s, ok := m.students[studentID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByEmail(_ context.Context, email string) (*model.Student, error) {
	for _, s := range m.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context) ([]model.Student, error) {
	blocked := make(map[string]bool)
	for _, b := range m.blacklist {
		blocked[b.UserID] = true
	}
	var result []model.Student
	for _, s := range m.students {
		if !blocked[s.StudentID] {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockStudentRepo) ListBlacklist(_ context.Context) ([]model.Blacklist, error) {
	return append([]model.Blacklist{}, m.blacklist...), nil
}

func (m *mockStudentRepo) AddToBlacklist(_ context.Context, entry *model.Blacklist) error {
	entry.ID = uint(len(m.blacklist) + 1)
	m.blacklist = append(m.blacklist, *entry)
	return nil
}

// ── Mock AvailabilityRepository ──

type mockAvailabilityRepo struct {
	nextID uint
	slots  map[uint]*model.Availability
}

func newMockAvailabilityRepo() *mockAvailabilityRepo {
	return &mockAvailabilityRepo{nextID: 1, slots: make(map[uint]*model.Availability)}
}

func (m *mockAvailabilityRepo) Create(_ context.Context, slot *model.Availability) error {
	slot.ID = m.nextID
	m.nextID++
	m.slots[slot.ID] = slot
	return nil
}

func (m *mockAvailabilityRepo) GetByID(_ context.Context, id uint) (*model.Availability, error) {
	if s, ok := m.slots[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAvailabilityRepo) List(_ context.Context) ([]model.Availability, error) {
	var result []model.Availability
	for _, s := range m.slots {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockAvailabilityRepo) ListByUser(_ context.Context, userID string) ([]model.Availability, error) {
	var result []model.Availability
	for _, s := range m.slots {
		if s.UserID == userID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockAvailabilityRepo) Update(_ context.Context, slot *model.Availability) error {
	m.slots[slot.ID] = slot
	return nil
}

func (m *mockAvailabilityRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := m.slots[id]; ok {
		delete(m.slots, id)
		return 1, nil
	}
	return 0, nil
}

// ── Mock AppointmentRepository ──

type mockAppointmentRepo struct {
	nextID uint
	appts  map[uint]*model.Appointment
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{nextID: 1, appts: make(map[uint]*model.Appointment)}
}

func (m *mockAppointmentRepo) Create(_ context.Context, appt *model.Appointment) error {
	appt.ID = m.nextID
	m.nextID++
	m.appts[appt.ID] = appt
	return nil
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, id uint) (*model.Appointment, error) {
	if a, ok := m.appts[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAppointmentRepo) List(_ context.Context) ([]model.Appointment, error) {
	var result []model.Appointment
	for _, a := range m.appts {
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAppointmentRepo) ListByFaculty(_ context.Context, facultyID string) ([]model.Appointment, error) {
	var result []model.Appointment
	for _, a := range m.appts {
		if a.FacultyID == facultyID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) ListByStudent(_ context.Context, studentID string) ([]model.Appointment, error) {
	var result []model.Appointment
	for _, a := range m.appts {
		if a.StudentID == studentID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) Update(_ context.Context, appt *model.Appointment) error {
	m.appts[appt.ID] = appt
	return nil
}

func (m *mockAppointmentRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := m.appts[id]; ok {
		delete(m.appts, id)
		return 1, nil
	}
	return 0, nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	nextID        uint
	notifications map[uint]*model.Notification
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{nextID: 1, notifications: make(map[uint]*model.Notification)}
}

func (m *mockNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	n.ID = m.nextID
	m.nextID++
	m.notifications[n.ID] = n
	return nil
}

func (m *mockNotificationRepo) GetByID(_ context.Context, id uint) (*model.Notification, error) {
	if n, ok := m.notifications[id]; ok {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNotificationRepo) ListByUser(_ context.Context, userID string) ([]model.Notification, error) {
	var result []model.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			result = append(result, *n)
		}
	}
	return result, nil
}

func (m *mockNotificationRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := m.notifications[id]; ok {
		delete(m.notifications, id)
		return 1, nil
	}
	return 0, nil
}

func (m *mockNotificationRepo) DeleteByUser(_ context.Context, userID string) (int64, error) {
	var removed int64
	for id, n := range m.notifications {
		if n.UserID == userID {
			delete(m.notifications, id)
			removed++
		}
	}
	return removed, nil
}

// ── Mock PiMessageRepository ──

type mockPiMessageRepo struct {
	nextID   uint
	messages map[string]*model.PiMessage // key: user_id
}

func newMockPiMessageRepo() *mockPiMessageRepo {
	return &mockPiMessageRepo{nextID: 1, messages: make(map[string]*model.PiMessage)}
}

func (m *mockPiMessageRepo) GetByUser(_ context.Context, userID string) (*model.PiMessage, error) {
	if msg, ok := m.messages[userID]; ok {
		return msg, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPiMessageRepo) Upsert(_ context.Context, message *model.PiMessage) error {
	if existing, ok := m.messages[message.UserID]; ok {
		existing.Message = message.Message
		existing.Duration = message.Duration
		existing.DurationUnit = message.DurationUnit
		*message = *existing
		return nil
	}
	message.ID = m.nextID
	m.nextID++
	m.messages[message.UserID] = message
	return nil
}

func (m *mockPiMessageRepo) List(_ context.Context) ([]model.PiMessage, error) {
	var result []model.PiMessage
	for _, msg := range m.messages {
		result = append(result, *msg)
	}
	return result, nil
}

func (m *mockPiMessageRepo) DeleteByUser(_ context.Context, userID string) (int64, error) {
	if _, ok := m.messages[userID]; ok {
		delete(m.messages, userID)
		return 1, nil
	}
	return 0, nil
}

// ── Mock SecretRepository ──

type mockSecretRepo struct {
	secrets []model.Secret
}

func newMockSecretRepo() *mockSecretRepo {
	return &mockSecretRepo{}
}

func (m *mockSecretRepo) List(_ context.Context) ([]model.Secret, error) {
	return append([]model.Secret{}, m.secrets...), nil
}

// ── 聚合辅助 ──

func newMockRepository() *repository.Repository {
	return &repository.Repository{
		Faculty:      newMockFacultyRepo(),
		Student:      newMockStudentRepo(),
		Availability: newMockAvailabilityRepo(),
		Appointment:  newMockAppointmentRepo(),
		Notification: newMockNotificationRepo(),
		PiMessage:    newMockPiMessageRepo(),
		Secret:       newMockSecretRepo(),
	}
}
