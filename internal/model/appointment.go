package model

import "time"

// Appointment 预约表 — 对应 appointments
// Date 为 YYYY-MM-DD 文本，Status 自由文本，默认 pending
type Appointment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"                          json:"id"`
	Date      string    `gorm:"type:varchar(10);not null"                         json:"date"`
	StartTime string    `gorm:"type:varchar(5);not null"                          json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);not null"                          json:"end_time"`
	Status    string    `gorm:"type:varchar(50);not null;default:'pending'"       json:"status"`
	Reason    string    `gorm:"type:text"                                         json:"reason"`
	StudentID string    `gorm:"type:varchar(255);not null"                        json:"student_id"`
	FacultyID string    `gorm:"type:varchar(255);not null"                        json:"faculty_id"`
	CreatedAt string    `gorm:"type:varchar(255)"                                 json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                json:"updated_at"`

	// 关联
	Faculty *Faculty `gorm:"foreignKey:FacultyID;references:UserID" json:"faculty,omitempty"`
}

// TableName 指定表名
func (Appointment) TableName() string { return "appointments" }
