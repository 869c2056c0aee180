package model

import "time"

// Notification 通知表 — 对应 notifications
// 挂在教职工工号下，随用户删除或批量清空
type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"           json:"id"`
	UserID    string    `gorm:"type:varchar(255);not null"         json:"user_id"`
	EventType string    `gorm:"type:varchar(100);not null"         json:"event_type"`
	Message   string    `gorm:"type:text;not null"                 json:"message"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (Notification) TableName() string { return "notifications" }
