package model

// PiMessage 看板消息表 — 对应 pi_messages（与 faculty 1:1）
// Duration 必须大于 0，DurationUnit 限定枚举值
type PiMessage struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"                json:"id"`
	UserID       string `gorm:"type:varchar(255);not null;uniqueIndex"  json:"user_id"`
	Message      string `gorm:"type:text;not null"                      json:"message"`
	Duration     int    `gorm:"not null"                                json:"duration"`
	DurationUnit string `gorm:"type:varchar(20);not null"               json:"duration_unit"` // seconds | minutes | hours | days | weeks | months
}

// TableName 指定表名
func (PiMessage) TableName() string { return "pi_messages" }
