package model

import "time"

// 以下模型由管理后台维护，API 服务只保证 schema 存在，不提供路由

// Admin 管理员表 — 对应 admins
type Admin struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"               json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null"             json:"-"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"     json:"created_at"`
}

// TableName 指定表名
func (Admin) TableName() string { return "admins" }

// Log 操作日志表 — 对应 logs
type Log struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"           json:"id"`
	UserID    string    `gorm:"type:varchar(255)"                  json:"user_id"`
	Action    string    `gorm:"type:varchar(255);not null"         json:"action"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (Log) TableName() string { return "logs" }

// Note 备注表 — 对应 notes
type Note struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"           json:"id"`
	UserID    string    `gorm:"type:varchar(255)"                  json:"user_id"`
	Content   string    `gorm:"type:text;not null"                 json:"content"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (Note) TableName() string { return "notes" }

// Permission 权限表 — 对应 permissions
type Permission struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"   json:"id"`
	UserID string `gorm:"type:varchar(255);not null" json:"user_id"`
	Scope  string `gorm:"type:varchar(100);not null" json:"scope"`
}

// TableName 指定表名
func (Permission) TableName() string { return "permissions" }
