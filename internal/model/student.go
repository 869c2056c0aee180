package model

// Student 学生表 — 对应 students
// 学生仅凭学号在 kiosk 登录，无密码字段
type Student struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"                json:"id"`
	StudentID   string `gorm:"type:varchar(255);not null;uniqueIndex"  json:"student_id"`
	FirstName   string `gorm:"type:varchar(255);not null"              json:"first_name"`
	LastName    string `gorm:"type:varchar(255);not null"              json:"last_name"`
	Email       string `gorm:"type:varchar(255);not null;uniqueIndex"  json:"email"`
	PhoneNumber string `gorm:"type:varchar(50)"                        json:"phone_number"`
	CreatedAt   string `gorm:"type:varchar(255)"                       json:"created_at"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

// Blacklist 学生黑名单表 — 对应 blacklist
// 仅存学号，与 students 表无外键约束（历史遗留）
type Blacklist struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"   json:"id"`
	UserID string `gorm:"type:varchar(255);not null" json:"user_id"`
}

// TableName 指定表名
func (Blacklist) TableName() string { return "blacklist" }
