package model

// Faculty 教职工表 — 对应 faculty
// UserID 为校园工号（HootLoot ID），Password 恒为 bcrypt 哈希
type Faculty struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"                json:"id"`
	UserID      string `gorm:"type:varchar(255);not null;uniqueIndex"  json:"user_id"`
	FirstName   string `gorm:"type:varchar(255);not null"              json:"first_name"`
	LastName    string `gorm:"type:varchar(255);not null"              json:"last_name"`
	Email       string `gorm:"type:varchar(255);not null;uniqueIndex"  json:"email"`
	Password    string `gorm:"type:varchar(255);not null"              json:"-"`
	PhoneNumber string `gorm:"type:varchar(50);uniqueIndex"            json:"phone_number"`
	CreatedAt   string `gorm:"type:varchar(255)"                       json:"created_at"`
}

// TableName 指定表名
func (Faculty) TableName() string { return "faculty" }
