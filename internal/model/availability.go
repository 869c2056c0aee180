package model

// Availability 教职工空闲时段表 — 对应 availability
// StartTime/EndTime 为 HH:MM 文本；不做时段重叠校验
type Availability struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"   json:"id"`
	Day       string `gorm:"type:varchar(20);not null"  json:"day"` // Monday … Sunday
	StartTime string `gorm:"type:varchar(5);not null"   json:"start_time"`
	EndTime   string `gorm:"type:varchar(5);not null"   json:"end_time"`
	UserID    string `gorm:"type:varchar(255);not null" json:"user_id"`
	CreatedAt string `gorm:"type:varchar(255)"          json:"created_at"`

	// 关联
	Faculty *Faculty `gorm:"foreignKey:UserID;references:UserID" json:"faculty,omitempty"`
}

// TableName 指定表名
func (Availability) TableName() string { return "availability" }
