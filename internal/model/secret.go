package model

// Secret API Key 表 — 对应 secrets
// APISecretKey 存 SHA-256 十六进制，校验时对来访 key 做同样哈希后比对
type Secret struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"   json:"id"`
	KeyID        string `gorm:"type:varchar(255);not null" json:"key_id"`
	APISecretKey string `gorm:"type:varchar(64);not null"  json:"-"`
}

// TableName 指定表名
func (Secret) TableName() string { return "secrets" }
