package dto

// ── 用户（教职工）模块 DTO ──

// UserResponse 教职工信息响应，不含密码
type UserResponse struct {
	ID          uint   `json:"id"`
	UserID      string `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	CreatedAt   string `json:"created_at"`
}

// UpdateUserRequest 更新教职工信息请求（部分字段）
type UpdateUserRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Password    *string `json:"password"`
}

// ── 学生模块 DTO ──

// StudentResponse 学生信息响应
type StudentResponse struct {
	ID          uint   `json:"id"`
	StudentID   string `json:"student_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	CreatedAt   string `json:"created_at"`
}

// BlacklistEntryResponse 黑名单记录响应
type BlacklistEntryResponse struct {
	ID     uint   `json:"id"`
	UserID string `json:"user_id"`
}
