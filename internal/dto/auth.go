package dto

// ── 认证模块 DTO ──

// SignupRequest 教职工注册请求
type SignupRequest struct {
	UserID      string `json:"user_id"      binding:"required"`
	FirstName   string `json:"first_name"   binding:"required,min=1"`
	LastName    string `json:"last_name"    binding:"required,min=1"`
	Email       string `json:"email"        binding:"required,email"`
	Password    string `json:"password"     binding:"required,min=8"`
	PhoneNumber string `json:"phone_number" binding:"required,min=10"`
}

// SignupStudentRequest 学生注册请求（kiosk 账号，无密码）
type SignupStudentRequest struct {
	StudentID   string `json:"student_id"   binding:"required"`
	FirstName   string `json:"first_name"   binding:"required,min=1"`
	LastName    string `json:"last_name"    binding:"required,min=1"`
	Email       string `json:"email"        binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// SigninRequest 教职工登录请求
type SigninRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// KioskSigninRequest 学生 kiosk 登录请求
// UserID 为完整学号或后 4 位
type KioskSigninRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// TokenResponse 登录成功响应
type TokenResponse struct {
	ID          uint   `json:"id"`
	UserID      string `json:"user_id,omitempty"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // 恒为 "bearer"
}

// VerifyEmailRequest 发送邮箱验证码请求
type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyEmailResponse 发送邮箱验证码响应
type VerifyEmailResponse struct {
	VerificationCode string `json:"verification_code"`
}

// VerifyEmailCodeRequest 校验邮箱验证码请求
// 验证码由客户端回传，精确字符串比对，不设过期
type VerifyEmailCodeRequest struct {
	UserCode   string `json:"user_code"   binding:"required"`
	SecretCode string `json:"secret_code" binding:"required"`
}

// VerifyEmailCodeResponse 校验邮箱验证码响应
type VerifyEmailCodeResponse struct {
	Details bool `json:"details"`
}

// ResetPasswordRequest 重置密码请求
type ResetPasswordRequest struct {
	Email       string `json:"email"        binding:"required,email"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}
