package dto

// ── 看板消息模块 DTO ──

// PiMessageRequest 更新看板消息请求（upsert）
type PiMessageRequest struct {
	UserID       string `json:"user_id"       binding:"required"`
	Message      string `json:"message"       binding:"required"`
	Duration     int    `json:"duration"      binding:"required"`
	DurationUnit string `json:"duration_unit" binding:"required"`
}

// PiMessageResponse 看板消息响应
type PiMessageResponse struct {
	UserID       string `json:"user_id"`
	Message      string `json:"message"`
	Duration     int    `json:"duration"`
	DurationUnit string `json:"duration_unit"`
}

// PiMessageWithUserResponse 带教职工姓名的看板消息响应（get-all 用）
type PiMessageWithUserResponse struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	UserID       string `json:"user_id"`
	Message      string `json:"message"`
	Duration     int    `json:"duration"`
	DurationUnit string `json:"duration_unit"`
}
