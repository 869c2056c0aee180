package dto

// ── 通知模块 DTO ──

// CreateNotificationRequest 创建通知请求
type CreateNotificationRequest struct {
	UserID    string `json:"user_id"    binding:"required"`
	EventType string `json:"event_type" binding:"required"`
	Message   string `json:"message"    binding:"required"`
}

// NotificationResponse 通知响应
type NotificationResponse struct {
	ID        uint   `json:"id"`
	UserID    string `json:"user_id"`
	EventType string `json:"event_type"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}
