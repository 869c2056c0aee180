package dto

// ── 空闲时段模块 DTO ──

// CreateAvailabilityRequest 创建空闲时段请求
// 时间格式 HH:MM，由 Service 层在入库前校验
type CreateAvailabilityRequest struct {
	Day       string `json:"day"        binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time"   binding:"required"`
	UserID    string `json:"user_id"    binding:"required"`
}

// UpdateAvailabilityRequest 更新空闲时段请求（部分字段）
type UpdateAvailabilityRequest struct {
	Day       *string `json:"day"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	UserID    *string `json:"user_id"`
}

// AvailabilityResponse 空闲时段响应
type AvailabilityResponse struct {
	ID        uint   `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
}
