package dto

// ── 预约模块 DTO ──

// CreateAppointmentRequest 创建预约请求
// 日期格式 YYYY-MM-DD，时间格式 HH:MM
type CreateAppointmentRequest struct {
	Date      string `json:"date"       binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time"   binding:"required"`
	Reason    string `json:"reason"`
	StudentID string `json:"student_id" binding:"required"`
	FacultyID string `json:"faculty_id" binding:"required"`
}

// UpdateAppointmentRequest 更新预约请求（部分字段）
type UpdateAppointmentRequest struct {
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Status    *string `json:"status"`
	Reason    *string `json:"reason"`
}

// AppointmentResponse 预约响应
type AppointmentResponse struct {
	ID        uint   `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
	Reason    string `json:"reason"`
	StudentID string `json:"student_id"`
	FacultyID string `json:"faculty_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
