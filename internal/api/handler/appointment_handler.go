package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wilkensonio/reconnect-api/internal/dto"
	"github.com/wilkensonio/reconnect-api/internal/service"
	"github.com/wilkensonio/reconnect-api/pkg/response"
)

// AppointmentHandler 预约模块 HTTP 处理器
type AppointmentHandler struct {
	appointmentSvc service.AppointmentService
	exportSvc      service.ExportService
}

// NewAppointmentHandler 创建 AppointmentHandler
func NewAppointmentHandler(
	appointmentSvc service.AppointmentService,
	exportSvc service.ExportService,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentSvc: appointmentSvc,
		exportSvc:      exportSvc,
	}
}

// Create 创建预约
// POST /api/v1/appointment/create
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Invalid request payload")
		return
	}

	result, err := h.appointmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAppointmentError(c, err)
		return
	}
	response.Created(c, result)
}

// List 获取全部预约
// GET /api/v1/appointments
func (h *AppointmentHandler) List(c *gin.Context) {
	result, err := h.appointmentSvc.List(c.Request.Context())
	if err != nil {
		h.handleAppointmentError(c, err)
		return
	}
	response.OK(c, result)
}

// GetByID 按 ID 查询预约
// GET /api/v1/appointment/get-by-id/:id
func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, 10001, "Invalid appointment id")
		return
	}

	result, err := h.appointmentSvc.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		h.handleAppointmentError(c, err)
		return
	}
	response.OK(c, result)
}

// ListByUser 按工号（先教职工后学生）查询预约
// GET /api/v1/appointments/user/:user_id
func (h *AppointmentHandler) ListByUser(c *gin.Context) {
	result, err := h.appointmentSvc.ListByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.handleAppointmentError(c, err)
		return
	}
	response.OK(c, result)
}

// Update 更新预约（部分字段）
// PATCH /api/v1/appointment/update/:id
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, 10001, "Invalid appointment id")
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Invalid request payload")
		return
	}

	result, err := h.appointmentSvc.Update(c.Request.Context(), uint(id), &req)
	if err != nil {
		h.handleAppointmentError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete 取消并删除预约
// DELETE /api/v1/appointment/delete/:id
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, 10001, "Invalid appointment id")
		return
	}

	if err := h.appointmentSvc.Delete(c.Request.Context(), uint(id)); err != nil {
		h.handleAppointmentError(c, err)
		return
	}
	response.OK(c, gin.H{"detail": "Appointment deleted successfully"})
}

// Export 导出某教职工的预约列表为 Excel
// GET /api/v1/appointments/export/:user_id
func (h *AppointmentHandler) Export(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportAppointments(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.handleAppointmentError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// handleAppointmentError 预约模块业务错误 → HTTP 响应
func (h *AppointmentHandler) handleAppointmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAppointmentNotFound):
		response.NotFound(c, 15001, err.Error())
	case errors.Is(err, service.ErrInvalidTimeFormat):
		response.BadRequest(c, 15002, err.Error())
	case errors.Is(err, service.ErrInvalidDateFormat):
		response.BadRequest(c, 15003, err.Error())
	case errors.Is(err, service.ErrExportNoAppointments):
		response.NotFound(c, 15004, err.Error())
	case errors.Is(err, service.ErrExportGenerateFail):
		response.Error(c, http.StatusInternalServerError, 15005, err.Error())
	default:
		response.InternalError(c)
	}
}
