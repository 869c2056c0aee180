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

// AvailabilityHandler 空闲时段模块 HTTP 处理器
type AvailabilityHandler struct {
	availabilitySvc service.AvailabilityService
	exportSvc       service.ExportService
}

// NewAvailabilityHandler 创建 AvailabilityHandler
func NewAvailabilityHandler(
	availabilitySvc service.AvailabilityService,
	exportSvc service.ExportService,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilitySvc: availabilitySvc,
		exportSvc:       exportSvc,
	}
}

// Create 创建空闲时段
// POST /api/v1/availability/create
func (h *AvailabilityHandler) Create(c *gin.Context) {
	var req dto.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Invalid request payload")
		return
	}

	result, err := h.availabilitySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}
	response.Created(c, result)
}

// GetByID 按 id 获取单条空闲时段
// GET /api/v1/availability/get-by-id/:id
func (h *AvailabilityHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, 10001, "Invalid availability id")
		return
	}

	result, err := h.availabilitySvc.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}
	response.OK(c, result)
}

// List 获取全部空闲时段
// GET /api/v1/availabilities
func (h *AvailabilityHandler) List(c *gin.Context) {
	result, err := h.availabilitySvc.List(c.Request.Context())
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}
	response.OK(c, result)
}

// ListByUser 获取某教职工的空闲时段
// GET /api/v1/availability/user/:user_id
func (h *AvailabilityHandler) ListByUser(c *gin.Context) {
	result, err := h.availabilitySvc.ListByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}
	response.OK(c, result)
}

// Update 更新空闲时段（部分字段）
// PATCH /api/v1/availability/update/:id
func (h *AvailabilityHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, 10001, "Invalid availability id")
		return
	}

	var req dto.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Invalid request payload")
		return
	}

	result, err := h.availabilitySvc.Update(c.Request.Context(), uint(id), &req)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete 删除空闲时段
// DELETE /api/v1/availability/delete/:id
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, 10001, "Invalid availability id")
		return
	}

	if err := h.availabilitySvc.Delete(c.Request.Context(), uint(id)); err != nil {
		h.handleAvailabilityError(c, err)
		return
	}
	response.OK(c, gin.H{"detail": "Availability deleted successfully"})
}

// ExportICS 导出某教职工的空闲时段为 ICS 日历
// GET /api/v1/availability/export/:user_id
func (h *AvailabilityHandler) ExportICS(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportAvailabilityICS(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/calendar", buf.Bytes())
}

// handleAvailabilityError 空闲时段模块业务错误 → HTTP 响应
func (h *AvailabilityHandler) handleAvailabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAvailabilityNotFound):
		response.NotFound(c, 14001, err.Error())
	case errors.Is(err, service.ErrInvalidTimeFormat):
		response.BadRequest(c, 14002, err.Error())
	default:
		response.InternalError(c)
	}
}
