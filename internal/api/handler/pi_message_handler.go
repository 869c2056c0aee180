package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wilkensonio/reconnect-api/internal/dto"
	"github.com/wilkensonio/reconnect-api/internal/service"
	"github.com/wilkensonio/reconnect-api/pkg/response"
)

// PiMessageHandler 看板消息模块 HTTP 处理器
type PiMessageHandler struct {
	piMessageSvc service.PiMessageService
}

// NewPiMessageHandler 创建 PiMessageHandler
func NewPiMessageHandler(piMessageSvc service.PiMessageService) *PiMessageHandler {
	return &PiMessageHandler{piMessageSvc: piMessageSvc}
}

// Update 更新看板消息（upsert），hootloot id 取自路径
// PUT /api/v1/pi-message/update/:hootloot_id
func (h *PiMessageHandler) Update(c *gin.Context) {
	var body struct {
		Message      string `json:"message"       binding:"required"`
		Duration     int    `json:"duration"      binding:"required"`
		DurationUnit string `json:"duration_unit" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, 10001, "Invalid request payload")
		return
	}

	req := dto.PiMessageRequest{
		UserID:       c.Param("hootloot_id"),
		Message:      body.Message,
		Duration:     body.Duration,
		DurationUnit: body.DurationUnit,
	}
	result, err := h.piMessageSvc.Update(c.Request.Context(), &req)
	if err != nil {
		h.handlePiMessageError(c, err)
		return
	}
	response.OK(c, result)
}

// GetByUser 获取某教职工的看板消息（kiosk 轮询，走缓存）
// GET /api/v1/pi-message/:user_id
func (h *PiMessageHandler) GetByUser(c *gin.Context) {
	result, err := h.piMessageSvc.GetByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.handlePiMessageError(c, err)
		return
	}
	response.OK(c, result)
}

// List 获取全部看板消息（附教职工姓名）
// GET /api/v1/pi-messages
func (h *PiMessageHandler) List(c *gin.Context) {
	result, err := h.piMessageSvc.List(c.Request.Context())
	if err != nil {
		h.handlePiMessageError(c, err)
		return
	}
	response.OK(c, result)
}

// DeleteByUser 删除某教职工的看板消息
// DELETE /api/v1/pi-message/delete/:user_id
func (h *PiMessageHandler) DeleteByUser(c *gin.Context) {
	if err := h.piMessageSvc.DeleteByUser(c.Request.Context(), c.Param("user_id")); err != nil {
		h.handlePiMessageError(c, err)
		return
	}
	response.OK(c, gin.H{"detail": "Message deleted successfully"})
}

// handlePiMessageError 看板消息模块业务错误 → HTTP 响应
func (h *PiMessageHandler) handlePiMessageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPiMessageNotFound):
		response.NotFound(c, 16001, err.Error())
	case errors.Is(err, service.ErrInvalidDuration):
		response.BadRequest(c, 16002, err.Error())
	case errors.Is(err, service.ErrInvalidDurationUnit):
		response.BadRequest(c, 16003, err.Error())
	case errors.Is(err, service.ErrInvalidHootlootID):
		response.BadRequest(c, 16004, err.Error())
	default:
		response.InternalError(c)
	}
}
