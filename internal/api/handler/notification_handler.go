package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wilkensonio/reconnect-api/internal/dto"
	"github.com/wilkensonio/reconnect-api/internal/service"
	"github.com/wilkensonio/reconnect-api/pkg/response"
)

// NotificationHandler 通知模块 HTTP 处理器
type NotificationHandler struct {
	notificationSvc service.NotificationService
}

// NewNotificationHandler 创建 NotificationHandler
func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// Create 创建通知
// POST /api/v1/notification/create
func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Invalid request payload")
		return
	}

	result, err := h.notificationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleNotificationError(c, err)
		return
	}
	response.Created(c, result)
}

// ListByUser 获取某教职工的通知列表（新→旧）
// GET /api/v1/notifications/:user_id
func (h *NotificationHandler) ListByUser(c *gin.Context) {
	result, err := h.notificationSvc.ListByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.handleNotificationError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete 删除单条通知
// DELETE /api/v1/notification/delete/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, 10001, "Invalid notification id")
		return
	}

	if err := h.notificationSvc.Delete(c.Request.Context(), uint(id)); err != nil {
		h.handleNotificationError(c, err)
		return
	}
	response.OK(c, gin.H{"detail": "Notification deleted successfully"})
}

// DeleteByUser 清空某教职工的全部通知
// DELETE /api/v1/notifications/delete/:user_id
func (h *NotificationHandler) DeleteByUser(c *gin.Context) {
	if err := h.notificationSvc.DeleteByUser(c.Request.Context(), c.Param("user_id")); err != nil {
		h.handleNotificationError(c, err)
		return
	}
	response.OK(c, gin.H{"detail": "Notifications deleted successfully"})
}

// handleNotificationError 通知模块业务错误 → HTTP 响应
func (h *NotificationHandler) handleNotificationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotificationNotFound):
		response.NotFound(c, 17001, err.Error())
	case errors.Is(err, service.ErrNotifyUserNotFound):
		response.NotFound(c, 17002, err.Error())
	default:
		response.InternalError(c)
	}
}
