package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wilkensonio/reconnect-api/internal/dto"
	"github.com/wilkensonio/reconnect-api/internal/service"
	"github.com/wilkensonio/reconnect-api/pkg/response"
)

// UserHandler 教职工模块 HTTP 处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// List 获取全部教职工
// GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	result, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		h.handleUserError(c, err)
		return
	}
	response.OK(c, result)
}

// GetByEmail 按邮箱查询教职工
// GET /api/v1/user/email/:email
func (h *UserHandler) GetByEmail(c *gin.Context) {
	result, err := h.userSvc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleUserError(c, err)
		return
	}
	response.OK(c, result)
}

// GetByUserID 按工号查询教职工
// GET /api/v1/user/userid/:user_id
func (h *UserHandler) GetByUserID(c *gin.Context) {
	result, err := h.userSvc.GetByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.handleUserError(c, err)
		return
	}
	response.OK(c, result)
}

// Update 更新教职工信息（部分字段）
// PATCH /api/v1/user/update/:user_id
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Invalid request payload")
		return
	}

	result, err := h.userSvc.Update(c.Request.Context(), c.Param("user_id"), &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete 按邮箱或工号删除教职工
// DELETE /api/v1/user/delete/:identifier
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userSvc.Delete(c.Request.Context(), c.Param("identifier")); err != nil {
		h.handleUserError(c, err)
		return
	}
	response.OK(c, gin.H{"detail": "User deleted successfully"})
}

// handleUserError 教职工模块业务错误 → HTTP 响应
func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 12001, err.Error())
	default:
		response.InternalError(c)
	}
}
