package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wilkensonio/reconnect-api/internal/service"
	"github.com/wilkensonio/reconnect-api/pkg/response"
)

// StudentHandler 学生模块 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// List 获取全部未拉黑学生
// GET /api/v1/students
func (h *StudentHandler) List(c *gin.Context) {
	result, err := h.studentSvc.List(c.Request.Context())
	if err != nil {
		h.handleStudentError(c, err)
		return
	}
	response.OK(c, result)
}

// GetByStudentID 按学号查询学生（4 位按尾号匹配）
// GET /api/v1/student/:student_id
func (h *StudentHandler) GetByStudentID(c *gin.Context) {
	result, err := h.studentSvc.GetByStudentID(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		h.handleStudentError(c, err)
		return
	}
	response.OK(c, result)
}

// Blacklist 按学号或邮箱拉黑学生
// POST /api/v1/student/blacklist/:identifier
func (h *StudentHandler) Blacklist(c *gin.Context) {
	result, err := h.studentSvc.Blacklist(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.handleStudentError(c, err)
		return
	}
	response.Created(c, result)
}

// ListBlacklist 获取黑名单
// GET /api/v1/students/blacklist
func (h *StudentHandler) ListBlacklist(c *gin.Context) {
	result, err := h.studentSvc.ListBlacklist(c.Request.Context())
	if err != nil {
		h.handleStudentError(c, err)
		return
	}
	response.OK(c, result)
}

// handleStudentError 学生模块业务错误 → HTTP 响应
func (h *StudentHandler) handleStudentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 13001, err.Error())
	default:
		response.InternalError(c)
	}
}
