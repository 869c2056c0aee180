package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wilkensonio/reconnect-api/internal/dto"
	"github.com/wilkensonio/reconnect-api/internal/service"
	"github.com/wilkensonio/reconnect-api/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Signup 教职工注册
// POST /api/v1/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Invalid request payload")
		return
	}

	result, err := h.authSvc.Signup(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Created(c, result)
}

// SignupStudent 学生注册（kiosk 账号）
// POST /api/v1/signup-student
func (h *AuthHandler) SignupStudent(c *gin.Context) {
	var req dto.SignupStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Invalid request payload")
		return
	}

	result, err := h.authSvc.SignupStudent(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Created(c, result)
}

// Signin 教职工登录
// POST /api/v1/signin
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Invalid request payload")
		return
	}

	result, err := h.authSvc.Signin(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// KioskSignin 学生 kiosk 登录（完整学号或后 4 位）
// POST /api/v1/kiosk-signin/:user_id
func (h *AuthHandler) KioskSignin(c *gin.Context) {
	req := dto.KioskSigninRequest{UserID: c.Param("user_id")}
	if req.UserID == "" {
		response.BadRequest(c, 10001, "Invalid request payload")
		return
	}

	result, err := h.authSvc.KioskSignin(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// Token OAuth2 密码模式换取 Token（表单字段 username/password）
// POST /api/v1/token
func (h *AuthHandler) Token(c *gin.Context) {
	var form struct {
		Username string `form:"username" binding:"required"`
		Password string `form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, 10001, "Invalid request payload")
		return
	}

	result, err := h.authSvc.Signin(c.Request.Context(), &dto.SigninRequest{
		Email:    form.Username,
		Password: form.Password,
	})
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	// OAuth2 客户端只认这两个字段，不走统一 envelope
	c.JSON(http.StatusOK, gin.H{
		"access_token": result.AccessToken,
		"token_type":   result.TokenType,
	})
}

// VerifyEmail 发送邮箱验证码
// POST /api/v1/verify-email
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Invalid request payload")
		return
	}

	result, err := h.authSvc.VerifyEmail(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, 11003, "Failed to send verification email")
		return
	}

	response.OK(c, result)
}

// VerifyEmailCode 校验邮箱验证码
// POST /api/v1/verify-email-code
func (h *AuthHandler) VerifyEmailCode(c *gin.Context) {
	var req dto.VerifyEmailCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Invalid request payload")
		return
	}

	response.OK(c, h.authSvc.VerifyEmailCode(&req))
}

// ResetPassword 重置密码
// PATCH /api/v1/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Invalid request payload")
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), &req); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, gin.H{"detail": "Password updated successfully"})
}

// handleAuthError 认证模块业务错误 → HTTP 响应
func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailRegistered):
		response.BadRequest(c, 11001, err.Error())
	case errors.Is(err, service.ErrUserIDRegistered):
		response.BadRequest(c, 11001, err.Error())
	case errors.Is(err, service.ErrInvalidSouthernEmail):
		response.BadRequest(c, 11002, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, 11004, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 11005, err.Error())
	case errors.Is(err, service.ErrNoUserWithID):
		response.BadRequest(c, 11006, err.Error())
	default:
		response.InternalError(c)
	}
}
