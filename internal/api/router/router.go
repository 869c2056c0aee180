package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wilkensonio/reconnect-api/config"
	"github.com/wilkensonio/reconnect-api/internal/api/handler"
	"github.com/wilkensonio/reconnect-api/internal/api/middleware"
	"github.com/wilkensonio/reconnect-api/internal/repository"
	"github.com/wilkensonio/reconnect-api/pkg/jwt"
	"github.com/wilkensonio/reconnect-api/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiKey := middleware.APIKeyAuth(repo.Secret, cfg.Auth.APIKeyHeader)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// WebSocket 通道与 OAuth2 token 端点不过 API Key 网关
		v1.GET("/ws/notifications/:user_id", h.WS.Subscribe)
		v1.POST("/ws_create_notifications/:user_id", h.WS.CreateAndPush)
		v1.POST("/token", h.Auth.Token)

		// 其余路由统一要求 API Key
		gated := v1.Group("", apiKey)
		{
			// 认证模块（登录类接口加限流）
			gated.POST("/signup", h.Auth.Signup)
			gated.POST("/signup-student", h.Auth.SignupStudent)
			gated.POST("/signin", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Signin)
			gated.POST("/kiosk-signin/:user_id", middleware.RateLimit(rdb, 20, time.Minute), h.Auth.KioskSignin)
			gated.POST("/verify-email", h.Auth.VerifyEmail)
			gated.POST("/verify-email-code", h.Auth.VerifyEmailCode)
			gated.PATCH("/reset-password", h.Auth.ResetPassword)

			// 教职工模块
			gated.GET("/users", h.User.List)
			gated.GET("/user/email/:email", h.User.GetByEmail)
			gated.GET("/user/userid/:user_id", h.User.GetByUserID)
			gated.PATCH("/user/update/:user_id", h.User.Update)
			gated.DELETE("/user/delete/:identifier", h.User.Delete)

			// 学生模块
			gated.GET("/students", h.Student.List)
			gated.GET("/student/:student_id", h.Student.GetByStudentID)
			gated.POST("/student/blacklist/:identifier", h.Student.Blacklist)
			gated.GET("/students/blacklist", h.Student.ListBlacklist)

			// 空闲时段模块
			gated.POST("/availability/create", h.Availability.Create)
			gated.GET("/availabilities", h.Availability.List)
			gated.GET("/availability/get-by-id/:id", h.Availability.GetByID)
			gated.GET("/availability/user/:user_id", h.Availability.ListByUser)
			gated.PATCH("/availability/update/:id", h.Availability.Update)
			gated.DELETE("/availability/delete/:id", h.Availability.Delete)
			gated.GET("/availability/export/:user_id", h.Availability.ExportICS)

			// 看板消息模块
			gated.PUT("/pi-message/update/:hootloot_id", h.PiMessage.Update)
			gated.GET("/pi-message/:user_id", h.PiMessage.GetByUser)
			gated.GET("/pi-messages", h.PiMessage.List)
			gated.DELETE("/pi-message/delete/:user_id", h.PiMessage.DeleteByUser)

			// 预约与通知模块额外要求 JWT
			authorized := gated.Group("", middleware.JWTAuth(jwtMgr))
			{
				authorized.POST("/appointment/create", h.Appointment.Create)
				authorized.GET("/appointments", h.Appointment.List)
				authorized.GET("/appointment/get-by-id/:id", h.Appointment.GetByID)
				authorized.GET("/appointments/user/:user_id", h.Appointment.ListByUser)
				authorized.PATCH("/appointment/update/:id", h.Appointment.Update)
				authorized.DELETE("/appointment/delete/:id", h.Appointment.Delete)
				authorized.GET("/appointments/export/:user_id", h.Appointment.Export)

				authorized.POST("/notification/create", h.Notification.Create)
				authorized.GET("/notifications/:user_id", h.Notification.ListByUser)
				authorized.DELETE("/notification/delete/:id", h.Notification.Delete)
				authorized.DELETE("/notifications/delete/:user_id", h.Notification.DeleteByUser)
			}
		}
	}

	return r
}
