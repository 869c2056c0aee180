package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/wilkensonio/reconnect-api/internal/dto"
	"github.com/wilkensonio/reconnect-api/internal/notify"
	"github.com/wilkensonio/reconnect-api/internal/service"
	"github.com/wilkensonio/reconnect-api/pkg/response"
)

// WSHandler WebSocket 通知推送处理器
type WSHandler struct {
	notificationSvc service.NotificationService
	hub             *notify.Hub
	upgrader        websocket.Upgrader
}

// NewWSHandler 创建 WSHandler
func NewWSHandler(notificationSvc service.NotificationService, hub *notify.Hub) *WSHandler {
	return &WSHandler{
		notificationSvc: notificationSvc,
		hub:             hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// 前端域名不固定，握手阶段不校验 Origin，鉴权靠 API Key 网关
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Subscribe 建立通知推送长连接
// GET /api/v1/ws/notifications/:user_id
func (h *WSHandler) Subscribe(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		response.BadRequest(c, 10001, "Missing user_id")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade 失败时 gorilla 已写好 HTTP 错误响应
		return
	}

	h.hub.Register(userID, conn)
	defer func() {
		h.hub.Unregister(userID, conn)
		conn.Close()
	}()

	// 客户端不发业务消息，读循环只为感知断连
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// CreateAndPush 落库并立即推送一条通知（kiosk 直发通道）
// POST /api/v1/ws_create_notifications/:user_id
func (h *WSHandler) CreateAndPush(c *gin.Context) {
	var body struct {
		EventType string `json:"event_type" binding:"required"`
		Message   string `json:"message"    binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, 10001, "Invalid request payload")
		return
	}

	req := dto.CreateNotificationRequest{
		UserID:    c.Param("user_id"),
		EventType: body.EventType,
		Message:   body.Message,
	}
	result, err := h.notificationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.NotFound(c, 17002, err.Error())
		return
	}

	// 在线则即时推送，不在线只落库
	_ = h.hub.Send(req.UserID, req.Message)

	response.Created(c, result)
}
