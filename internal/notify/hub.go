package notify

import (
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub 在线 WebSocket 连接注册表，按教职工工号索引
// 所有读写都经过互斥锁，连接 map 不对外暴露
type Hub struct {
	mu     sync.Mutex
	conns  map[string]*websocket.Conn
	logger *zap.Logger
}

// NewHub 创建 Hub 实例
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		conns:  make(map[string]*websocket.Conn),
		logger: logger,
	}
}

// Register 登记用户连接；同一用户重复连接时关闭旧连接，保留最新
func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.conns[userID]; ok {
		_ = old.Close()
	}
	h.conns[userID] = conn
	h.logger.Info("WebSocket 连接已登记", zap.String("user_id", userID))
}

// Unregister 注销用户连接；仅当当前登记的正是该连接时才移除
func (h *Hub) Unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if cur, ok := h.conns[userID]; ok && cur == conn {
		delete(h.conns, userID)
		h.logger.Info("WebSocket 连接已注销", zap.String("user_id", userID))
	}
}

// Send 向指定用户推送文本消息；用户不在线时静默跳过
func (h *Hub) Send(userID, message string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn, ok := h.conns[userID]
	if !ok {
		return nil
	}
	if err := conn.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
		delete(h.conns, userID)
		_ = conn.Close()
		return err
	}
	return nil
}

// Online 判断用户是否在线
func (h *Hub) Online(userID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.conns[userID]
	return ok
}
