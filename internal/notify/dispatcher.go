package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/wilkensonio/reconnect-api/internal/model"
	"github.com/wilkensonio/reconnect-api/internal/repository"
)

// Event 一次预约变更触发的通知事件
type Event struct {
	UserID    string
	EventType string
	Message   string
}

// SMSSender 短信出口，便于测试替换
type SMSSender interface {
	Send(ctx context.Context, message string) error
}

// Dispatcher 通知分发器：入库 → WebSocket 推送 → 短信
// 业务写入路径只负责投递事件，三路出口的失败互不影响、只记日志
type Dispatcher struct {
	events chan Event
	repo   repository.NotificationRepository
	hub    *Hub
	sms    SMSSender
	logger *zap.Logger
	done   chan struct{}
}

// NewDispatcher 创建 Dispatcher 实例，queueSize 为事件队列容量
func NewDispatcher(
	repo repository.NotificationRepository,
	hub *Hub,
	sms SMSSender,
	queueSize int,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		events: make(chan Event, queueSize),
		repo:   repo,
		hub:    hub,
		sms:    sms,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Enqueue 非阻塞投递；队列满时丢弃事件并记日志，不拖慢请求路径
func (d *Dispatcher) Enqueue(event Event) {
	select {
	case d.events <- event:
	default:
		d.logger.Warn("通知队列已满，事件被丢弃",
			zap.String("user_id", event.UserID),
			zap.String("event_type", event.EventType))
	}
}

// Run 启动分发循环，ctx 取消后排空队列再退出
func (d *Dispatcher) Run(ctx context.Context) {
	defer close(d.done)
	for {
		select {
		case event := <-d.events:
			d.deliver(event)
		case <-ctx.Done():
			for {
				select {
				case event := <-d.events:
					d.deliver(event)
				default:
					return
				}
			}
		}
	}
}

// Wait 阻塞到 Run 退出，用于优雅停机
func (d *Dispatcher) Wait() {
	<-d.done
}

func (d *Dispatcher) deliver(event Event) {
	ctx := context.Background()

	notification := &model.Notification{
		UserID:    event.UserID,
		EventType: event.EventType,
		Message:   event.Message,
	}
	if err := d.repo.Create(ctx, notification); err != nil {
		d.logger.Error("通知入库失败",
			zap.String("user_id", event.UserID), zap.Error(err))
	}

	if err := d.hub.Send(event.UserID, event.Message); err != nil {
		d.logger.Warn("WebSocket 推送失败",
			zap.String("user_id", event.UserID), zap.Error(err))
	}

	if d.sms != nil {
		if err := d.sms.Send(ctx, event.Message); err != nil {
			d.logger.Warn("短信发送失败",
				zap.String("user_id", event.UserID), zap.Error(err))
		}
	}
}
