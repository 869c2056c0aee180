package notify

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wilkensonio/reconnect-api/internal/model"
)

// ── 测试辅助 ──

type memNotificationRepo struct {
	mu   sync.Mutex
	rows []model.Notification
}

func (m *memNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n.ID = uint(len(m.rows) + 1)
	m.rows = append(m.rows, *n)
	return nil
}

func (m *memNotificationRepo) GetByID(_ context.Context, id uint) (*model.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			return &m.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memNotificationRepo) ListByUser(_ context.Context, userID string) ([]model.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.Notification
	for _, n := range m.rows {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	return result, nil
}

func (m *memNotificationRepo) Delete(_ context.Context, id uint) (int64, error) {
	return 0, nil
}

func (m *memNotificationRepo) DeleteByUser(_ context.Context, userID string) (int64, error) {
	return 0, nil
}

type fakeSMS struct {
	mu       sync.Mutex
	messages []string
}

func (f *fakeSMS) Send(_ context.Context, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, message)
	return nil
}

// ── Dispatcher 测试 ──

func TestDispatcher_DeliverPersistsAndSendsSMS(t *testing.T) {
	repo := &memNotificationRepo{}
	sms := &fakeSMS{}
	hub := NewHub(zap.NewNop())
	d := NewDispatcher(repo, hub, sms, 16, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	go d.Run(ctx)

	d.Enqueue(Event{
		UserID:    "12345678",
		EventType: "appointment_scheduled",
		Message:   "New appointment scheduled from 10:00 to 10:30 on October 06, 2025",
	})

	cancel()
	d.Wait()

	rows, _ := repo.ListByUser(context.Background(), "12345678")
	if len(rows) != 1 {
		t.Fatalf("期望1条通知入库，实际=%d", len(rows))
	}
	if rows[0].EventType != "appointment_scheduled" {
		t.Errorf("期望EventType保留，实际=%s", rows[0].EventType)
	}

	sms.mu.Lock()
	defer sms.mu.Unlock()
	if len(sms.messages) != 1 || sms.messages[0] != rows[0].Message {
		t.Errorf("期望短信与通知文案一致，实际=%v", sms.messages)
	}
}

func TestDispatcher_EnqueueFullQueueDrops(t *testing.T) {
	repo := &memNotificationRepo{}
	hub := NewHub(zap.NewNop())
	// 不启动 Run，队列容量 1
	d := NewDispatcher(repo, hub, nil, 1, zap.NewNop())

	d.Enqueue(Event{UserID: "u1", Message: "first"})
	// 队列已满，第二条被丢弃而不阻塞
	d.Enqueue(Event{UserID: "u1", Message: "second"})

	ctx, cancel := context.WithCancel(context.Background())
	go d.Run(ctx)
	cancel()
	d.Wait()

	rows, _ := repo.ListByUser(context.Background(), "u1")
	if len(rows) != 1 || rows[0].Message != "first" {
		t.Errorf("期望只投递第一条，实际=%v", rows)
	}
}

func TestDispatcher_DrainOnShutdown(t *testing.T) {
	repo := &memNotificationRepo{}
	hub := NewHub(zap.NewNop())
	d := NewDispatcher(repo, hub, nil, 16, zap.NewNop())

	for i := 0; i < 5; i++ {
		d.Enqueue(Event{UserID: "u1", EventType: "test", Message: "msg"})
	}

	// 先投递后启动，ctx 立即取消也应排空队列
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	go d.Run(ctx)
	d.Wait()

	rows, _ := repo.ListByUser(context.Background(), "u1")
	if len(rows) != 5 {
		t.Errorf("停机前期望排空全部5条，实际=%d", len(rows))
	}
}
