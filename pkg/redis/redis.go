package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/wilkensonio/reconnect-api/config"
)

// Client Redis 客户端封装
// 当前用于速率限制与 pi-message 看板缓存；后续可扩展其他缓存场景
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 速率限制 ──

// CheckRateLimit 固定窗口计数器
// 返回 true 表示放行；首次命中时设置窗口过期
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// ── pi-message 看板缓存 ──
//
// 看板设备高频轮询展示消息，缓存减少数据库压力。
// 写接口（update/delete）负责失效。

const piMessagePrefix = "pi_message:"

// piMessageTTL 缓存兜底过期时间，防止失效通知丢失后长期陈旧
const piMessageTTL = 5 * time.Minute

// GetPiMessage 读取缓存的看板消息，未命中返回 (nil, nil)
func (c *Client) GetPiMessage(ctx context.Context, userID string, out interface{}) (bool, error) {
	raw, err := c.rdb.Get(ctx, piMessagePrefix+userID).Bytes()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetPiMessage 缓存看板消息
func (c *Client) SetPiMessage(ctx context.Context, userID string, msg interface{}) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, piMessagePrefix+userID, raw, piMessageTTL).Err()
}

// InvalidatePiMessage 失效看板消息缓存
func (c *Client) InvalidatePiMessage(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, piMessagePrefix+userID).Err()
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
