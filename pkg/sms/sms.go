package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/wilkensonio/reconnect-api/config"
)

const sendTimeout = 10 * time.Second

// Client IFTTT Webhook 短信客户端
// 通过 maker.ifttt.com 的 trigger 事件转发短信，尽力而为
type Client struct {
	cfg    *config.SMSConfig
	http   *http.Client
	logger *zap.Logger
}

// NewClient 创建短信客户端
func NewClient(cfg *config.SMSConfig, logger *zap.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: sendTimeout},
		logger: logger,
	}
}

// Send 发送一条短信通知
// IFTTT 的 webhook 约定：POST {"value1": <message>}
func (c *Client) Send(ctx context.Context, message string) error {
	if c.cfg.IFTTTKey == "" {
		return fmt.Errorf("短信发送失败: 未配置 IFTTT key")
	}

	url := fmt.Sprintf("%s/%s/with/key/%s",
		c.cfg.WebhookURL, c.cfg.EventName, c.cfg.IFTTTKey)

	body, err := json.Marshal(map[string]string{"value1": message})
	if err != nil {
		return fmt.Errorf("短信请求序列化失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("构造短信请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("短信发送失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("短信发送失败: HTTP %d", resp.StatusCode)
	}

	c.logger.Debug("短信已发送", zap.String("event", c.cfg.EventName))
	return nil
}
