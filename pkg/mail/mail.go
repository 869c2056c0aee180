package mail

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/wilkensonio/reconnect-api/config"
)

// 验证码字符集：大写字母 + 数字，长度 6
const (
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength  = 6
)

// Sender SMTP 邮件发送器（验证码）
type Sender struct {
	cfg    *config.MailConfig
	logger *zap.Logger
}

// NewSender 创建邮件发送器
func NewSender(cfg *config.MailConfig, logger *zap.Logger) *Sender {
	return &Sender{cfg: cfg, logger: logger}
}

// GenerateVerificationCode 生成 6 位随机验证码
func GenerateVerificationCode() (string, error) {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeCharset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("生成验证码失败: %w", err)
		}
		buf[i] = codeCharset[n.Int64()]
	}
	return string(buf), nil
}

// SendVerificationCode 向指定邮箱发送验证码
func (s *Sender) SendVerificationCode(email, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Email Verification")
	m.SetBody("text/plain", fmt.Sprintf("Your email verification code is: %s", code))

	d := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		s.logger.Error("发送验证码邮件失败", zap.String("email", email), zap.Error(err))
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	s.logger.Info("验证码邮件已发送", zap.String("email", email))
	return nil
}
