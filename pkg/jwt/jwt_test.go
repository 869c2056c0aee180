package jwt

import (
	"testing"
	"time"

	"github.com/wilkensonio/reconnect-api/config"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL: ttl,
	})
}

func TestGenerateAndParseToken(t *testing.T) {
	m := newTestManager(45 * time.Minute)

	token, err := m.GenerateToken("john.doe@southernct.edu")
	if err != nil {
		t.Fatalf("GenerateToken 失败: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}

	if claims.Subject != "john.doe@southernct.edu" {
		t.Errorf("期望 Subject=john.doe@southernct.edu，实际=%s", claims.Subject)
	}
	if claims.Issuer != "reconnect" {
		t.Errorf("期望 Issuer=reconnect，实际=%s", claims.Issuer)
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := newTestManager(-time.Minute)

	token, err := m.GenerateToken("705735368")
	if err != nil {
		t.Fatalf("GenerateToken 失败: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrTokenExpired {
		t.Errorf("期望 ErrTokenExpired，实际: %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager(45 * time.Minute)
	token, err := m.GenerateToken("705735368")
	if err != nil {
		t.Fatalf("GenerateToken 失败: %v", err)
	}

	other := NewManager(&config.AuthConfig{
		JWTSecret:      "another-secret-key-entirely-1234",
		AccessTokenTTL: 45 * time.Minute,
	})

	if _, err := other.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager(45 * time.Minute)

	if _, err := m.ParseToken("not-a-jwt"); err != ErrTokenInvalid {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}
