package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/wilkensonio/reconnect-api/internal/dto"
	"github.com/wilkensonio/reconnect-api/internal/model"
	"github.com/wilkensonio/reconnect-api/internal/repository"
)

// ── 测试辅助 ──

func setupTestPiMessageService() (PiMessageService, *repository.Repository) {
	repo := newMockRepository()
	svc := NewPiMessageService(repo, nil, zap.NewNop())
	return svc, repo
}

// ── Update 测试 ──

func TestPiMessageService_Update_Upsert(t *testing.T) {
	svc, _ := setupTestPiMessageService()

	first, err := svc.Update(context.Background(), &dto.PiMessageRequest{
		UserID:       "12345678",
		Message:      "Office hours canceled today",
		Duration:     30,
		DurationUnit: "minutes",
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if first.Message != "Office hours canceled today" {
		t.Errorf("期望消息写入，实际=%s", first.Message)
	}

	// 同一用户再次写入 → 覆盖而非新增
	second, err := svc.Update(context.Background(), &dto.PiMessageRequest{
		UserID:       "12345678",
		Message:      "Back at 2pm",
		Duration:     2,
		DurationUnit: "hours",
	})
	if err != nil {
		t.Fatalf("二次 Update 应成功: %v", err)
	}
	if second.Message != "Back at 2pm" {
		t.Errorf("期望消息被覆盖，实际=%s", second.Message)
	}

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("upsert 后期望1条记录，实际=%d", len(all))
	}
}

func TestPiMessageService_Update_InvalidDuration(t *testing.T) {
	svc, repo := setupTestPiMessageService()

	for _, duration := range []int{0, -5} {
		_, err := svc.Update(context.Background(), &dto.PiMessageRequest{
			UserID:       "12345678",
			Message:      "hello",
			Duration:     duration,
			DurationUnit: "minutes",
		})
		if !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("duration=%d 期望 ErrInvalidDuration，实际: %v", duration, err)
		}
	}

	// 校验失败不落库
	if _, err := repo.PiMessage.GetByUser(context.Background(), "12345678"); err == nil {
		t.Error("校验失败时不应落库")
	}
}

func TestPiMessageService_Update_InvalidDurationUnit(t *testing.T) {
	svc, _ := setupTestPiMessageService()

	_, err := svc.Update(context.Background(), &dto.PiMessageRequest{
		UserID:       "12345678",
		Message:      "hello",
		Duration:     10,
		DurationUnit: "fortnights",
	})
	if !errors.Is(err, ErrInvalidDurationUnit) {
		t.Errorf("期望 ErrInvalidDurationUnit，实际: %v", err)
	}
}

func TestPiMessageService_Update_InvalidHootlootID(t *testing.T) {
	svc, _ := setupTestPiMessageService()

	for _, userID := range []string{"abc123", "", "12 34"} {
		_, err := svc.Update(context.Background(), &dto.PiMessageRequest{
			UserID:       userID,
			Message:      "hello",
			Duration:     10,
			DurationUnit: "minutes",
		})
		if !errors.Is(err, ErrInvalidHootlootID) {
			t.Errorf("user_id=%q 期望 ErrInvalidHootlootID，实际: %v", userID, err)
		}
	}
}

// ── GetByUser / List / Delete 测试 ──

func TestPiMessageService_GetByUser_NotFound(t *testing.T) {
	svc, _ := setupTestPiMessageService()

	_, err := svc.GetByUser(context.Background(), "12345678")
	if !errors.Is(err, ErrPiMessageNotFound) {
		t.Errorf("期望 ErrPiMessageNotFound，实际: %v", err)
	}
}

func TestPiMessageService_List_WithUserInfo(t *testing.T) {
	svc, repo := setupTestPiMessageService()

	if err := repo.Faculty.Create(context.Background(), &model.Faculty{
		UserID:    "12345678",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "doej1@southernct.edu",
	}); err != nil {
		t.Fatalf("Create faculty 应成功: %v", err)
	}
	if _, err := svc.Update(context.Background(), &dto.PiMessageRequest{
		UserID:       "12345678",
		Message:      "hello",
		Duration:     10,
		DurationUnit: "minutes",
	}); err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("期望1条记录，实际=%d", len(all))
	}
	if all[0].FirstName != "Jane" || all[0].LastName != "Doe" {
		t.Errorf("期望附带教职工姓名，实际=%s %s", all[0].FirstName, all[0].LastName)
	}
}

func TestPiMessageService_DeleteByUser(t *testing.T) {
	svc, _ := setupTestPiMessageService()

	if _, err := svc.Update(context.Background(), &dto.PiMessageRequest{
		UserID:       "12345678",
		Message:      "hello",
		Duration:     10,
		DurationUnit: "minutes",
	}); err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	if err := svc.DeleteByUser(context.Background(), "12345678"); err != nil {
		t.Fatalf("DeleteByUser 应成功: %v", err)
	}
	if err := svc.DeleteByUser(context.Background(), "12345678"); !errors.Is(err, ErrPiMessageNotFound) {
		t.Errorf("期望 ErrPiMessageNotFound，实际: %v", err)
	}
}
