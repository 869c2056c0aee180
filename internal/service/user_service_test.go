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

func setupTestUserService() (UserService, *repository.Repository) {
	repo := newMockRepository()
	svc := NewUserService(repo, zap.NewNop())
	return svc, repo
}

func seedFaculty(t *testing.T, repo *repository.Repository, userID, email string) {
	t.Helper()
	if err := repo.Faculty.Create(context.Background(), &model.Faculty{
		UserID:    userID,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     email,
		Password:  "$2a$10$hash",
	}); err != nil {
		t.Fatalf("Create faculty 应成功: %v", err)
	}
}

// ── Update 测试 ──

func TestUserService_Update_PartialFields(t *testing.T) {
	svc, repo := setupTestUserService()
	seedFaculty(t, repo, "12345678", "doej1@southernct.edu")

	phone := "2035550000"
	updated, err := svc.Update(context.Background(), "12345678", &dto.UpdateUserRequest{
		PhoneNumber: &phone,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.PhoneNumber != "2035550000" {
		t.Errorf("期望PhoneNumber更新，实际=%s", updated.PhoneNumber)
	}
	if updated.FirstName != "Jane" || updated.Email != "doej1@southernct.edu" {
		t.Error("未指定的字段不应被修改")
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestUserService()

	phone := "2035550000"
	if _, err := svc.Update(context.Background(), "00000000", &dto.UpdateUserRequest{
		PhoneNumber: &phone,
	}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

// ── Delete 测试 ──

func TestUserService_Delete_ByEmail(t *testing.T) {
	svc, repo := setupTestUserService()
	seedFaculty(t, repo, "12345678", "doej1@southernct.edu")

	if err := svc.Delete(context.Background(), "doej1@southernct.edu"); err != nil {
		t.Fatalf("按邮箱 Delete 应成功: %v", err)
	}
	if _, err := svc.GetByUserID(context.Background(), "12345678"); !errors.Is(err, ErrUserNotFound) {
		t.Error("删除后不应再查到该教职工")
	}
}

func TestUserService_Delete_ByUserID(t *testing.T) {
	svc, repo := setupTestUserService()
	seedFaculty(t, repo, "12345678", "doej1@southernct.edu")

	if err := svc.Delete(context.Background(), "12345678"); err != nil {
		t.Fatalf("按工号 Delete 应成功: %v", err)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestUserService()

	if err := svc.Delete(context.Background(), "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}
