package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/wilkensonio/reconnect-api/internal/model"
	"github.com/wilkensonio/reconnect-api/internal/repository"
)

// ── 测试辅助 ──

func setupTestStudentService() (StudentService, *repository.Repository) {
	repo := newMockRepository()
	svc := NewStudentService(repo, zap.NewNop())
	return svc, repo
}

func seedStudent(t *testing.T, repo *repository.Repository, studentID, email string) {
	t.Helper()
	if err := repo.Student.Create(context.Background(), &model.Student{
		StudentID: studentID,
		FirstName: "Alex",
		LastName:  "Kim",
		Email:     email,
	}); err != nil {
		t.Fatalf("Create student 应成功: %v", err)
	}
}

// ── 黑名单测试 ──

func TestStudentService_Blacklist_ByStudentID(t *testing.T) {
	svc, repo := setupTestStudentService()
	seedStudent(t, repo, "80012345", "kima3@southernct.edu")

	entry, err := svc.Blacklist(context.Background(), "80012345")
	if err != nil {
		t.Fatalf("Blacklist 应成功: %v", err)
	}
	if entry.UserID != "80012345" {
		t.Errorf("期望UserID=80012345，实际=%s", entry.UserID)
	}

	// 拉黑后 List 不再返回该学生
	students, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	for _, s := range students {
		if s.StudentID == "80012345" {
			t.Error("已拉黑学生不应出现在列表中")
		}
	}
}

func TestStudentService_Blacklist_ByEmail(t *testing.T) {
	svc, repo := setupTestStudentService()
	seedStudent(t, repo, "80012345", "kima3@southernct.edu")

	entry, err := svc.Blacklist(context.Background(), "kima3@southernct.edu")
	if err != nil {
		t.Fatalf("按邮箱 Blacklist 应成功: %v", err)
	}
	if entry.UserID != "80012345" {
		t.Errorf("期望解析为学号80012345，实际=%s", entry.UserID)
	}
}

// 历史行为：标识既非学号也非邮箱时原样入库，不报错
func TestStudentService_Blacklist_UnknownIdentifier(t *testing.T) {
	svc, _ := setupTestStudentService()

	entry, err := svc.Blacklist(context.Background(), "whatever")
	if err != nil {
		t.Fatalf("Blacklist 应成功: %v", err)
	}
	if entry.UserID != "whatever" {
		t.Errorf("期望原样入库，实际=%s", entry.UserID)
	}
}

func TestStudentService_ListBlacklist(t *testing.T) {
	svc, repo := setupTestStudentService()
	seedStudent(t, repo, "80012345", "kima3@southernct.edu")
	seedStudent(t, repo, "80067890", "leep5@southernct.edu")

	if _, err := svc.Blacklist(context.Background(), "80012345"); err != nil {
		t.Fatalf("Blacklist 应成功: %v", err)
	}

	entries, err := svc.ListBlacklist(context.Background())
	if err != nil {
		t.Fatalf("ListBlacklist 应成功: %v", err)
	}
	if len(entries) != 1 || entries[0].UserID != "80012345" {
		t.Errorf("期望黑名单仅含80012345，实际=%v", entries)
	}
}
