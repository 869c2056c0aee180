package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wilkensonio/reconnect-api/config"
	"github.com/wilkensonio/reconnect-api/internal/dto"
	"github.com/wilkensonio/reconnect-api/internal/model"
	"github.com/wilkensonio/reconnect-api/internal/repository"
	"github.com/wilkensonio/reconnect-api/pkg/jwt"
	"github.com/wilkensonio/reconnect-api/pkg/mail"
)

// createdAtLayout 历史库里 created_at 存的是格式化文本
const createdAtLayout = "January 02, 2006"

var (
	ErrEmailRegistered      = errors.New("Email already registered")
	ErrUserIDRegistered     = errors.New("User ID already registered")
	ErrInvalidSouthernEmail = errors.New("Invalid southern email address")
	ErrInvalidCredentials   = errors.New("Invalid email or password")
	ErrUserNotFound         = errors.New("User not found")
	ErrNoUserWithID         = errors.New("No User exists with the provided ID")
)

// AuthService 认证业务接口
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	SignupStudent(ctx context.Context, req *dto.SignupStudentRequest) (*dto.StudentResponse, error)
	Signin(ctx context.Context, req *dto.SigninRequest) (*dto.TokenResponse, error)
	KioskSignin(ctx context.Context, req *dto.KioskSigninRequest) (*dto.TokenResponse, error)
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) (*dto.VerifyEmailResponse, error)
	VerifyEmailCode(req *dto.VerifyEmailCodeRequest) *dto.VerifyEmailCodeResponse
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type authService struct {
	cfg        *config.Config
	repo       *repository.Repository
	jwtMgr     *jwt.Manager
	mailSender *mail.Sender
	logger     *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	mailSender *mail.Sender,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:        cfg,
		repo:       repo,
		jwtMgr:     jwtMgr,
		mailSender: mailSender,
		logger:     logger,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	// 1. 邮箱 / 工号查重
	if _, err := s.repo.Faculty.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询教职工失败", zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.Faculty.GetByUserID(ctx, req.UserID); err == nil {
		return nil, ErrUserIDRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询教职工失败", zap.Error(err))
		return nil, err
	}

	// 2. 密码 bcrypt 哈希
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	// 3. 入库
	faculty := &model.Faculty{
		UserID:      req.UserID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    string(hash),
		PhoneNumber: req.PhoneNumber,
		CreatedAt:   time.Now().Format(createdAtLayout),
	}
	if err := s.repo.Faculty.Create(ctx, faculty); err != nil {
		s.logger.Error("创建教职工失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("教职工注册成功", zap.String("user_id", faculty.UserID))
	return facultyToResponse(faculty), nil
}

func (s *authService) SignupStudent(ctx context.Context, req *dto.SignupStudentRequest) (*dto.StudentResponse, error) {
	// 1. 校验校园邮箱域名
	if !isSouthernEmail(req.Email) {
		return nil, ErrInvalidSouthernEmail
	}

	// 2. 邮箱 / 学号查重
	if _, err := s.repo.Student.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.Student.GetByStudentID(ctx, req.StudentID); err == nil {
		return nil, ErrUserIDRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}

	// 3. 入库（kiosk 账号无密码）
	student := &model.Student{
		StudentID:   req.StudentID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		CreatedAt:   time.Now().Format(createdAtLayout),
	}
	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("创建学生失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("学生注册成功", zap.String("student_id", student.StudentID))
	return studentToResponse(student), nil
}

func (s *authService) Signin(ctx context.Context, req *dto.SigninRequest) (*dto.TokenResponse, error) {
	// 1. 查询用户
	faculty, err := s.repo.Faculty.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询教职工失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(faculty.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. 生成 Token（subject 为邮箱）
	accessToken, err := s.jwtMgr.GenerateToken(faculty.Email)
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		ID:          faculty.ID,
		UserID:      faculty.UserID,
		FirstName:   faculty.FirstName,
		LastName:    faculty.LastName,
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

func (s *authService) KioskSignin(ctx context.Context, req *dto.KioskSigninRequest) (*dto.TokenResponse, error) {
	// 完整学号精确匹配，4 位按尾号模糊匹配
	student, err := s.repo.Student.GetByStudentID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoUserWithID
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}

	// 生成 Token（subject 为学号）
	accessToken, err := s.jwtMgr.GenerateToken(student.StudentID)
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		ID:          student.ID,
		UserID:      student.StudentID,
		FirstName:   student.FirstName,
		LastName:    student.LastName,
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) (*dto.VerifyEmailResponse, error) {
	code, err := mail.GenerateVerificationCode()
	if err != nil {
		s.logger.Error("生成验证码失败", zap.Error(err))
		return nil, err
	}

	if err := s.mailSender.SendVerificationCode(req.Email, code); err != nil {
		s.logger.Error("发送验证码邮件失败",
			zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	return &dto.VerifyEmailResponse{VerificationCode: code}, nil
}

// VerifyEmailCode 无状态校验：验证码由客户端持有并回传，精确比对即可
func (s *authService) VerifyEmailCode(req *dto.VerifyEmailCodeRequest) *dto.VerifyEmailCodeResponse {
	return &dto.VerifyEmailCodeResponse{
		Details: req.UserCode == req.SecretCode,
	}
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	faculty, err := s.repo.Faculty.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("查询教职工失败", zap.Error(err))
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return err
	}

	faculty.Password = string(hash)
	if err := s.repo.Faculty.Update(ctx, faculty); err != nil {
		s.logger.Error("更新密码失败", zap.Error(err))
		return err
	}

	s.logger.Info("密码已重置", zap.String("user_id", faculty.UserID))
	return nil
}

// isSouthernEmail 校验邮箱域名是否为校园域（southernct. 开头）
func isSouthernEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	return strings.HasPrefix(parts[1], "southernct.")
}
