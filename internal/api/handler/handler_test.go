package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/wilkensonio/reconnect-api/internal/dto"
	"github.com/wilkensonio/reconnect-api/internal/service"
	"github.com/wilkensonio/reconnect-api/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	signupResult        *dto.UserResponse
	signupErr           error
	signupStudentResult *dto.StudentResponse
	signupStudentErr    error
	signinResult        *dto.TokenResponse
	signinErr           error
	kioskResult         *dto.TokenResponse
	kioskErr            error
	verifyEmailResult   *dto.VerifyEmailResponse
	verifyEmailErr      error
	resetPasswordErr    error
}

func (m *mockAuthService) Signup(_ context.Context, _ *dto.SignupRequest) (*dto.UserResponse, error) {
	return m.signupResult, m.signupErr
}
func (m *mockAuthService) SignupStudent(_ context.Context, _ *dto.SignupStudentRequest) (*dto.StudentResponse, error) {
	return m.signupStudentResult, m.signupStudentErr
}
func (m *mockAuthService) Signin(_ context.Context, _ *dto.SigninRequest) (*dto.TokenResponse, error) {
	return m.signinResult, m.signinErr
}
func (m *mockAuthService) KioskSignin(_ context.Context, _ *dto.KioskSigninRequest) (*dto.TokenResponse, error) {
	return m.kioskResult, m.kioskErr
}
func (m *mockAuthService) VerifyEmail(_ context.Context, _ *dto.VerifyEmailRequest) (*dto.VerifyEmailResponse, error) {
	return m.verifyEmailResult, m.verifyEmailErr
}
func (m *mockAuthService) VerifyEmailCode(req *dto.VerifyEmailCodeRequest) *dto.VerifyEmailCodeResponse {
	return &dto.VerifyEmailCodeResponse{Details: req.UserCode == req.SecretCode}
}
func (m *mockAuthService) ResetPassword(_ context.Context, _ *dto.ResetPasswordRequest) error {
	return m.resetPasswordErr
}

// ── Mock AppointmentService ──

type mockAppointmentService struct {
	createResult *dto.AppointmentResponse
	createErr    error
	getResult    *dto.AppointmentResponse
	getErr       error
	listResult   []dto.AppointmentResponse
	listErr      error
	byUserResult []dto.AppointmentResponse
	byUserErr    error
	updateResult *dto.AppointmentResponse
	updateErr    error
	deleteErr    error
}

func (m *mockAppointmentService) Create(_ context.Context, _ *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockAppointmentService) GetByID(_ context.Context, _ uint) (*dto.AppointmentResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockAppointmentService) List(_ context.Context) ([]dto.AppointmentResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockAppointmentService) ListByUser(_ context.Context, _ string) ([]dto.AppointmentResponse, error) {
	return m.byUserResult, m.byUserErr
}
func (m *mockAppointmentService) Update(_ context.Context, _ uint, _ *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockAppointmentService) Delete(_ context.Context, _ uint) error {
	return m.deleteErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportAppointments(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportAvailabilityICS(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ── Mock PiMessageService ──

type mockPiMessageService struct {
	updateResult *dto.PiMessageResponse
	updateErr    error
	lastUpdate   *dto.PiMessageRequest
	getResult    *dto.PiMessageResponse
	getErr       error
	listResult   []dto.PiMessageWithUserResponse
	listErr      error
	deleteErr    error
}

func (m *mockPiMessageService) Update(_ context.Context, req *dto.PiMessageRequest) (*dto.PiMessageResponse, error) {
	m.lastUpdate = req
	return m.updateResult, m.updateErr
}
func (m *mockPiMessageService) GetByUser(_ context.Context, _ string) (*dto.PiMessageResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockPiMessageService) List(_ context.Context) ([]dto.PiMessageWithUserResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockPiMessageService) DeleteByUser(_ context.Context, _ string) error {
	return m.deleteErr
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Signup_Success(t *testing.T) {
	mock := &mockAuthService{
		signupResult: &dto.UserResponse{ID: 1, UserID: "12345678"},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/signup", jsonBody(dto.SignupRequest{
		UserID:      "12345678",
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "doej1@southernct.edu",
		Password:    "password123",
		PhoneNumber: "2035551234",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/signup", h.Signup)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Signup_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/signup", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/signup", h.Signup)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	mock := &mockAuthService{signupErr: service.ErrEmailRegistered}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/signup", jsonBody(dto.SignupRequest{
		UserID:      "12345678",
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "doej1@southernct.edu",
		Password:    "password123",
		PhoneNumber: "2035551234",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/signup", h.Signup)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_Signin_InvalidCredentials(t *testing.T) {
	mock := &mockAuthService{signinErr: service.ErrInvalidCredentials}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/signin", jsonBody(dto.SigninRequest{
		Email:    "doej1@southernct.edu",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/signin", h.Signin)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11004 {
		t.Errorf("expected error code 11004, got %d", resp.Code)
	}
}

func TestAuthHandler_KioskSignin_NotFound(t *testing.T) {
	mock := &mockAuthService{kioskErr: service.ErrNoUserWithID}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/kiosk-signin/9999", nil)

	r := gin.New()
	r.POST("/kiosk-signin/:user_id", h.KioskSignin)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11006 {
		t.Errorf("expected error code 11006, got %d", resp.Code)
	}
	if resp.Message != "No User exists with the provided ID" {
		t.Errorf("unexpected message: %s", resp.Message)
	}
}

func TestAuthHandler_Token_Success(t *testing.T) {
	mock := &mockAuthService{
		signinResult: &dto.TokenResponse{AccessToken: "tok", TokenType: "bearer"},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	form := "username=doej1%40southernct.edu&password=password123"
	req := httptest.NewRequest("POST", "/token", bytes.NewReader([]byte(form)))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	r := gin.New()
	r.POST("/token", h.Token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["access_token"] != "tok" || body["token_type"] != "bearer" {
		t.Errorf("unexpected token body: %v", body)
	}
}

// ═══════════════════════════════════════════════════════════
// AppointmentHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAppointmentHandler_Create_Success(t *testing.T) {
	mock := &mockAppointmentService{
		createResult: &dto.AppointmentResponse{ID: 1, Status: "pending"},
	}
	h := NewAppointmentHandler(mock, &mockExportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/appointment/create", jsonBody(dto.CreateAppointmentRequest{
		Date:      "2025-10-06",
		StartTime: "10:00",
		EndTime:   "10:30",
		StudentID: "80012345",
		FacultyID: "12345678",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/appointment/create", h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestAppointmentHandler_GetByID_BadID(t *testing.T) {
	h := NewAppointmentHandler(&mockAppointmentService{}, &mockExportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/appointment/get-by-id/not-a-number", nil)

	r := gin.New()
	r.GET("/appointment/get-by-id/:id", h.GetByID)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAppointmentHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"NotFound", service.ErrAppointmentNotFound, 404, 15001},
		{"InvalidTime", service.ErrInvalidTimeFormat, 400, 15002},
		{"InvalidDate", service.ErrInvalidDateFormat, 400, 15003},
		{"InternalError", errors.New("unknown"), 500, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAppointmentService{getErr: tt.err}
			h := NewAppointmentHandler(mock, &mockExportService{})

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/appointment/get-by-id/1", nil)

			r := gin.New()
			r.GET("/appointment/get-by-id/:id", h.GetByID)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			resp := parseResponse(w)
			if resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestAppointmentHandler_Export_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("excel content"),
		filename: "appointments_12345678.xlsx",
	}
	h := NewAppointmentHandler(&mockAppointmentService{}, mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/appointments/export/12345678", nil)

	r := gin.New()
	r.GET("/appointments/export/:user_id", h.Export)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	ct := w.Header().Get("Content-Type")
	if ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type: %s", ct)
	}
	if w.Header().Get("Content-Disposition") == "" {
		t.Error("expected Content-Disposition header")
	}
}

func TestAppointmentHandler_Export_NoAppointments(t *testing.T) {
	mock := &mockExportService{err: service.ErrExportNoAppointments}
	h := NewAppointmentHandler(&mockAppointmentService{}, mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/appointments/export/12345678", nil)

	r := gin.New()
	r.GET("/appointments/export/:user_id", h.Export)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// PiMessageHandler Tests
// ═══════════════════════════════════════════════════════════

func TestPiMessageHandler_Update_Success(t *testing.T) {
	mock := &mockPiMessageService{
		updateResult: &dto.PiMessageResponse{UserID: "12345678", Message: "hello"},
	}
	h := NewPiMessageHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/pi-message/update/12345678", jsonBody(map[string]interface{}{
		"message":       "hello",
		"duration":      10,
		"duration_unit": "minutes",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/pi-message/update/:hootloot_id", h.Update)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.lastUpdate == nil || mock.lastUpdate.UserID != "12345678" {
		t.Errorf("expected hootloot id from path param, got %+v", mock.lastUpdate)
	}
}

func TestPiMessageHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"NotFound", service.ErrPiMessageNotFound, 404, 16001},
		{"InvalidDuration", service.ErrInvalidDuration, 400, 16002},
		{"InvalidUnit", service.ErrInvalidDurationUnit, 400, 16003},
		{"InvalidHootloot", service.ErrInvalidHootlootID, 400, 16004},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockPiMessageService{getErr: tt.err}
			h := NewPiMessageHandler(mock)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/pi-message/12345678", nil)

			r := gin.New()
			r.GET("/pi-message/:user_id", h.GetByUser)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			resp := parseResponse(w)
			if resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}
