package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/pawpals-api/internal/models"
	"github.com/sbilibin2017/pawpals-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	user := &models.UserDB{UserID: uuid.New(), Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}

	tests := []struct {
		name         string
		inputBody    any
		mockSetup    func()
		expectedCode int
	}{
		{
			name:      "success",
			inputBody: RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "pass123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "Alice", "alice@example.com", "pass123", (*float64)(nil), (*float64)(nil)).
					Return("JWT_TOKEN", user, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "success with location",
			inputBody: RegisterRequest{
				Name: "Alice", Email: "alice@example.com", Password: "pass123",
				LocationLatitude: ptr(52.5), LocationLongitude: ptr(13.4),
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "Alice", "alice@example.com", "pass123", ptr(52.5), ptr(13.4)).
					Return("JWT_TOKEN", user, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing name",
			inputBody:    RegisterRequest{Email: "alice@example.com", Password: "pass123"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "latitude out of range",
			inputBody:    RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "pass123", LocationLatitude: ptr(91.0)},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "user already exists",
			inputBody: RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "pass123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "internal error",
			inputBody: RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "pass123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := newRequest(t, http.MethodPost, "/api/auth/register", tt.inputBody, nil)
			rr := httptest.NewRecorder()

			NewRegisterHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusCreated {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "JWT_TOKEN", resp["token"])
				u := resp["user"].(map[string]any)
				assert.Equal(t, user.UserID.String(), u["id"])
				assert.NotContains(t, u, "password_hash")
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	user := &models.UserDB{UserID: uuid.New(), Email: "john@example.com"}

	tests := []struct {
		name         string
		inputBody    any
		mockSetup    func()
		expectedCode int
		expectedErr  string
	}{
		{
			name:      "success",
			inputBody: LoginRequest{Email: "john@example.com", Password: "pass123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "pass123").
					Return("JWT_TOKEN", user, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid request body",
		},
		{
			name:         "missing password",
			inputBody:    LoginRequest{Email: "john@example.com"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid field password: failed on required",
		},
		{
			name:      "wrong credentials",
			inputBody: LoginRequest{Email: "john@example.com", Password: "wrong"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "Invalid credentials",
		},
		{
			name:      "internal error",
			inputBody: LoginRequest{Email: "john@example.com", Password: "pass123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := newRequest(t, http.MethodPost, "/api/auth/login", tt.inputBody, nil)
			rr := httptest.NewRecorder()

			NewLoginHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeError(t, rr))
				return
			}
			var resp AuthResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "JWT_TOKEN", resp.Token)
			assert.Equal(t, user.UserID, resp.User.UserID)
		})
	}
}

func TestForgotPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPasswordForgetter(ctrl)

	t.Run("same answer for any email", func(t *testing.T) {
		mockSvc.EXPECT().ForgotPassword(gomock.Any(), "nobody@example.com").Return(nil)

		rr := httptest.NewRecorder()
		NewForgotPasswordHandler(mockSvc).ServeHTTP(rr, newRequest(t, http.MethodPost, "/", ForgotPasswordRequest{Email: "nobody@example.com"}, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, forgotPasswordMessage, resp.Message)
	})

	t.Run("missing email", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewForgotPasswordHandler(mockSvc).ServeHTTP(rr, newRequest(t, http.MethodPost, "/", `{}`, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Email is required", decodeError(t, rr))
	})
}

func TestResetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPasswordResetter(ctrl)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().ResetPassword(gomock.Any(), "tok", "newpass").Return(nil)

		rr := httptest.NewRecorder()
		NewResetPasswordHandler(mockSvc).ServeHTTP(rr, newRequest(t, http.MethodPost, "/", ResetPasswordRequest{Token: "tok", Password: "newpass"}, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		mockSvc.EXPECT().ResetPassword(gomock.Any(), "old", "newpass").Return(services.ErrInvalidResetToken)

		rr := httptest.NewRecorder()
		NewResetPasswordHandler(mockSvc).ServeHTTP(rr, newRequest(t, http.MethodPost, "/", ResetPasswordRequest{Token: "old", Password: "newpass"}, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
