package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/pawpals-api/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

// Registerer defines the interface that the register service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string, lat, lon *float64) (string, *models.UserDB, error)
}

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.UserDB, error)
}

// PasswordForgetter issues password reset tokens.
type PasswordForgetter interface {
	ForgotPassword(ctx context.Context, email string) error
}

// PasswordResetter consumes password reset tokens.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, token, password string) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// required: true
	// default: Alice
	Name string `json:"name" validate:"required"`

	// required: true
	// default: alice@example.com
	Email string `json:"email" validate:"required,email"`

	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`

	LocationLatitude  *float64 `json:"location_latitude,omitempty" validate:"omitempty,latitude"`
	LocationLongitude *float64 `json:"location_longitude,omitempty" validate:"omitempty,longitude"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// default: alice@example.com
	Email string `json:"email" validate:"required"`

	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned after a successful registration or login
// swagger:model AuthResponse
type AuthResponse struct {
	Message string         `json:"message,omitempty"`
	Token   string         `json:"token"`
	User    *models.UserDB `json:"user"`
}

// ForgotPasswordRequest represents the JSON body for a password reset request
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// ResetPasswordRequest represents the JSON body for setting a new password
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

const forgotPasswordMessage = "If your email is registered, you will receive a password reset link."

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Create an account and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Register Request"
// @Success 201 {object} handlers.AuthResponse "User registered successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or user already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		token, user, err := svc.Register(r.Context(), req.Name, req.Email, req.Password, req.LocationLatitude, req.LocationLongitude)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{
			Message: "User registered successfully",
			Token:   token,
			User:    user,
		})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.AuthResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: user})
	}
}

// NewForgotPasswordHandler returns an HTTP handler that starts a password reset.
// The response does not reveal whether the email is registered.
// @Summary Request a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Email is required"
// @Router /auth/forgot-password [post]
func NewForgotPasswordHandler(svc PasswordForgetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "Email is required")
			return
		}

		if err := svc.ForgotPassword(r.Context(), req.Email); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: forgotPasswordMessage})
	}
}

// NewResetPasswordHandler returns an HTTP handler that sets a new password from a reset token.
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired token"
// @Router /auth/reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password has been reset"})
	}
}
