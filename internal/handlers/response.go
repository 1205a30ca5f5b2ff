package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/pawpals-api/internal/logger"
	"github.com/sbilibin2017/pawpals-api/internal/services"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: not found
	Error string `json:"error"`
}

// MessageResponse is the body of requests that only report success
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// UserIDGetter returns the authenticated user id of the request.
type UserIDGetter func(ctx context.Context) (uuid.UUID, bool)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeError maps a service error to its HTTP status.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrUserAlreadyExists),
		errors.Is(err, services.ErrInvalidResetToken):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeErrorMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrForbidden):
		writeErrorMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConcurrentUpdate):
		writeErrorMessage(w, http.StatusConflict, err.Error())
	default:
		logger.FromContext(ctx).Errorw("internal server error", "err", err)
		writeErrorMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON decodes and validates the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("invalid request body")
	}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid field %s: failed on %s", fe.Field(), fe.Tag())
		}
		return err
	}
	return nil
}

// urlUUID parses the chi URL parameter name as a uuid.
func urlUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s format", strings.ReplaceAll(name, "_", " "))
	}
	return id, nil
}

// currentUser returns the authenticated user or writes 401.
func currentUser(w http.ResponseWriter, r *http.Request, userIDGetter UserIDGetter) (uuid.UUID, bool) {
	userID, ok := userIDGetter(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "unauthorized")
	}
	return userID, ok
}
