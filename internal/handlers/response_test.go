package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/pawpals-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		err          error
		expectedCode int
	}{
		{fmt.Errorf("%w: name is required", services.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: already completed", services.ErrInvalidTransition), http.StatusBadRequest},
		{services.ErrUserAlreadyExists, http.StatusBadRequest},
		{services.ErrInvalidResetToken, http.StatusBadRequest},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: not yours", services.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("%w: dog not found", services.ErrNotFound), http.StatusNotFound},
		{services.ErrConcurrentUpdate, http.StatusConflict},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			writeError(req.Context(), rr, tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			msg := decodeError(t, rr)
			if tt.expectedCode == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestDecodeJSON_ReportsJSONFieldNames(t *testing.T) {
	req := newRequest(t, http.MethodPost, "/", RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "x"}, nil)

	var body RegisterRequest
	err := decodeJSON(req, &body)
	assert.EqualError(t, err, "invalid field email: failed on email")
}

func TestURLUUID(t *testing.T) {
	req := newRequest(t, http.MethodGet, "/", nil, map[string]string{"dog_id": "nope"})
	_, err := urlUUID(req, "dog_id")
	assert.EqualError(t, err, "invalid dog id format")
}
