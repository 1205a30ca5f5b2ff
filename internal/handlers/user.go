package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/pawpals-api/internal/models"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

// UserGetter loads a user by id.
type UserGetter interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileUpdater applies partial profile updates.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (*models.UserDB, error)
}

// UserDeleter deletes a user account.
type UserDeleter interface {
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// UpdateProfileRequest is a partial profile update; omitted fields keep their values
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Name              *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	LocationLatitude  *float64 `json:"location_latitude,omitempty" validate:"omitempty,latitude"`
	LocationLongitude *float64 `json:"location_longitude,omitempty" validate:"omitempty,longitude"`
	ProfileImageURL   *string  `json:"profile_image_url,omitempty"`
}

// NewGetMeHandler returns an HTTP handler that returns the authenticated user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserDB
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /auth/me [get]
func NewGetMeHandler(svc UserGetter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, userIDGetter)
		if !ok {
			return
		}

		user, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateMeHandler returns an HTTP handler that updates the authenticated user's profile.
// @Summary Update current user
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.UserDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /auth/me [put]
func NewUpdateMeHandler(svc ProfileUpdater, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, userIDGetter)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		user, err := svc.UpdateProfile(r.Context(), userID, models.UserPatch{
			Name:              req.Name,
			LocationLatitude:  req.LocationLatitude,
			LocationLongitude: req.LocationLongitude,
			ProfileImageURL:   req.ProfileImageURL,
		})
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteMeHandler returns an HTTP handler that deletes the authenticated user,
// their dogs and those dogs' playdates.
// @Summary Delete current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /auth/me [delete]
func NewDeleteMeHandler(svc UserDeleter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, userIDGetter)
		if !ok {
			return
		}

		if err := svc.DeleteUser(r.Context(), userID); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully"})
	}
}
