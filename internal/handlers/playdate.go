package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/pawpals-api/internal/models"
)

//go:generate mockgen -source=playdate.go -destination=playdate_mock.go -package=handlers

// PlaydateCreator requests playdates.
type PlaydateCreator interface {
	Create(ctx context.Context, actingUserID uuid.UUID, playdate *models.PlaydateDB) (*models.PlaydateDB, error)
}

// UserPlaydateLister lists the playdates of every dog of a user.
type UserPlaydateLister interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.PlaydateDB, error)
}

// DogPlaydateLister lists the playdates of one dog.
type DogPlaydateLister interface {
	ListForDog(ctx context.Context, dogID, requesterID uuid.UUID, statusFilter string) ([]models.PlaydateDB, error)
}

// PlaydateGetter loads a playdate visible to the acting user.
type PlaydateGetter interface {
	Get(ctx context.Context, playdateID, actingUserID uuid.UUID) (*models.PlaydateDB, error)
}

// PlaydateUpdater reschedules or relocates playdates.
type PlaydateUpdater interface {
	Update(ctx context.Context, playdateID, actingUserID uuid.UUID, patch models.PlaydatePatch) (*models.PlaydateDB, error)
}

// PlaydateStatusUpdater moves playdates through their workflow.
type PlaydateStatusUpdater interface {
	UpdateStatus(ctx context.Context, playdateID, actingUserID uuid.UUID, newStatus string) (*models.PlaydateDB, error)
}

// PlaydateDeleter withdraws pending playdate requests.
type PlaydateDeleter interface {
	Delete(ctx context.Context, playdateID, actingUserID uuid.UUID) error
}

// CreatePlaydateRequest represents the JSON body for requesting a playdate.
// A status sent by the client is ignored; new playdates start pending.
// swagger:model CreatePlaydateRequest
type CreatePlaydateRequest struct {
	Dog1ID              uuid.UUID `json:"dog1_id" validate:"required" swaggertype:"string" format:"uuid"`
	Dog2ID              uuid.UUID `json:"dog2_id" validate:"required" swaggertype:"string" format:"uuid"`
	RequesterDogID      uuid.UUID `json:"requester_dog_id" validate:"required" swaggertype:"string" format:"uuid"`
	PlaydateTime        time.Time `json:"playdate_time" validate:"required"`
	LocationDescription *string   `json:"location_description,omitempty"`
	LocationLatitude    *float64  `json:"location_latitude,omitempty" validate:"omitempty,latitude"`
	LocationLongitude   *float64  `json:"location_longitude,omitempty" validate:"omitempty,longitude"`
}

// UpdatePlaydateRequest reschedules or relocates a playdate
// swagger:model UpdatePlaydateRequest
type UpdatePlaydateRequest struct {
	PlaydateTime        *time.Time `json:"playdate_time,omitempty"`
	LocationDescription *string    `json:"location_description,omitempty"`
	LocationLatitude    *float64   `json:"location_latitude,omitempty" validate:"omitempty,latitude"`
	LocationLongitude   *float64   `json:"location_longitude,omitempty" validate:"omitempty,longitude"`
}

// UpdatePlaydateStatusRequest carries the requested status
// swagger:model UpdatePlaydateStatusRequest
type UpdatePlaydateStatusRequest struct {
	// required: true
	// default: accepted
	Status string `json:"status" validate:"required,oneof=pending accepted declined cancelled completed"`
}

// NewCreatePlaydateHandler returns an HTTP handler that requests a playdate.
// @Summary Request a playdate
// @Tags playdates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createPlaydateRequest body handlers.CreatePlaydateRequest true "Playdate"
// @Success 201 {object} models.PlaydateDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Requester dog does not belong to the authenticated user"
// @Failure 404 {object} handlers.ErrorResponse "One or more dogs not found"
// @Router /playdates [post]
func NewCreatePlaydateHandler(svc PlaydateCreator, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, userIDGetter)
		if !ok {
			return
		}

		var req CreatePlaydateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		playdate, err := svc.Create(r.Context(), userID, &models.PlaydateDB{
			Dog1ID:              req.Dog1ID,
			Dog2ID:              req.Dog2ID,
			RequesterDogID:      req.RequesterDogID,
			PlaydateTime:        req.PlaydateTime.UTC(),
			LocationDescription: req.LocationDescription,
			LocationLatitude:    req.LocationLatitude,
			LocationLongitude:   req.LocationLongitude,
		})
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, playdate)
	}
}

// NewListUserPlaydatesHandler returns an HTTP handler that lists the playdates of the user's dogs.
// @Summary My playdates
// @Tags playdates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PlaydateDB
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /playdates/user [get]
func NewListUserPlaydatesHandler(svc UserPlaydateLister, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, userIDGetter)
		if !ok {
			return
		}

		playdates, err := svc.ListForUser(r.Context(), userID)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, playdates)
	}
}

// NewListDogPlaydatesHandler returns an HTTP handler that lists the playdates of one dog.
// @Summary Playdates of a dog
// @Tags playdates
// @Produce json
// @Security BearerAuth
// @Param dog_id path string true "Dog ID"
// @Param status query string false "pending, accepted, declined, cancelled, completed or upcoming"
// @Success 200 {array} models.PlaydateDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid dog ID format or status filter"
// @Failure 403 {object} handlers.ErrorResponse "Unauthorized to view this dog's playdates"
// @Failure 404 {object} handlers.ErrorResponse "Dog not found"
// @Router /playdates/dog/{dog_id} [get]
func NewListDogPlaydatesHandler(svc DogPlaydateLister, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, userIDGetter)
		if !ok {
			return
		}

		dogID, err := urlUUID(r, "dog_id")
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		playdates, err := svc.ListForDog(r.Context(), dogID, userID, r.URL.Query().Get("status"))
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, playdates)
	}
}

// NewGetPlaydateHandler returns an HTTP handler that returns a playdate to a participant owner.
// @Summary Get a playdate
// @Tags playdates
// @Produce json
// @Security BearerAuth
// @Param playdate_id path string true "Playdate ID"
// @Success 200 {object} models.PlaydateDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid playdate ID format"
// @Failure 403 {object} handlers.ErrorResponse "Not a participant"
// @Failure 404 {object} handlers.ErrorResponse "Playdate not found"
// @Router /playdates/{playdate_id} [get]
func NewGetPlaydateHandler(svc PlaydateGetter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, userIDGetter)
		if !ok {
			return
		}

		playdateID, err := urlUUID(r, "playdate_id")
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		playdate, err := svc.Get(r.Context(), playdateID, userID)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, playdate)
	}
}

// NewUpdatePlaydateHandler returns an HTTP handler that reschedules or relocates a playdate.
// @Summary Update a playdate
// @Tags playdates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param playdate_id path string true "Playdate ID"
// @Param updatePlaydateRequest body handlers.UpdatePlaydateRequest true "Fields to change"
// @Success 200 {object} models.PlaydateDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or playdate no longer editable"
// @Failure 403 {object} handlers.ErrorResponse "Not a participant"
// @Failure 404 {object} handlers.ErrorResponse "Playdate not found"
// @Failure 409 {object} handlers.ErrorResponse "Playdate changed concurrently"
// @Router /playdates/{playdate_id} [patch]
func NewUpdatePlaydateHandler(svc PlaydateUpdater, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, userIDGetter)
		if !ok {
			return
		}

		playdateID, err := urlUUID(r, "playdate_id")
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		var req UpdatePlaydateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		patch := models.PlaydatePatch{
			LocationDescription: req.LocationDescription,
			LocationLatitude:    req.LocationLatitude,
			LocationLongitude:   req.LocationLongitude,
		}
		if req.PlaydateTime != nil {
			t := req.PlaydateTime.UTC()
			patch.PlaydateTime = &t
		}

		playdate, err := svc.Update(r.Context(), playdateID, userID, patch)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, playdate)
	}
}

// NewUpdatePlaydateStatusHandler returns an HTTP handler that changes the status of a playdate.
// @Summary Change playdate status
// @Description pending -> accepted/declined (recipient only), pending -> cancelled, accepted -> cancelled/completed
// @Tags playdates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param playdate_id path string true "Playdate ID"
// @Param updatePlaydateStatusRequest body handlers.UpdatePlaydateStatusRequest true "New status"
// @Success 200 {object} models.PlaydateDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid status or transition"
// @Failure 403 {object} handlers.ErrorResponse "Not allowed to make this transition"
// @Failure 404 {object} handlers.ErrorResponse "Playdate not found"
// @Failure 409 {object} handlers.ErrorResponse "Playdate changed concurrently"
// @Router /playdates/{playdate_id}/status [patch]
func NewUpdatePlaydateStatusHandler(svc PlaydateStatusUpdater, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, userIDGetter)
		if !ok {
			return
		}

		playdateID, err := urlUUID(r, "playdate_id")
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		var req UpdatePlaydateStatusRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "Invalid or missing status")
			return
		}

		playdate, err := svc.UpdateStatus(r.Context(), playdateID, userID, req.Status)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, playdate)
	}
}

// NewDeletePlaydateHandler returns an HTTP handler that withdraws a pending playdate request.
// @Summary Delete a playdate
// @Tags playdates
// @Produce json
// @Security BearerAuth
// @Param playdate_id path string true "Playdate ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid playdate ID format"
// @Failure 403 {object} handlers.ErrorResponse "Unauthorized or playdate not in a deletable state"
// @Failure 404 {object} handlers.ErrorResponse "Playdate not found"
// @Router /playdates/{playdate_id} [delete]
func NewDeletePlaydateHandler(svc PlaydateDeleter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, userIDGetter)
		if !ok {
			return
		}

		playdateID, err := urlUUID(r, "playdate_id")
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := svc.Delete(r.Context(), playdateID, userID); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Playdate deleted successfully"})
	}
}
