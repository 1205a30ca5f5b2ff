package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sbilibin2017/pawpals-api/internal/models"
)

//go:generate mockgen -source=dog.go -destination=dog_mock.go -package=handlers

// DogCreator creates dogs.
type DogCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, dog *models.DogDB) (*models.DogDB, error)
}

// DogLister lists the dogs of a user.
type DogLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]models.DogDB, error)
}

// DogGetter loads a dog owned by the requester.
type DogGetter interface {
	Get(ctx context.Context, dogID, requesterID uuid.UUID) (*models.DogDB, error)
}

// DogUpdater applies partial dog updates.
type DogUpdater interface {
	Update(ctx context.Context, dogID, requesterID uuid.UUID, patch models.DogPatch) (*models.DogDB, error)
}

// DogDeleter deletes dogs.
type DogDeleter interface {
	Delete(ctx context.Context, dogID, requesterID uuid.UUID) error
}

// CreateDogRequest represents the JSON body for adding a dog
// swagger:model CreateDogRequest
type CreateDogRequest struct {
	// required: true
	// default: Rex
	Name            string   `json:"name" validate:"required"`
	Breed           *string  `json:"breed,omitempty"`
	AgeYears        *int     `json:"age_years,omitempty" validate:"omitempty,min=0"`
	Size            *string  `json:"size,omitempty" validate:"omitempty,oneof=small medium large"`
	Temperament     []string `json:"temperament,omitempty"`
	ProfileImageURL *string  `json:"profile_image_url,omitempty"`
}

// UpdateDogRequest is a partial dog update; omitted fields keep their values
// swagger:model UpdateDogRequest
type UpdateDogRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Breed           *string  `json:"breed,omitempty"`
	AgeYears        *int     `json:"age_years,omitempty" validate:"omitempty,min=0"`
	Size            *string  `json:"size,omitempty" validate:"omitempty,oneof=small medium large"`
	Temperament     []string `json:"temperament,omitempty"`
	ProfileImageURL *string  `json:"profile_image_url,omitempty"`
}

// NewCreateDogHandler returns an HTTP handler that adds a dog to the authenticated user.
// @Summary Add a dog
// @Tags dogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createDogRequest body handlers.CreateDogRequest true "Dog"
// @Success 201 {object} models.DogDB
// @Failure 400 {object} handlers.ErrorResponse "Dog name is required"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /dogs [post]
func NewCreateDogHandler(svc DogCreator, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, userIDGetter)
		if !ok {
			return
		}

		var req CreateDogRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		dog, err := svc.Create(r.Context(), userID, &models.DogDB{
			Name:            req.Name,
			Breed:           req.Breed,
			AgeYears:        req.AgeYears,
			Size:            req.Size,
			Temperament:     pq.StringArray(req.Temperament),
			ProfileImageURL: req.ProfileImageURL,
		})
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, dog)
	}
}

// NewListDogsHandler returns an HTTP handler that lists the authenticated user's dogs.
// @Summary List my dogs
// @Tags dogs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.DogDB
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /dogs [get]
func NewListDogsHandler(svc DogLister, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, userIDGetter)
		if !ok {
			return
		}

		dogs, err := svc.List(r.Context(), userID)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, dogs)
	}
}

// NewGetDogHandler returns an HTTP handler that returns one of the user's dogs.
// @Summary Get a dog
// @Tags dogs
// @Produce json
// @Security BearerAuth
// @Param dog_id path string true "Dog ID"
// @Success 200 {object} models.DogDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid dog ID format"
// @Failure 403 {object} handlers.ErrorResponse "Dog belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "Dog not found"
// @Router /dogs/{dog_id} [get]
func NewGetDogHandler(svc DogGetter, userIDGetter UserIDGetter) http.HandlerFunc {
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

		dog, err := svc.Get(r.Context(), dogID, userID)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, dog)
	}
}

// NewUpdateDogHandler returns an HTTP handler that partially updates a dog.
// @Summary Update a dog
// @Tags dogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dog_id path string true "Dog ID"
// @Param updateDogRequest body handlers.UpdateDogRequest true "Fields to change"
// @Success 200 {object} models.DogDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Dog belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "Dog not found"
// @Router /dogs/{dog_id} [put]
func NewUpdateDogHandler(svc DogUpdater, userIDGetter UserIDGetter) http.HandlerFunc {
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

		var req UpdateDogRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		dog, err := svc.Update(r.Context(), dogID, userID, models.DogPatch{
			Name:            req.Name,
			Breed:           req.Breed,
			AgeYears:        req.AgeYears,
			Size:            req.Size,
			Temperament:     req.Temperament,
			ProfileImageURL: req.ProfileImageURL,
		})
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, dog)
	}
}

// NewDeleteDogHandler returns an HTTP handler that deletes a dog and its playdates.
// @Summary Delete a dog
// @Tags dogs
// @Produce json
// @Security BearerAuth
// @Param dog_id path string true "Dog ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid dog ID format"
// @Failure 403 {object} handlers.ErrorResponse "Dog belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "Dog not found"
// @Router /dogs/{dog_id} [delete]
func NewDeleteDogHandler(svc DogDeleter, userIDGetter UserIDGetter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), dogID, userID); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Dog deleted successfully"})
	}
}
