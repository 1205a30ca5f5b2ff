package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sbilibin2017/pawpals-api/internal/models"
	"github.com/sbilibin2017/pawpals-api/internal/services"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=place.go -destination=place_mock.go -package=handlers

// PlaceCreator adds places to the catalog.
type PlaceCreator interface {
	Create(ctx context.Context, adderID uuid.UUID, place *models.PlaceDB) (*models.PlaceDB, error)
}

// PlaceLister pages through the catalog.
type PlaceLister interface {
	List(ctx context.Context, category *string, page models.Page) (*services.PlaceList, error)
}

// NearbyFinder runs proximity queries.
type NearbyFinder interface {
	FindNearby(ctx context.Context, lat, lon, radiusKm float64, category *string) ([]models.NearbyPlace, error)
}

// PlaceGetter loads a place.
type PlaceGetter interface {
	Get(ctx context.Context, placeID uuid.UUID) (*models.PlaceDB, error)
}

// PlaceUpdater applies partial place updates.
type PlaceUpdater interface {
	Update(ctx context.Context, placeID uuid.UUID, patch models.PlacePatch) (*models.PlaceDB, error)
}

// PlaceDeleter deletes places.
type PlaceDeleter interface {
	Delete(ctx context.Context, placeID uuid.UUID) error
}

// CreatePlaceRequest represents the JSON body for adding a place. Coordinates are
// geocoded from the address when omitted.
// swagger:model CreatePlaceRequest
type CreatePlaceRequest struct {
	// required: true
	// default: Tiergarten
	Name string `json:"name" validate:"required"`

	// required: true
	// default: park
	Type string `json:"type" validate:"required,oneof=park cafe hotel beach restaurant store other"`

	AddressStreet        *string          `json:"address_street,omitempty"`
	AddressCity          *string          `json:"address_city,omitempty"`
	AddressStateProvince *string          `json:"address_state_province,omitempty"`
	AddressPostalCode    *string          `json:"address_postal_code,omitempty"`
	AddressCountry       *string          `json:"address_country,omitempty"`
	LocationLatitude     *float64         `json:"location_latitude,omitempty" validate:"omitempty,latitude"`
	LocationLongitude    *float64         `json:"location_longitude,omitempty" validate:"omitempty,longitude"`
	Description          *string          `json:"description,omitempty"`
	Rating               *decimal.Decimal `json:"rating,omitempty" swaggertype:"number"`
	PhoneNumber          *string          `json:"phone_number,omitempty"`
	WebsiteURL           *string          `json:"website_url,omitempty"`
	HoursOfOperation     models.JSONB     `json:"hours_of_operation,omitempty" swaggertype:"object"`
	ImagesURLs           []string         `json:"images_urls,omitempty"`
}

// UpdatePlaceRequest is a partial place update; omitted fields keep their values
// swagger:model UpdatePlaceRequest
type UpdatePlaceRequest struct {
	Name                 *string          `json:"name,omitempty" validate:"omitempty,min=1"`
	Type                 *string          `json:"type,omitempty" validate:"omitempty,oneof=park cafe hotel beach restaurant store other"`
	AddressStreet        *string          `json:"address_street,omitempty"`
	AddressCity          *string          `json:"address_city,omitempty"`
	AddressStateProvince *string          `json:"address_state_province,omitempty"`
	AddressPostalCode    *string          `json:"address_postal_code,omitempty"`
	AddressCountry       *string          `json:"address_country,omitempty"`
	LocationLatitude     *float64         `json:"location_latitude,omitempty" validate:"omitempty,latitude"`
	LocationLongitude    *float64         `json:"location_longitude,omitempty" validate:"omitempty,longitude"`
	Description          *string          `json:"description,omitempty"`
	Rating               *decimal.Decimal `json:"rating,omitempty" swaggertype:"number"`
	PhoneNumber          *string          `json:"phone_number,omitempty"`
	WebsiteURL           *string          `json:"website_url,omitempty"`
	HoursOfOperation     models.JSONB     `json:"hours_of_operation,omitempty" swaggertype:"object"`
	ImagesURLs           []string         `json:"images_urls,omitempty"`
	IsVerified           *bool            `json:"is_verified,omitempty"`
}

// PlaceListResponse is one page of places
// swagger:model PlaceListResponse
type PlaceListResponse struct {
	Places      []models.PlaceDB `json:"places"`
	TotalPages  int              `json:"total_pages"`
	CurrentPage int              `json:"current_page"`
	TotalItems  int              `json:"total_items"`
}

// NewCreatePlaceHandler returns an HTTP handler that adds a place.
// @Summary Add a place
// @Tags places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createPlaceRequest body handlers.CreatePlaceRequest true "Place"
// @Success 201 {object} models.PlaceDB
// @Failure 400 {object} handlers.ErrorResponse "Place name and type are required"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /places [post]
func NewCreatePlaceHandler(svc PlaceCreator, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, userIDGetter)
		if !ok {
			return
		}

		var req CreatePlaceRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		place := &models.PlaceDB{
			Name:                 req.Name,
			Type:                 req.Type,
			AddressStreet:        req.AddressStreet,
			AddressCity:          req.AddressCity,
			AddressStateProvince: req.AddressStateProvince,
			AddressPostalCode:    req.AddressPostalCode,
			AddressCountry:       req.AddressCountry,
			LocationLatitude:     req.LocationLatitude,
			LocationLongitude:    req.LocationLongitude,
			Description:          req.Description,
			PhoneNumber:          req.PhoneNumber,
			WebsiteURL:           req.WebsiteURL,
			HoursOfOperation:     req.HoursOfOperation,
			ImagesURLs:           pq.StringArray(req.ImagesURLs),
		}
		if req.Rating != nil {
			place.Rating = decimal.NewNullDecimal(*req.Rating)
		}

		created, err := svc.Create(r.Context(), userID, place)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// NewListPlacesHandler returns an HTTP handler that pages through places.
// @Summary List places
// @Tags places
// @Produce json
// @Param category query string false "Place type"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} handlers.PlaceListResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination"
// @Router /places [get]
func NewListPlacesHandler(svc PlaceLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		page, err := intQuery(q.Get("page"), 1)
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "invalid page")
			return
		}
		perPage, err := intQuery(q.Get("per_page"), services.DefaultPerPage)
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "invalid per_page")
			return
		}

		list, err := svc.List(r.Context(), optionalQuery(q.Get("category")), models.Page{Number: page, PerPage: perPage})
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, PlaceListResponse{
			Places:      list.Places,
			TotalPages:  list.TotalPages,
			CurrentPage: list.CurrentPage,
			TotalItems:  list.TotalItems,
		})
	}
}

// NewNearbyPlacesHandler returns an HTTP handler for proximity search.
// @Summary Places near a point
// @Description Places within radius km of the point, nearest first
// @Tags places
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radius query number false "Radius in km" default(10)
// @Param category query string false "Place type"
// @Success 200 {array} models.NearbyPlace
// @Failure 400 {object} handlers.ErrorResponse "Invalid latitude, longitude, or radius parameters"
// @Router /places/nearby [get]
func NewNearbyPlacesHandler(svc NearbyFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		lat, errLat := strconv.ParseFloat(q.Get("latitude"), 64)
		lon, errLon := strconv.ParseFloat(q.Get("longitude"), 64)
		radius, errRadius := floatQuery(q.Get("radius"), services.DefaultNearbyRadiusKm)
		if errLat != nil || errLon != nil || errRadius != nil {
			writeErrorMessage(w, http.StatusBadRequest, "Invalid latitude, longitude, or radius parameters")
			return
		}

		places, err := svc.FindNearby(r.Context(), lat, lon, radius, optionalQuery(q.Get("category")))
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, places)
	}
}

// NewGetPlaceHandler returns an HTTP handler that returns a place.
// @Summary Get a place
// @Tags places
// @Produce json
// @Param place_id path string true "Place ID"
// @Success 200 {object} models.PlaceDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid place ID format"
// @Failure 404 {object} handlers.ErrorResponse "Place not found"
// @Router /places/{place_id} [get]
func NewGetPlaceHandler(svc PlaceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		placeID, err := urlUUID(r, "place_id")
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		place, err := svc.Get(r.Context(), placeID)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, place)
	}
}

// NewUpdatePlaceHandler returns an HTTP handler that partially updates a place.
// @Summary Update a place
// @Tags places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param place_id path string true "Place ID"
// @Param updatePlaceRequest body handlers.UpdatePlaceRequest true "Fields to change"
// @Success 200 {object} models.PlaceDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Place not found"
// @Router /places/{place_id} [put]
func NewUpdatePlaceHandler(svc PlaceUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		placeID, err := urlUUID(r, "place_id")
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		var req UpdatePlaceRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		place, err := svc.Update(r.Context(), placeID, models.PlacePatch{
			Name:                 req.Name,
			Type:                 req.Type,
			AddressStreet:        req.AddressStreet,
			AddressCity:          req.AddressCity,
			AddressStateProvince: req.AddressStateProvince,
			AddressPostalCode:    req.AddressPostalCode,
			AddressCountry:       req.AddressCountry,
			LocationLatitude:     req.LocationLatitude,
			LocationLongitude:    req.LocationLongitude,
			Description:          req.Description,
			Rating:               req.Rating,
			PhoneNumber:          req.PhoneNumber,
			WebsiteURL:           req.WebsiteURL,
			HoursOfOperation:     req.HoursOfOperation,
			ImagesURLs:           req.ImagesURLs,
			IsVerified:           req.IsVerified,
		})
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, place)
	}
}

// NewDeletePlaceHandler returns an HTTP handler that deletes a place.
// @Summary Delete a place
// @Tags places
// @Produce json
// @Security BearerAuth
// @Param place_id path string true "Place ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid place ID format"
// @Failure 404 {object} handlers.ErrorResponse "Place not found"
// @Router /places/{place_id} [delete]
func NewDeletePlaceHandler(svc PlaceDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		placeID, err := urlUUID(r, "place_id")
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := svc.Delete(r.Context(), placeID); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Place deleted successfully"})
	}
}

func intQuery(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func floatQuery(raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func optionalQuery(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}
