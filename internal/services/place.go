package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"
	"github.com/sbilibin2017/pawpals-api/internal/geo"
	"github.com/sbilibin2017/pawpals-api/internal/logger"
	"github.com/sbilibin2017/pawpals-api/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=place.go -destination=place_mock.go -package=services

// Pagination limits for place listings.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// DefaultNearbyRadiusKm is used when a proximity query gives no radius.
const DefaultNearbyRadiusKm = 10.0

var (
	minRating = decimal.Zero
	maxRating = decimal.NewFromInt(5)
)

// PlaceReader defines read-only operations for places.
type PlaceReader interface {
	GetByID(ctx context.Context, placeID uuid.UUID) (*models.PlaceDB, error)
	List(ctx context.Context, category *string, limit, offset int) ([]models.PlaceDB, error)
	Count(ctx context.Context, category *string) (int, error)
	ListWithCoordinates(ctx context.Context, category *string) ([]models.PlaceDB, error)
}

// PlaceWriter defines write operations for places.
type PlaceWriter interface {
	Save(ctx context.Context, place *models.PlaceDB) (*models.PlaceDB, error)
	Update(ctx context.Context, place *models.PlaceDB) (*models.PlaceDB, error)
	Delete(ctx context.Context, placeID uuid.UUID) error
}

// Geocoder resolves an address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat, lon float64, err error)
}

// PlaceList is one page of places.
type PlaceList struct {
	Places      []models.PlaceDB
	TotalItems  int
	TotalPages  int
	CurrentPage int
}

// PlaceService manages the place catalog.
type PlaceService struct {
	users    UserReader
	reader   PlaceReader
	writer   PlaceWriter
	geocoder Geocoder
}

// NewPlaceService creates a new PlaceService. geocoder may be nil, in which case
// places without coordinates are stored without them.
func NewPlaceService(users UserReader, reader PlaceReader, writer PlaceWriter, geocoder Geocoder) *PlaceService {
	return &PlaceService{users: users, reader: reader, writer: writer, geocoder: geocoder}
}

// Create stores a new unverified place added by adderID. When the coordinates are
// missing and street, city and country are known, the address is geocoded; a geocoding
// failure leaves the coordinates empty and does not fail the call.
func (s *PlaceService) Create(ctx context.Context, adderID uuid.UUID, place *models.PlaceDB) (*models.PlaceDB, error) {
	log := logger.FromContext(ctx)

	adder, err := s.users.GetByID(ctx, adderID)
	if err != nil {
		log.Errorw("failed to get user", "user_id", adderID, "error", err)
		return nil, err
	}
	if adder == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	if place.Rating.Valid {
		place.Rating.Decimal = place.Rating.Decimal.Round(1)
	}
	if err := validatePlace(place); err != nil {
		return nil, err
	}

	if !place.HasCoordinates() {
		s.geocode(ctx, place)
	}

	place.AddedByUserID = uuid.NullUUID{UUID: adderID, Valid: true}
	place.IsVerified = false

	saved, err := s.writer.Save(ctx, place)
	if err != nil {
		log.Errorw("failed to save place", "error", err)
		return nil, err
	}
	return saved, nil
}

func (s *PlaceService) geocode(ctx context.Context, place *models.PlaceDB) {
	if s.geocoder == nil || !hasText(place.AddressStreet) || !hasText(place.AddressCity) || !hasText(place.AddressCountry) {
		return
	}

	postalCode := ""
	if place.AddressPostalCode != nil {
		postalCode = *place.AddressPostalCode
	}
	query := fmt.Sprintf("%s, %s %s, %s", *place.AddressStreet, postalCode, *place.AddressCity, *place.AddressCountry)

	lat, lon, err := s.geocoder.Geocode(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Warnw("geocoding failed, storing place without coordinates",
			"address", query, "error", err)
		return
	}
	if !(geo.Point{Latitude: lat, Longitude: lon}).Valid() {
		logger.FromContext(ctx).Warnw("geocoder returned out of range coordinates",
			"address", query, "latitude", lat, "longitude", lon)
		return
	}

	place.LocationLatitude = &lat
	place.LocationLongitude = &lon
}

// Get returns the place or ErrNotFound.
func (s *PlaceService) Get(ctx context.Context, placeID uuid.UUID) (*models.PlaceDB, error) {
	place, err := s.reader.GetByID(ctx, placeID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get place", "place_id", placeID, "error", err)
		return nil, err
	}
	if place == nil {
		return nil, fmt.Errorf("%w: place not found", ErrNotFound)
	}
	return place, nil
}

// List returns one page of places, optionally filtered by category.
func (s *PlaceService) List(ctx context.Context, category *string, page models.Page) (*PlaceList, error) {
	if page.Number < 1 {
		return nil, fmt.Errorf("%w: page must be at least 1", ErrValidation)
	}
	if page.PerPage < 1 {
		return nil, fmt.Errorf("%w: per_page must be at least 1", ErrValidation)
	}
	if page.PerPage > MaxPerPage {
		page.PerPage = MaxPerPage
	}
	if page.Number > math.MaxInt/page.PerPage {
		return nil, fmt.Errorf("%w: page is too large", ErrValidation)
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)

	total, err := s.reader.Count(ctx, category)
	if err != nil {
		log.Errorw("failed to count places", "error", err)
		return nil, err
	}

	places, err := s.reader.List(ctx, category, page.PerPage, page.Offset())
	if err != nil {
		log.Errorw("failed to list places", "error", err)
		return nil, err
	}

	return &PlaceList{
		Places:      places,
		TotalItems:  total,
		TotalPages:  page.TotalPages(total),
		CurrentPage: page.Number,
	}, nil
}

// Update applies a partial update to a place.
func (s *PlaceService) Update(ctx context.Context, placeID uuid.UUID, patch models.PlacePatch) (*models.PlaceDB, error) {
	place, err := s.Get(ctx, placeID)
	if err != nil {
		return nil, err
	}

	patch.Apply(place)
	if err := validatePlace(place); err != nil {
		return nil, err
	}

	updated, err := s.writer.Update(ctx, place)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update place", "place_id", placeID, "error", err)
		return nil, err
	}
	return updated, nil
}

// Delete removes a place.
func (s *PlaceService) Delete(ctx context.Context, placeID uuid.UUID) error {
	if err := s.writer.Delete(ctx, placeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: place not found", ErrNotFound)
		}
		logger.FromContext(ctx).Errorw("failed to delete place", "place_id", placeID, "error", err)
		return err
	}
	return nil
}

// FindNearby returns the places with coordinates whose great-circle distance from
// (lat, lon) is at most radiusKm, nearest first.
func (s *PlaceService) FindNearby(ctx context.Context, lat, lon, radiusKm float64, category *string) ([]models.NearbyPlace, error) {
	origin := geo.Point{Latitude: lat, Longitude: lon}
	if !origin.Valid() {
		return nil, fmt.Errorf("%w: latitude must be within [-90, 90] and longitude within [-180, 180]", ErrValidation)
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm < 0 {
		return nil, fmt.Errorf("%w: radius must be a finite non-negative number", ErrValidation)
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	candidates, err := s.reader.ListWithCoordinates(ctx, category)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list places with coordinates", "error", err)
		return nil, err
	}

	nearby := make([]models.NearbyPlace, 0)
	for _, place := range candidates {
		if !place.HasCoordinates() {
			continue
		}
		d := geo.DistanceKm(origin, geo.Point{Latitude: *place.LocationLatitude, Longitude: *place.LocationLongitude})
		if d <= radiusKm {
			nearby = append(nearby, models.NearbyPlace{PlaceDB: place, DistanceKm: d})
		}
	}

	slices.SortStableFunc(nearby, func(a, b models.NearbyPlace) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		}
		return 0
	})

	return nearby, nil
}

func validatePlace(place *models.PlaceDB) error {
	if place.Name == "" {
		return fmt.Errorf("%w: place name is required", ErrValidation)
	}
	if !isPlaceType(place.Type) {
		return fmt.Errorf("%w: unknown place type %q", ErrValidation, place.Type)
	}
	if place.LocationLatitude != nil && (*place.LocationLatitude < -90 || *place.LocationLatitude > 90) {
		return fmt.Errorf("%w: latitude must be within [-90, 90]", ErrValidation)
	}
	if place.LocationLongitude != nil && (*place.LocationLongitude < -180 || *place.LocationLongitude > 180) {
		return fmt.Errorf("%w: longitude must be within [-180, 180]", ErrValidation)
	}
	if place.Rating.Valid && (place.Rating.Decimal.LessThan(minRating) || place.Rating.Decimal.GreaterThan(maxRating)) {
		return fmt.Errorf("%w: rating must be within [0, 5]", ErrValidation)
	}
	return nil
}

func validateCategory(category *string) error {
	if category != nil && !isPlaceType(*category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, *category)
	}
	return nil
}

func isPlaceType(t string) bool {
	switch t {
	case models.PlaceTypePark, models.PlaceTypeCafe, models.PlaceTypeHotel, models.PlaceTypeBeach,
		models.PlaceTypeRestaurant, models.PlaceTypeStore, models.PlaceTypeOther:
		return true
	}
	return false
}

func hasText(s *string) bool {
	return s != nil && *s != ""
}
