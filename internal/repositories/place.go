package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/pawpals-api/internal/models"
)

const placeColumns = `id, name, type, address_street, address_city, address_state_province,
	address_postal_code, address_country, location_latitude, location_longitude, description,
	rating, phone_number, website_url, hours_of_operation, images_urls, added_by_user_id,
	is_verified, created_at, updated_at`

// PlaceReadRepository handles place read operations
type PlaceReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPlaceReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PlaceReadRepository {
	return &PlaceReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns nil, nil when the place does not exist.
func (r *PlaceReadRepository) GetByID(ctx context.Context, placeID uuid.UUID) (*models.PlaceDB, error) {
	query := `
		SELECT ` + placeColumns + `
		FROM places
		WHERE id = $1
	`

	var place models.PlaceDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &place, query, placeID)

	logQuery(ctx, query, []any{placeID}, place.PlaceID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// List returns one page of places, optionally restricted to a category (place type).
func (r *PlaceReadRepository) List(ctx context.Context, category *string, limit, offset int) ([]models.PlaceDB, error) {
	query := `
		SELECT ` + placeColumns + `
		FROM places
		WHERE ($1::VARCHAR IS NULL OR type = $1)
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3
	`
	args := []any{category, limit, offset}

	places := make([]models.PlaceDB, 0)
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &places, query, args...)

	logQuery(ctx, query, args, len(places), err)

	if err != nil {
		return nil, err
	}
	return places, nil
}

// Count returns the number of places matching the optional category.
func (r *PlaceReadRepository) Count(ctx context.Context, category *string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM places
		WHERE ($1::VARCHAR IS NULL OR type = $1)
	`

	var total int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &total, query, category)

	logQuery(ctx, query, []any{category}, total, err)

	return total, err
}

// ListWithCoordinates returns every place that has both coordinates set,
// optionally restricted to a category. It is the candidate set for proximity search.
func (r *PlaceReadRepository) ListWithCoordinates(ctx context.Context, category *string) ([]models.PlaceDB, error) {
	query := `
		SELECT ` + placeColumns + `
		FROM places
		WHERE location_latitude IS NOT NULL
		  AND location_longitude IS NOT NULL
		  AND ($1::VARCHAR IS NULL OR type = $1)
	`

	places := make([]models.PlaceDB, 0)
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &places, query, category)

	logQuery(ctx, query, []any{category}, len(places), err)

	if err != nil {
		return nil, err
	}
	return places, nil
}

// PlaceWriteRepository handles place write operations
type PlaceWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPlaceWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PlaceWriteRepository {
	return &PlaceWriteRepository{db: db, txGetter: txGetter}
}

func (r *PlaceWriteRepository) Save(ctx context.Context, place *models.PlaceDB) (*models.PlaceDB, error) {
	query := `
		INSERT INTO places (id, name, type, address_street, address_city, address_state_province,
			address_postal_code, address_country, location_latitude, location_longitude, description,
			rating, phone_number, website_url, hours_of_operation, images_urls, added_by_user_id,
			is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NOW(), NOW())
		RETURNING ` + placeColumns + `
	`
	if place.PlaceID == uuid.Nil {
		place.PlaceID = uuid.New()
	}
	args := []any{
		place.PlaceID, place.Name, place.Type, place.AddressStreet, place.AddressCity,
		place.AddressStateProvince, place.AddressPostalCode, place.AddressCountry,
		place.LocationLatitude, place.LocationLongitude, place.Description, place.Rating,
		place.PhoneNumber, place.WebsiteURL, place.HoursOfOperation, place.ImagesURLs,
		place.AddedByUserID, place.IsVerified,
	}

	var saved models.PlaceDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logQuery(ctx, query, args, saved.PlaceID, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update rewrites every mutable column. The adder is never changed.
func (r *PlaceWriteRepository) Update(ctx context.Context, place *models.PlaceDB) (*models.PlaceDB, error) {
	query := `
		UPDATE places
		SET name = $2, type = $3, address_street = $4, address_city = $5, address_state_province = $6,
			address_postal_code = $7, address_country = $8, location_latitude = $9,
			location_longitude = $10, description = $11, rating = $12, phone_number = $13,
			website_url = $14, hours_of_operation = $15, images_urls = $16, is_verified = $17,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + placeColumns + `
	`
	args := []any{
		place.PlaceID, place.Name, place.Type, place.AddressStreet, place.AddressCity,
		place.AddressStateProvince, place.AddressPostalCode, place.AddressCountry,
		place.LocationLatitude, place.LocationLongitude, place.Description, place.Rating,
		place.PhoneNumber, place.WebsiteURL, place.HoursOfOperation, place.ImagesURLs, place.IsVerified,
	}

	var saved models.PlaceDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logQuery(ctx, query, args, saved.UpdatedAt, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *PlaceWriteRepository) Delete(ctx context.Context, placeID uuid.UUID) error {
	return deleteByID(ctx, executor(ctx, r.db, r.txGetter), "places", placeID)
}
