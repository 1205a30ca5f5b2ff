package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/pawpals-api/internal/models"
)

const playdateColumns = `p.id, p.dog1_id, p.dog2_id, p.requester_dog_id, p.playdate_time,
	p.location_description, p.location_latitude, p.location_longitude, p.status,
	p.created_at, p.updated_at`

// PlaydateReadRepository handles playdate read operations
type PlaydateReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPlaydateReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PlaydateReadRepository {
	return &PlaydateReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns nil, nil when the playdate does not exist.
func (r *PlaydateReadRepository) GetByID(ctx context.Context, playdateID uuid.UUID) (*models.PlaydateDB, error) {
	query := `
		SELECT ` + playdateColumns + `
		FROM playdates p
		WHERE p.id = $1
	`

	var playdate models.PlaydateDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &playdate, query, playdateID)

	logQuery(ctx, query, []any{playdateID}, playdate.Status, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &playdate, nil
}

// ListByUserID returns every playdate in which one of the user's dogs takes part,
// newest playdate_time first.
func (r *PlaydateReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PlaydateDB, error) {
	query := `
		SELECT ` + playdateColumns + `
		FROM playdates p
		WHERE EXISTS (
			SELECT 1 FROM dogs d
			WHERE d.user_id = $1 AND (d.id = p.dog1_id OR d.id = p.dog2_id)
		)
		ORDER BY p.playdate_time DESC, p.id
	`

	playdates := make([]models.PlaydateDB, 0)
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &playdates, query, userID)

	logQuery(ctx, query, []any{userID}, len(playdates), err)

	if err != nil {
		return nil, err
	}
	return playdates, nil
}

// ListByDogID returns the dog's playdates, newest first. An empty status returns all of them,
// "upcoming" returns pending or accepted playdates scheduled at or after now,
// any other value is matched against the stored status.
func (r *PlaydateReadRepository) ListByDogID(ctx context.Context, dogID uuid.UUID, status string, now time.Time) ([]models.PlaydateDB, error) {
	query := `
		SELECT ` + playdateColumns + `
		FROM playdates p
		WHERE (p.dog1_id = $1 OR p.dog2_id = $1)
		  AND (
			$2::VARCHAR = ''
			OR ($2::VARCHAR = 'upcoming' AND p.playdate_time >= $3::TIMESTAMPTZ AND p.status IN ('pending', 'accepted'))
			OR ($2::VARCHAR <> 'upcoming' AND p.status = $2::VARCHAR)
		  )
		ORDER BY p.playdate_time DESC, p.id
	`
	args := []any{dogID, status, now}

	playdates := make([]models.PlaydateDB, 0)
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &playdates, query, args...)

	logQuery(ctx, query, args, len(playdates), err)

	if err != nil {
		return nil, err
	}
	return playdates, nil
}

// PlaydateWriteRepository handles playdate write operations
type PlaydateWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPlaydateWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PlaydateWriteRepository {
	return &PlaydateWriteRepository{db: db, txGetter: txGetter}
}

func (r *PlaydateWriteRepository) Save(ctx context.Context, playdate *models.PlaydateDB) (*models.PlaydateDB, error) {
	query := `
		INSERT INTO playdates AS p (id, dog1_id, dog2_id, requester_dog_id, playdate_time,
			location_description, location_latitude, location_longitude, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + playdateColumns + `
	`
	if playdate.PlaydateID == uuid.Nil {
		playdate.PlaydateID = uuid.New()
	}
	args := []any{
		playdate.PlaydateID, playdate.Dog1ID, playdate.Dog2ID, playdate.RequesterDogID,
		playdate.PlaydateTime, playdate.LocationDescription, playdate.LocationLatitude,
		playdate.LocationLongitude, playdate.Status,
	}

	var saved models.PlaydateDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logQuery(ctx, query, args, saved.PlaydateID, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateStatus moves the playdate from status from to status to.
// It returns nil, nil when the stored status no longer equals from.
func (r *PlaydateWriteRepository) UpdateStatus(ctx context.Context, playdateID uuid.UUID, from, to string) (*models.PlaydateDB, error) {
	query := `
		UPDATE playdates AS p
		SET status = $3, updated_at = NOW()
		WHERE p.id = $1 AND p.status = $2
		RETURNING ` + playdateColumns + `
	`
	args := []any{playdateID, from, to}

	var saved models.PlaydateDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logQuery(ctx, query, args, saved.Status, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update rewrites time and location while the status is still the observed one.
// It returns nil, nil when the status changed concurrently.
func (r *PlaydateWriteRepository) Update(ctx context.Context, playdate *models.PlaydateDB) (*models.PlaydateDB, error) {
	query := `
		UPDATE playdates AS p
		SET playdate_time = $3, location_description = $4, location_latitude = $5,
			location_longitude = $6, updated_at = NOW()
		WHERE p.id = $1 AND p.status = $2
		RETURNING ` + playdateColumns + `
	`
	args := []any{
		playdate.PlaydateID, playdate.Status, playdate.PlaydateTime, playdate.LocationDescription,
		playdate.LocationLatitude, playdate.LocationLongitude,
	}

	var saved models.PlaydateDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logQuery(ctx, query, args, saved.UpdatedAt, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *PlaydateWriteRepository) Delete(ctx context.Context, playdateID uuid.UUID) error {
	return deleteByID(ctx, executor(ctx, r.db, r.txGetter), "playdates", playdateID)
}
