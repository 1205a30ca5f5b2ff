package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/pawpals-api/internal/models"
)

const dogColumns = `id, user_id, name, breed, age_years, size, temperament, profile_image_url,
	created_at, updated_at`

// DogReadRepository handles dog read operations
type DogReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDogReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DogReadRepository {
	return &DogReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns nil, nil when the dog does not exist.
func (r *DogReadRepository) GetByID(ctx context.Context, dogID uuid.UUID) (*models.DogDB, error) {
	query := `
		SELECT ` + dogColumns + `
		FROM dogs
		WHERE id = $1
	`

	var dog models.DogDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &dog, query, dogID)

	logQuery(ctx, query, []any{dogID}, dog.DogID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dog, nil
}

func (r *DogReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.DogDB, error) {
	query := `
		SELECT ` + dogColumns + `
		FROM dogs
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	dogs := make([]models.DogDB, 0)
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &dogs, query, userID)

	logQuery(ctx, query, []any{userID}, len(dogs), err)

	if err != nil {
		return nil, err
	}
	return dogs, nil
}

// DogWriteRepository handles dog write operations
type DogWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDogWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DogWriteRepository {
	return &DogWriteRepository{db: db, txGetter: txGetter}
}

func (r *DogWriteRepository) Save(ctx context.Context, dog *models.DogDB) (*models.DogDB, error) {
	query := `
		INSERT INTO dogs (id, user_id, name, breed, age_years, size, temperament, profile_image_url,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + dogColumns + `
	`
	if dog.DogID == uuid.Nil {
		dog.DogID = uuid.New()
	}
	args := []any{
		dog.DogID, dog.UserID, dog.Name, dog.Breed, dog.AgeYears, dog.Size,
		dog.Temperament, dog.ProfileImageURL,
	}

	var saved models.DogDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logQuery(ctx, query, args, saved.DogID, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update rewrites every mutable column. The owner is never changed.
func (r *DogWriteRepository) Update(ctx context.Context, dog *models.DogDB) (*models.DogDB, error) {
	query := `
		UPDATE dogs
		SET name = $2, breed = $3, age_years = $4, size = $5, temperament = $6,
			profile_image_url = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + dogColumns + `
	`
	args := []any{
		dog.DogID, dog.Name, dog.Breed, dog.AgeYears, dog.Size, dog.Temperament, dog.ProfileImageURL,
	}

	var saved models.DogDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logQuery(ctx, query, args, saved.UpdatedAt, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes the dog and, by cascade, every playdate it takes part in.
func (r *DogWriteRepository) Delete(ctx context.Context, dogID uuid.UUID) error {
	return deleteByID(ctx, executor(ctx, r.db, r.txGetter), "dogs", dogID)
}
