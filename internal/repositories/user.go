package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/pawpals-api/internal/models"
)

const userColumns = `id, name, email, password_hash, location_latitude, location_longitude,
	profile_image_url, created_at, updated_at`

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns nil, nil when no user has the email.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		LIMIT 1
	`
	return r.getOne(ctx, query, email)
}

// GetByID returns nil, nil when the user does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	return r.getOne(ctx, query, userID)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	logQuery(ctx, query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a user and returns the stored row.
// A duplicate email yields an error wrapping ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error) {
	query := `
		INSERT INTO users (id, name, email, password_hash, location_latitude, location_longitude,
			profile_image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + userColumns + `
	`
	if user.UserID == uuid.Nil {
		user.UserID = uuid.New()
	}
	args := []any{
		user.UserID, user.Name, user.Email, user.PasswordHash,
		user.LocationLatitude, user.LocationLongitude, user.ProfileImageURL,
	}

	var saved models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	// The password digest never reaches the log.
	logQuery(ctx, query, []any{user.UserID, user.Name, user.Email}, saved.UserID, err)

	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return &saved, nil
}

// Update rewrites the mutable profile fields and returns the stored row.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET name = $2, location_latitude = $3, location_longitude = $4,
			profile_image_url = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns + `
	`
	args := []any{user.UserID, user.Name, user.LocationLatitude, user.LocationLongitude, user.ProfileImageURL}

	var saved models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logQuery(ctx, query, args, saved.UpdatedAt, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, passwordHash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, []any{userID}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the user. Dogs and their playdates go with it through ON DELETE CASCADE.
func (r *UserWriteRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	return deleteByID(ctx, executor(ctx, r.db, r.txGetter), "users", userID)
}

// deleteByID deletes one row by primary key and returns sql.ErrNoRows when nothing matched.
func deleteByID(ctx context.Context, ex sqlx.ExtContext, table string, id uuid.UUID) error {
	query := `DELETE FROM ` + table + ` WHERE id = $1`

	res, err := ex.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, []any{id}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
