package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/pawpals-api/internal/logger"
)

const resetTokenKeyPrefix = "password_reset:"

// ResetTokenRepository stores single-use password reset tokens in Redis
type ResetTokenRepository struct {
	client *redis.Client
	exp    time.Duration // token lifetime
}

// NewResetTokenRepository creates a new repository instance with the given token lifetime
func NewResetTokenRepository(client *redis.Client, expiration time.Duration) *ResetTokenRepository {
	return &ResetTokenRepository{
		client: client,
		exp:    expiration,
	}
}

// Set stores token -> userID with the repository expiration.
func (r *ResetTokenRepository) Set(ctx context.Context, token string, userID uuid.UUID) error {
	key := resetTokenKeyPrefix + token
	err := r.client.Set(ctx, key, userID.String(), r.exp).Err()

	logger.FromContext(ctx).Infow(
		"key", resetTokenKeyPrefix+"*",
		"user_id", userID,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// Take returns the user the token was issued for and deletes it.
// ok is false when the token is unknown or expired.
func (r *ResetTokenRepository) Take(ctx context.Context, token string) (userID uuid.UUID, ok bool, err error) {
	key := resetTokenKeyPrefix + token
	val, err := r.client.GetDel(ctx, key).Result()

	logger.FromContext(ctx).Infow(
		"key", resetTokenKeyPrefix+"*",
		"found", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}

	userID, err = uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false, err
	}
	return userID, true, nil
}
