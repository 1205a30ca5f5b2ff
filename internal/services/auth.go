package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/pawpals-api/internal/logger"
	"github.com/sbilibin2017/pawpals-api/internal/models"
	"github.com/sbilibin2017/pawpals-api/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error)
	Update(ctx context.Context, user *models.UserDB) (*models.UserDB, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// ResetTokenStore keeps single-use password reset tokens.
type ResetTokenStore interface {
	Set(ctx context.Context, token string, userID uuid.UUID) error
	Take(ctx context.Context, token string) (uuid.UUID, bool, error)
}

// dummyHash is compared against when the email is unknown so that a failed
// login costs one bcrypt comparison either way.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("pawpals-dummy-password"), bcrypt.DefaultCost)
	return h
})

// AuthService handles registration, login, profile and password reset.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	resetTokens ResetTokenStore
	kafkaWriter KafkaWriter
	afterCommit CommitHook
	resetTTL    time.Duration
	now         func() time.Time
}

// NewAuthService creates a new AuthService instance.
// kafkaWriter receives password reset requests for the mailer and may be nil.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	jwt JWTGenerator,
	resetTokens ResetTokenStore,
	kafkaWriter KafkaWriter,
	resetTTL time.Duration,
) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		resetTokens: resetTokens,
		kafkaWriter: kafkaWriter,
		afterCommit: runNow,
		resetTTL:    resetTTL,
		now:         time.Now,
	}
}

// WithAfterCommit makes reset mail requests wait for the surrounding transaction to commit.
func (svc *AuthService) WithAfterCommit(hook CommitHook) *AuthService {
	svc.afterCommit = hook
	return svc
}

// Register creates a user and returns a token for it.
// The location is stored only when both coordinates are given.
func (svc *AuthService) Register(ctx context.Context, name, email, password string, lat, lon *float64) (string, *models.UserDB, error) {
	log := logger.FromContext(ctx)

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return "", nil, err
	}
	if existing != nil {
		log.Infow("user already exists", "email", email)
		return "", nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	user := &models.UserDB{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if lat != nil && lon != nil {
		user.LocationLatitude = lat
		user.LocationLongitude = lon
	}

	saved, err := svc.writer.Save(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			log.Infow("user already exists", "email", email)
			return "", nil, ErrUserAlreadyExists
		}
		log.Errorw("failed to save user", "err", err)
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, saved.UserID)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, saved, nil
}

// Login authenticates a user and returns a JWT token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		log.Infow("login for unknown email")
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Infow("invalid credentials", "user_id", user.UserID)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// GetUser returns the user or ErrNotFound.
func (svc *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	return user, nil
}

// UpdateProfile applies a partial profile update.
func (svc *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (*models.UserDB, error) {
	user, err := svc.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	patch.Apply(user)

	updated, err := svc.writer.Update(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update user", "user_id", userID, "err", err)
		return nil, err
	}
	return updated, nil
}

// DeleteUser removes the user together with their dogs and those dogs' playdates.
func (svc *AuthService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := svc.GetUser(ctx, userID); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: user not found", ErrNotFound)
		}
		logger.FromContext(ctx).Errorw("failed to delete user", "user_id", userID, "err", err)
		return err
	}
	return nil
}

// ForgotPassword issues a reset token for a registered email and hands it to the mailer.
// An unknown email is not an error so callers cannot probe for accounts.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		log.Infow("password reset requested for unknown email")
		return nil
	}

	token := uuid.NewString()
	if err := svc.resetTokens.Set(ctx, token, user.UserID); err != nil {
		log.Errorw("failed to store reset token", "user_id", user.UserID, "err", err)
		return err
	}

	request := models.PasswordResetRequest{
		UserID:    user.UserID,
		Email:     user.Email,
		Name:      user.Name,
		Token:     token,
		ExpiresAt: svc.now().Add(svc.resetTTL).UTC(),
	}
	svc.afterCommit(ctx, func(ctx context.Context) {
		publish(ctx, svc.kafkaWriter, request.UserID.String(), request)
	})

	return nil
}

// ResetPassword consumes a reset token and sets a new password.
// The token is put back when the password could not be stored.
func (svc *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	log := logger.FromContext(ctx)

	userID, ok, err := svc.resetTokens.Take(ctx, token)
	if err != nil {
		log.Errorw("failed to read reset token", "err", err)
		return err
	}
	if !ok {
		return ErrInvalidResetToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		svc.restoreResetToken(ctx, token, userID)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidResetToken
		}
		log.Errorw("failed to update password", "user_id", userID, "err", err)
		svc.restoreResetToken(ctx, token, userID)
		return err
	}

	log.Infow("password reset", "user_id", userID)
	return nil
}

func (svc *AuthService) restoreResetToken(ctx context.Context, token string, userID uuid.UUID) {
	if err := svc.resetTokens.Set(context.WithoutCancel(ctx), token, userID); err != nil {
		logger.FromContext(ctx).Errorw("failed to restore reset token", "user_id", userID, "err", err)
	}
}
