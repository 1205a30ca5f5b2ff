package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/pawpals-api/internal/logger"
	"github.com/sbilibin2017/pawpals-api/internal/models"
)

//go:generate mockgen -source=dog.go -destination=dog_mock.go -package=services

// DogReader defines read-only operations for dogs.
type DogReader interface {
	GetByID(ctx context.Context, dogID uuid.UUID) (*models.DogDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.DogDB, error)
}

// DogWriter defines write operations for dogs.
type DogWriter interface {
	Save(ctx context.Context, dog *models.DogDB) (*models.DogDB, error)
	Update(ctx context.Context, dog *models.DogDB) (*models.DogDB, error)
	Delete(ctx context.Context, dogID uuid.UUID) error
}

// DogService manages dog profiles. Every single-dog operation checks that the dog
// exists before checking that the caller owns it.
type DogService struct {
	users  UserReader
	reader DogReader
	writer DogWriter
}

// NewDogService creates a new DogService.
func NewDogService(users UserReader, reader DogReader, writer DogWriter) *DogService {
	return &DogService{users: users, reader: reader, writer: writer}
}

// Create stores a dog owned by ownerID.
func (s *DogService) Create(ctx context.Context, ownerID uuid.UUID, dog *models.DogDB) (*models.DogDB, error) {
	log := logger.FromContext(ctx)

	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		log.Errorw("failed to get owner", "user_id", ownerID, "error", err)
		return nil, err
	}
	if owner == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	if err := validateDog(dog); err != nil {
		return nil, err
	}

	dog.UserID = ownerID
	saved, err := s.writer.Save(ctx, dog)
	if err != nil {
		log.Errorw("failed to save dog", "user_id", ownerID, "error", err)
		return nil, err
	}
	return saved, nil
}

// List returns all dogs of ownerID.
func (s *DogService) List(ctx context.Context, ownerID uuid.UUID) ([]models.DogDB, error) {
	dogs, err := s.reader.ListByUserID(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list dogs", "user_id", ownerID, "error", err)
		return nil, err
	}
	return dogs, nil
}

// Get returns the dog if requesterID owns it.
func (s *DogService) Get(ctx context.Context, dogID, requesterID uuid.UUID) (*models.DogDB, error) {
	return s.getOwned(ctx, dogID, requesterID)
}

// Update applies a partial update. Fields absent from patch keep their values.
func (s *DogService) Update(ctx context.Context, dogID, requesterID uuid.UUID, patch models.DogPatch) (*models.DogDB, error) {
	dog, err := s.getOwned(ctx, dogID, requesterID)
	if err != nil {
		return nil, err
	}

	patch.Apply(dog)
	if err := validateDog(dog); err != nil {
		return nil, err
	}

	updated, err := s.writer.Update(ctx, dog)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update dog", "dog_id", dogID, "error", err)
		return nil, err
	}
	return updated, nil
}

// Delete removes the dog and its playdates.
func (s *DogService) Delete(ctx context.Context, dogID, requesterID uuid.UUID) error {
	if _, err := s.getOwned(ctx, dogID, requesterID); err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, dogID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: dog not found", ErrNotFound)
		}
		logger.FromContext(ctx).Errorw("failed to delete dog", "dog_id", dogID, "error", err)
		return err
	}
	return nil
}

func (s *DogService) getOwned(ctx context.Context, dogID, requesterID uuid.UUID) (*models.DogDB, error) {
	dog, err := s.reader.GetByID(ctx, dogID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get dog", "dog_id", dogID, "error", err)
		return nil, err
	}
	if dog == nil {
		return nil, fmt.Errorf("%w: dog not found", ErrNotFound)
	}
	if dog.UserID != requesterID {
		return nil, fmt.Errorf("%w: dog belongs to another user", ErrForbidden)
	}
	return dog, nil
}

func validateDog(dog *models.DogDB) error {
	if dog.Name == "" {
		return fmt.Errorf("%w: dog name is required", ErrValidation)
	}
	if dog.Size != nil {
		switch *dog.Size {
		case models.DogSizeSmall, models.DogSizeMedium, models.DogSizeLarge:
		default:
			return fmt.Errorf("%w: size must be one of small, medium, large", ErrValidation)
		}
	}
	if dog.AgeYears != nil && *dog.AgeYears < 0 {
		return fmt.Errorf("%w: age_years must not be negative", ErrValidation)
	}
	return nil
}
