package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sbilibin2017/pawpals-api/internal/models"
	"github.com/sbilibin2017/pawpals-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDogService(t *testing.T) (*services.DogService, *services.MockUserReader, *services.MockDogReader, *services.MockDogWriter) {
	ctrl := gomock.NewController(t)
	users := services.NewMockUserReader(ctrl)
	reader := services.NewMockDogReader(ctrl)
	writer := services.NewMockDogWriter(ctrl)
	return services.NewDogService(users, reader, writer), users, reader, writer
}

func TestDogService_Create(t *testing.T) {
	ownerID := uuid.New()

	t.Run("success sets owner", func(t *testing.T) {
		svc, users, _, writer := newDogService(t)
		users.EXPECT().GetByID(gomock.Any(), ownerID).Return(&models.UserDB{UserID: ownerID}, nil)
		writer.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *models.DogDB) (*models.DogDB, error) {
				assert.Equal(t, ownerID, d.UserID)
				return d, nil
			})

		dog, err := svc.Create(context.Background(), ownerID, &models.DogDB{Name: "Rex", UserID: uuid.New()})
		require.NoError(t, err)
		assert.Equal(t, ownerID, dog.UserID)
	})

	t.Run("missing owner", func(t *testing.T) {
		svc, users, _, _ := newDogService(t)
		users.EXPECT().GetByID(gomock.Any(), ownerID).Return(nil, nil)

		_, err := svc.Create(context.Background(), ownerID, &models.DogDB{Name: "Rex"})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("invalid size", func(t *testing.T) {
		svc, users, _, _ := newDogService(t)
		users.EXPECT().GetByID(gomock.Any(), ownerID).Return(&models.UserDB{UserID: ownerID}, nil)

		_, err := svc.Create(context.Background(), ownerID, &models.DogDB{Name: "Rex", Size: ptr("huge")})
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestDogService_ExistenceBeforeOwnership(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	dogID := uuid.New()
	dog := &models.DogDB{DogID: dogID, UserID: ownerID, Name: "Rex"}

	tests := []struct {
		name      string
		stored    *models.DogDB
		requester uuid.UUID
		wantErr   error
	}{
		{"missing dog", nil, ownerID, services.ErrNotFound},
		{"missing dog for a stranger", nil, strangerID, services.ErrNotFound},
		{"someone else's dog", dog, strangerID, services.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, reader, _ := newDogService(t)
			reader.EXPECT().GetByID(gomock.Any(), dogID).Return(tt.stored, nil).Times(3)

			_, err := svc.Get(context.Background(), dogID, tt.requester)
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = svc.Update(context.Background(), dogID, tt.requester, models.DogPatch{Name: ptr("Max")})
			assert.ErrorIs(t, err, tt.wantErr)

			assert.ErrorIs(t, svc.Delete(context.Background(), dogID, tt.requester), tt.wantErr)
		})
	}
}

func TestDogService_UpdatePartial(t *testing.T) {
	ownerID := uuid.New()
	dogID := uuid.New()

	svc, _, reader, writer := newDogService(t)
	reader.EXPECT().GetByID(gomock.Any(), dogID).Return(&models.DogDB{
		DogID:       dogID,
		UserID:      ownerID,
		Name:        "Rex",
		Breed:       ptr("Labrador"),
		AgeYears:    ptr(4),
		Size:        ptr(models.DogSizeLarge),
		Temperament: pq.StringArray{"calm"},
	}, nil)
	writer.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.DogDB) (*models.DogDB, error) {
			return d, nil
		})

	updated, err := svc.Update(context.Background(), dogID, ownerID, models.DogPatch{Breed: ptr("Poodle")})
	require.NoError(t, err)
	assert.Equal(t, "Poodle", *updated.Breed)
	assert.Equal(t, "Rex", updated.Name)
	assert.Equal(t, 4, *updated.AgeYears)
	assert.Equal(t, models.DogSizeLarge, *updated.Size)
	assert.Equal(t, pq.StringArray{"calm"}, updated.Temperament)
}

func TestDogService_List(t *testing.T) {
	ownerID := uuid.New()

	svc, _, reader, _ := newDogService(t)
	reader.EXPECT().ListByUserID(gomock.Any(), ownerID).Return([]models.DogDB{{Name: "Rex"}, {Name: "Bella"}}, nil)

	dogs, err := svc.List(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, dogs, 2)

	svc, _, reader, _ = newDogService(t)
	reader.EXPECT().ListByUserID(gomock.Any(), ownerID).Return(nil, errors.New("db error"))
	_, err = svc.List(context.Background(), ownerID)
	assert.Error(t, err)
}

func TestDogService_Delete(t *testing.T) {
	ownerID := uuid.New()
	dogID := uuid.New()

	svc, _, reader, writer := newDogService(t)
	reader.EXPECT().GetByID(gomock.Any(), dogID).Return(&models.DogDB{DogID: dogID, UserID: ownerID, Name: "Rex"}, nil)
	writer.EXPECT().Delete(gomock.Any(), dogID).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), dogID, ownerID))
}
