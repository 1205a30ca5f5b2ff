package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sbilibin2017/pawpals-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDogRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	owner := mustCreateUser(t, db, "owner@example.com")
	other := mustCreateUser(t, db, "other@example.com")

	reader := NewDogReadRepository(db, nil)
	writer := NewDogWriteRepository(db, nil)

	saved, err := writer.Save(ctx, &models.DogDB{
		UserID:      owner.UserID,
		Name:        "Rex",
		Breed:       ptr("Labrador"),
		AgeYears:    ptr(3),
		Size:        ptr(models.DogSizeLarge),
		Temperament: pq.StringArray{"friendly", "energetic"},
	})
	require.NoError(t, err)
	mustCreateDog(t, db, owner.UserID, "Bella")
	mustCreateDog(t, db, other.UserID, "Fido")

	t.Run("get by id", func(t *testing.T) {
		got, err := reader.GetByID(ctx, saved.DogID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, owner.UserID, got.UserID)
		assert.ElementsMatch(t, []string{"friendly", "energetic"}, got.Temperament)

		missing, err := reader.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("list by owner", func(t *testing.T) {
		dogs, err := reader.ListByUserID(ctx, owner.UserID)
		require.NoError(t, err)
		assert.Len(t, dogs, 2)

		none, err := reader.ListByUserID(ctx, uuid.New())
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("update keeps owner", func(t *testing.T) {
		saved.Breed = ptr("Poodle")
		saved.UserID = other.UserID
		updated, err := writer.Update(ctx, saved)
		require.NoError(t, err)
		assert.Equal(t, "Poodle", *updated.Breed)
		assert.Equal(t, owner.UserID, updated.UserID)
		assert.Equal(t, 3, *updated.AgeYears)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, writer.Delete(ctx, saved.DogID))
		assert.ErrorIs(t, writer.Delete(ctx, saved.DogID), sql.ErrNoRows)
	})
}
