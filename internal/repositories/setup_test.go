package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/pawpals-api/internal/models"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	schema, err := os.ReadFile(filepath.Join("..", "..", "migrations", "0001_init.up.sql"))
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(ctx)
	}

	return db, teardown
}

func ptr[T any](v T) *T { return &v }

func mustCreateUser(t *testing.T, db *sqlx.DB, email string) *models.UserDB {
	t.Helper()
	user, err := NewUserWriteRepository(db, nil).Save(context.Background(), &models.UserDB{
		Name:         "Owner " + email,
		Email:        email,
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return user
}

func mustCreateDog(t *testing.T, db *sqlx.DB, ownerID uuid.UUID, name string) *models.DogDB {
	t.Helper()
	dog, err := NewDogWriteRepository(db, nil).Save(context.Background(), &models.DogDB{
		UserID: ownerID,
		Name:   name,
	})
	require.NoError(t, err)
	return dog
}
