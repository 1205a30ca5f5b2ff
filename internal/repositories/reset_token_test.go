package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestResetTokenRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewResetTokenRepository(rdb, 2*time.Second)

	t.Run("token is single use", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.Set(ctx, "tok-1", userID))

		got, ok, err := repo.Take(ctx, "tok-1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, userID, got)

		_, ok, err = repo.Take(ctx, "tok-1")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, ok, err := repo.Take(ctx, "missing")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("token expires", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "tok-2", uuid.New()))
		time.Sleep(3 * time.Second)

		_, ok, err := repo.Take(ctx, "tok-2")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
