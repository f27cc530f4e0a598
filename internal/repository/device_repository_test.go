package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *RedisDeviceRepository {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisDeviceRepositoryFromClient(client)
}

func TestRedisDeviceRepository_UpsertAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertDevice(ctx, "sensor-001", "alice"))

	username, err := repo.GetUsername(ctx, "sensor-001")
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestRedisDeviceRepository_UpsertOverwrites(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertDevice(ctx, "sensor-001", "alice"))
	require.NoError(t, repo.UpsertDevice(ctx, "sensor-001", "bob"))

	username, err := repo.GetUsername(ctx, "sensor-001")
	require.NoError(t, err)
	assert.Equal(t, "bob", username)
}

func TestRedisDeviceRepository_UpsertIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertDevice(ctx, "sensor-001", "alice"))
	require.NoError(t, repo.UpsertDevice(ctx, "sensor-001", "alice"))

	username, err := repo.GetUsername(ctx, "sensor-001")
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestRedisDeviceRepository_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}
