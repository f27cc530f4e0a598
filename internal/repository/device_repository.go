package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// ErrDeviceNotFound is returned when no username mapping exists for a device.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores deviceId → username mappings.
type DeviceRepository interface {
	UpsertDevice(ctx context.Context, deviceID, username string) error
	GetUsername(ctx context.Context, deviceID string) (string, error)
}

// RedisDeviceRepository is a Redis-backed DeviceRepository.
type RedisDeviceRepository struct {
	client *redis.Client
}

// NewRedisDeviceRepository creates a new RedisDeviceRepository and checks the
// connection.
func NewRedisDeviceRepository(ctx context.Context, addr, password string, db int) (*RedisDeviceRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("could not connect to Redis: %w", err)
	}
	return &RedisDeviceRepository{client: client}, nil
}

// NewRedisDeviceRepositoryFromClient wraps an existing client. Used by tests.
func NewRedisDeviceRepositoryFromClient(client *redis.Client) *RedisDeviceRepository {
	return &RedisDeviceRepository{client: client}
}

func deviceKey(deviceID string) string {
	return fmt.Sprintf("device:%s:username", deviceID)
}

// UpsertDevice creates or replaces the username mapping for a device. The
// write is a plain SET, so repeating it with the same value is a no-op.
func (r *RedisDeviceRepository) UpsertDevice(ctx context.Context, deviceID, username string) error {
	if err := r.client.Set(ctx, deviceKey(deviceID), username, 0).Err(); err != nil {
		return fmt.Errorf("failed to store device mapping: %w", err)
	}
	return nil
}

// GetUsername retrieves the username mapped to a device.
func (r *RedisDeviceRepository) GetUsername(ctx context.Context, deviceID string) (string, error) {
	username, err := r.client.Get(ctx, deviceKey(deviceID)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrDeviceNotFound
		}
		return "", fmt.Errorf("failed to read device mapping: %w", err)
	}
	return username, nil
}
