package service

import (
	"context"
	"fmt"

	"IoTHub.gateway/internal/repository"
)

// DeviceService handles the business logic for device-username mappings.
type DeviceService struct {
	repo repository.DeviceRepository
}

// NewDeviceService creates a new DeviceService.
func NewDeviceService(repo repository.DeviceRepository) *DeviceService {
	return &DeviceService{repo: repo}
}

// UpsertDevice validates the mapping and stores it. Upserts are idempotent:
// repeating the same device/username pair leaves the store unchanged.
func (s *DeviceService) UpsertDevice(ctx context.Context, deviceID, username string) error {
	if deviceID == "" {
		return fmt.Errorf("device_id cannot be empty")
	}
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	return s.repo.UpsertDevice(ctx, deviceID, username)
}

// GetUsername retrieves the username for a device.
func (s *DeviceService) GetUsername(ctx context.Context, deviceID string) (string, error) {
	if deviceID == "" {
		return "", fmt.Errorf("device_id cannot be empty")
	}
	return s.repo.GetUsername(ctx, deviceID)
}
