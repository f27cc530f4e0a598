package service

import (
	"context"
	"fmt"

	"IoTHub.gateway/internal/models"
	"IoTHub.gateway/internal/repository"
)

// ReadingService handles the business logic for reading ingestion.
type ReadingService struct {
	repo repository.ReadingRepository
}

// NewReadingService creates a new ReadingService.
func NewReadingService(repo repository.ReadingRepository) *ReadingService {
	return &ReadingService{repo: repo}
}

// StoreReading validates and stores one reading. No range check runs here;
// the reading's value semantics belong to whoever consumes the stored data.
// Readings are not deduplicated.
func (s *ReadingService) StoreReading(ctx context.Context, payload models.ReadingPayload) error {
	if payload.DeviceID == "" {
		return fmt.Errorf("deviceId cannot be empty")
	}
	return s.repo.StoreReading(ctx, payload)
}
