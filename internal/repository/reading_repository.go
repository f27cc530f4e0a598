package repository

import (
	"context"
	"fmt"
	"time"

	"IoTHub.gateway/internal/models"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
)

// ReadingRepository stores ingested device readings.
type ReadingRepository interface {
	StoreReading(ctx context.Context, payload models.ReadingPayload) error
}

// InfluxReadingRepository is an InfluxDB-backed ReadingRepository.
type InfluxReadingRepository struct {
	client influxdb2.Client
	org    string
	bucket string
}

// NewInfluxReadingRepository creates a new InfluxReadingRepository.
func NewInfluxReadingRepository(url, token, org, bucket string) *InfluxReadingRepository {
	client := influxdb2.NewClient(url, token)
	return &InfluxReadingRepository{
		client: client,
		org:    org,
		bucket: bucket,
	}
}

// StoreReading writes one reading point. Every call writes a new point, so
// duplicate submissions produce duplicate readings.
func (r *InfluxReadingRepository) StoreReading(ctx context.Context, payload models.ReadingPayload) error {
	writeAPI := r.client.WriteAPIBlocking(r.org, r.bucket)

	point := influxdb2.NewPoint(
		"device_readings",
		map[string]string{"device_id": payload.DeviceID},
		map[string]interface{}{"reading": payload.Reading},
		time.Now(),
	)

	if err := writeAPI.WritePoint(ctx, point); err != nil {
		return fmt.Errorf("failed to write reading to InfluxDB: %w", err)
	}
	return nil
}
