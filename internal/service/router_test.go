package service

import (
	"testing"

	"IoTHub.gateway/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Route(t *testing.T) {
	router := NewRouter(Targets{
		DeviceServiceURL:  "http://device-service:8001",
		ReadingServiceURL: "http://reading-service:8002",
	})

	target, err := router.Route(models.TypeRegistration)
	require.NoError(t, err)
	assert.Equal(t, "http://device-service:8001", target.BaseURL)
	assert.Equal(t, models.TypeRegistration, target.Type)

	target, err = router.Route(models.TypeReading)
	require.NoError(t, err)
	assert.Equal(t, "http://reading-service:8002", target.BaseURL)
}

func TestRouter_NoTargetConfigured(t *testing.T) {
	router := NewRouter(Targets{DeviceServiceURL: "http://device-service:8001"})

	_, err := router.Route(models.TypeReading)
	var rErr *RoutingError
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, models.TypeReading, rErr.Type)
}
