package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// GatewayConfig holds the message gateway's configuration. The downstream
// base URLs are fixed at startup and never mutated by request handling.
type GatewayConfig struct {
	Port              string
	DeviceServiceURL  string
	ReadingServiceURL string
	ForwardTimeout    time.Duration
}

// DeviceServiceConfig holds the device service's configuration.
type DeviceServiceConfig struct {
	Port          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// ReadingServiceConfig holds the reading service's configuration.
type ReadingServiceConfig struct {
	Port           string
	InfluxDBURL    string
	InfluxDBToken  string
	InfluxDBOrg    string
	InfluxDBBucket string
}

// LoadGatewayConfig loads the gateway configuration from environment variables.
func LoadGatewayConfig() (GatewayConfig, error) {
	loadDotEnv()

	cfg := GatewayConfig{
		Port:              getEnv("GATEWAY_PORT", "8000"),
		DeviceServiceURL:  os.Getenv("DEVICE_SERVICE_URL"),
		ReadingServiceURL: os.Getenv("READING_SERVICE_URL"),
		ForwardTimeout:    30 * time.Second,
	}
	if v := os.Getenv("FORWARD_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return GatewayConfig{}, fmt.Errorf("invalid FORWARD_TIMEOUT %q: %w", v, err)
		}
		cfg.ForwardTimeout = d
	}
	if cfg.DeviceServiceURL == "" && cfg.ReadingServiceURL == "" {
		return GatewayConfig{}, fmt.Errorf("gateway configuration is incomplete. Please set DEVICE_SERVICE_URL and READING_SERVICE_URL environment variables")
	}
	return cfg, nil
}

// LoadDeviceServiceConfig loads the device service configuration from environment variables.
func LoadDeviceServiceConfig() (DeviceServiceConfig, error) {
	loadDotEnv()

	cfg := DeviceServiceConfig{
		Port:          getEnv("DEVICE_SERVICE_PORT", "8001"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return DeviceServiceConfig{}, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.RedisDB = db
	}
	return cfg, nil
}

// LoadReadingServiceConfig loads the reading service configuration from environment variables.
func LoadReadingServiceConfig() (ReadingServiceConfig, error) {
	loadDotEnv()

	cfg := ReadingServiceConfig{
		Port:           getEnv("READING_SERVICE_PORT", "8002"),
		InfluxDBURL:    os.Getenv("INFLUXDB_URL"),
		InfluxDBToken:  os.Getenv("INFLUXDB_TOKEN"),
		InfluxDBOrg:    os.Getenv("INFLUXDB_ORG"),
		InfluxDBBucket: getEnv("INFLUXDB_BUCKET", "readings"),
	}
	if cfg.InfluxDBURL == "" || cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		return ReadingServiceConfig{}, fmt.Errorf("InfluxDB configuration is incomplete. Please set INFLUXDB_URL, INFLUXDB_TOKEN, and INFLUXDB_ORG environment variables")
	}
	return cfg, nil
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system environment variables")
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
