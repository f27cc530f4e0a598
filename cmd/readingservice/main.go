package main

import (
	"log"
	"net/http"

	"IoTHub.gateway/internal/config"
	"IoTHub.gateway/internal/controller"
	"IoTHub.gateway/internal/repository"
	"IoTHub.gateway/internal/routes"
	"IoTHub.gateway/internal/service"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.LoadReadingServiceConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	repo := repository.NewInfluxReadingRepository(cfg.InfluxDBURL, cfg.InfluxDBToken, cfg.InfluxDBOrg, cfg.InfluxDBBucket)
	readingService := service.NewReadingService(repo)
	readingController := controller.NewReadingController(readingService)

	mux := routes.SetupReadingRouter(readingController)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := c.Handler(mux)

	log.Printf("Reading service is running on port %s...", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal("Error starting server:", err)
	}
}
