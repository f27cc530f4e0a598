package main

import (
	"context"
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
	cfg, err := config.LoadDeviceServiceConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	repo, err := repository.NewRedisDeviceRepository(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Error initializing Redis: %v", err)
	}
	log.Println("Connected to Redis successfully!")

	deviceService := service.NewDeviceService(repo)
	deviceController := controller.NewDeviceController(deviceService)

	mux := routes.SetupDeviceRouter(deviceController)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := c.Handler(mux)

	log.Printf("Device service is running on port %s...", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal("Error starting server:", err)
	}
}
