package main

import (
	"log"
	"net/http"

	"IoTHub.gateway/internal/config"
	"IoTHub.gateway/internal/controller"
	"IoTHub.gateway/internal/routes"
	"IoTHub.gateway/internal/service"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.LoadGatewayConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Routing targets are fixed for the lifetime of the process.
	router := service.NewRouter(service.Targets{
		DeviceServiceURL:  cfg.DeviceServiceURL,
		ReadingServiceURL: cfg.ReadingServiceURL,
	})
	client := service.NewDownstreamClient(cfg.ForwardTimeout)
	dispatcher := service.NewDispatcher(router, client)
	messageController := controller.NewMessageController(dispatcher)

	mux := routes.SetupGatewayRouter(messageController)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := c.Handler(mux)

	log.Printf("Message gateway is running on port %s...", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal("Error starting server:", err)
	}
}
