package routes

import (
	"IoTHub.gateway/internal/controller"
	"github.com/gorilla/mux"
)

// SetupReadingRouter defines the reading service's routes.
func SetupReadingRouter(rc *controller.ReadingController) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/readings", rc.HandleStoreReading).Methods("POST")
	registerHealth(router)

	return router
}
