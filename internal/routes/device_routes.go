package routes

import (
	"IoTHub.gateway/internal/controller"
	"github.com/gorilla/mux"
)

// SetupDeviceRouter defines the device service's routes.
func SetupDeviceRouter(dc *controller.DeviceController) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/devices/{device_id}", dc.HandleUpsertDevice).Methods("PUT")
	router.HandleFunc("/devices/{device_id}/username", dc.HandleGetUsername).Methods("GET")
	registerHealth(router)

	return router
}
