package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"IoTHub.gateway/internal/models"
	"IoTHub.gateway/internal/repository"
	"IoTHub.gateway/internal/service"
	"IoTHub.gateway/internal/utils"
	"github.com/gorilla/mux"
)

// DeviceController handles the device service's HTTP surface.
type DeviceController struct {
	service *service.DeviceService
}

// NewDeviceController creates a new DeviceController.
func NewDeviceController(service *service.DeviceService) *DeviceController {
	return &DeviceController{service: service}
}

// HandleUpsertDevice handles PUT /devices/{device_id}: create or update a
// device-username mapping.
func (c *DeviceController) HandleUpsertDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := mux.Vars(r)["device_id"]

	var update models.DeviceUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		apiErr := models.NewAPIError(models.ErrorKindBadRequest, "", "Invalid request payload", http.StatusBadRequest)
		utils.RespondWithError(w, apiErr)
		return
	}
	defer r.Body.Close()

	if update.Username == "" {
		apiErr := models.NewAPIError(models.ErrorKindMissingField, "username", "", http.StatusBadRequest)
		utils.RespondWithError(w, apiErr)
		return
	}

	if err := c.service.UpsertDevice(r.Context(), deviceID, update.Username); err != nil {
		log.Printf("Error upserting device %s: %v", deviceID, err)
		apiErr := models.NewAPIError(models.ErrorKindInternalServerError, "", fmt.Sprintf("error storing device: %v", err), http.StatusInternalServerError)
		utils.RespondWithError(w, apiErr)
		return
	}

	log.Printf("Upserted device %s with username %s", deviceID, update.Username)
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message":   "Device updated successfully",
		"device_id": deviceID,
	})
}

// HandleGetUsername handles GET /devices/{device_id}/username.
func (c *DeviceController) HandleGetUsername(w http.ResponseWriter, r *http.Request) {
	deviceID := mux.Vars(r)["device_id"]

	username, err := c.service.GetUsername(r.Context(), deviceID)
	if err != nil {
		if err == repository.ErrDeviceNotFound {
			apiErr := models.NewAPIError(models.ErrorKindNotFound, "", fmt.Sprintf("Device %s not found", deviceID), http.StatusNotFound)
			utils.RespondWithError(w, apiErr)
			return
		}
		log.Printf("Error retrieving username for device %s: %v", deviceID, err)
		apiErr := models.NewAPIError(models.ErrorKindInternalServerError, "", fmt.Sprintf("error retrieving device: %v", err), http.StatusInternalServerError)
		utils.RespondWithError(w, apiErr)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"username": username})
}
