package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"IoTHub.gateway/internal/models"
	"IoTHub.gateway/internal/service"
	"IoTHub.gateway/internal/utils"
)

// ReadingController handles the reading service's HTTP surface.
type ReadingController struct {
	service *service.ReadingService
}

// NewReadingController creates a new ReadingController.
func NewReadingController(service *service.ReadingService) *ReadingController {
	return &ReadingController{service: service}
}

// HandleStoreReading handles POST /readings.
func (c *ReadingController) HandleStoreReading(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		DeviceID string   `json:"deviceId"`
		Reading  *float64 `json:"reading"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		apiErr := models.NewAPIError(models.ErrorKindBadRequest, "", "Invalid request payload", http.StatusBadRequest)
		utils.RespondWithError(w, apiErr)
		return
	}
	defer r.Body.Close()

	if payload.DeviceID == "" {
		apiErr := models.NewAPIError(models.ErrorKindMissingField, "deviceId", "", http.StatusBadRequest)
		utils.RespondWithError(w, apiErr)
		return
	}
	if payload.Reading == nil {
		apiErr := models.NewAPIError(models.ErrorKindMissingField, "reading", "", http.StatusBadRequest)
		utils.RespondWithError(w, apiErr)
		return
	}

	reading := models.ReadingPayload{DeviceID: payload.DeviceID, Reading: *payload.Reading}
	if err := c.service.StoreReading(r.Context(), reading); err != nil {
		log.Printf("Error storing reading for device %s: %v", payload.DeviceID, err)
		apiErr := models.NewAPIError(models.ErrorKindInternalServerError, "", fmt.Sprintf("error storing reading: %v", err), http.StatusInternalServerError)
		utils.RespondWithError(w, apiErr)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"message": "Reading stored successfully"})
}
