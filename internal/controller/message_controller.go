package controller

import (
	"fmt"
	"io"
	"net/http"

	"IoTHub.gateway/internal/models"
	"IoTHub.gateway/internal/service"
	"IoTHub.gateway/internal/utils"
)

// MessageController handles the gateway's inbound HTTP surface.
type MessageController struct {
	dispatcher *service.Dispatcher
}

// NewMessageController creates a new MessageController.
func NewMessageController(dispatcher *service.Dispatcher) *MessageController {
	return &MessageController{dispatcher: dispatcher}
}

// HandleMessage handles POST /messages: it reads the raw envelope, runs it
// through the dispatcher, and writes the single gateway response.
func (c *MessageController) HandleMessage(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		apiErr := models.NewAPIError(models.ErrorKindBadRequest, "", fmt.Sprintf("error reading request body: %v", err), http.StatusBadRequest)
		utils.RespondWithError(w, apiErr)
		return
	}
	defer r.Body.Close()

	result := c.dispatcher.Handle(r.Context(), body)
	if result.Err != nil {
		utils.RespondWithError(w, service.ToAPIError(result.Err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result.Body)
}
