package routes

import (
	"fmt"
	"net/http"

	"IoTHub.gateway/internal/controller"
	"github.com/gorilla/mux"
)

// SetupGatewayRouter defines the message gateway's routes.
func SetupGatewayRouter(mc *controller.MessageController) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/messages", mc.HandleMessage).Methods("POST")
	registerHealth(router)

	return router
}

func registerHealth(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}).Methods("GET")
}
