package service

import (
	"context"
	"log"

	"IoTHub.gateway/internal/models"
	"github.com/google/uuid"
)

// Dispatcher composes validation, routing, and forwarding into the handling
// of one inbound message. It holds no mutable state between requests, so a
// single Dispatcher serves all concurrent dispatches.
type Dispatcher struct {
	router *Router
	client Forwarder
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(router *Router, client Forwarder) *Dispatcher {
	return &Dispatcher{
		router: router,
		client: client,
	}
}

// Handle runs one message through validate → route → forward and produces
// the single DispatchResult owed to the caller. Any stage failure short-
// circuits the remaining stages; at most one downstream call is made per
// inbound message. A failure here never affects any other message.
func (d *Dispatcher) Handle(ctx context.Context, raw []byte) models.DispatchResult {
	requestID := uuid.New().String()

	env, err := ValidateEnvelope(raw)
	if err != nil {
		log.Printf("[%s] Rejected inbound message: %v", requestID, err)
		return models.DispatchResult{RequestID: requestID, Err: err}
	}

	log.Printf("[%s] Received message from device %s with type %s", requestID, env.DeviceID, env.Type)

	target, err := d.router.Route(env.Type)
	if err != nil {
		log.Printf("[%s] Routing failed for device %s: %v", requestID, env.DeviceID, err)
		return models.DispatchResult{RequestID: requestID, Err: err}
	}

	resp, err := d.client.Forward(ctx, target, env)
	if err != nil {
		log.Printf("[%s] Forwarding failed for device %s: %v", requestID, env.DeviceID, err)
		return models.DispatchResult{RequestID: requestID, Err: err}
	}

	log.Printf("[%s] Successfully processed %s message for device %s", requestID, env.Type, env.DeviceID)
	return models.DispatchResult{
		RequestID:        requestID,
		Success:          true,
		DownstreamStatus: resp.Status,
		Body:             summarize(requestID, env, resp),
	}
}

// summarize builds the caller-facing success body from the validated
// envelope and the downstream answer.
func summarize(requestID string, env models.Envelope, resp DownstreamResponse) map[string]interface{} {
	body := map[string]interface{}{
		"requestId": requestID,
		"deviceId":  env.DeviceID,
		"type":      string(env.Type),
	}
	switch env.Type {
	case models.TypeRegistration:
		body["message"] = "Registration processed successfully"
	case models.TypeReading:
		body["message"] = "Reading processed successfully"
		body["reading"] = env.Reading.Reading
	}
	if len(resp.Body) > 0 {
		body["downstream"] = resp.Body
	}
	return body
}
