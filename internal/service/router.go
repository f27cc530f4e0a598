package service

import "IoTHub.gateway/internal/models"

// Targets is the routing configuration mapping message types to downstream
// base URLs. It is built once at process start and read-only afterwards, so
// concurrent dispatches can share it without locking.
type Targets struct {
	DeviceServiceURL  string
	ReadingServiceURL string
}

// Target is the selected downstream for one message.
type Target struct {
	Type    models.MessageType
	BaseURL string
}

// Router resolves a validated message type to its downstream target.
type Router struct {
	targets Targets
}

// NewRouter creates a new Router.
func NewRouter(targets Targets) *Router {
	return &Router{targets: targets}
}

// Route performs a deterministic lookup of the downstream target for t. A
// known type with no configured base URL is an operator configuration gap
// and fails with a RoutingError rather than a ValidationError.
func (r *Router) Route(t models.MessageType) (Target, error) {
	var baseURL string
	switch t {
	case models.TypeRegistration:
		baseURL = r.targets.DeviceServiceURL
	case models.TypeReading:
		baseURL = r.targets.ReadingServiceURL
	default:
		return Target{}, &ValidationError{Kind: UnknownType, Field: "type"}
	}
	if baseURL == "" {
		return Target{}, &RoutingError{Type: t}
	}
	return Target{Type: t, BaseURL: baseURL}, nil
}
