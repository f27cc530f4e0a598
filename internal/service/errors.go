package service

import (
	"fmt"
	"net/http"

	"IoTHub.gateway/internal/models"
)

// ValidationKind classifies why an inbound envelope was rejected.
type ValidationKind string

const (
	MissingField     ValidationKind = "missing_field"
	UnknownType      ValidationKind = "unknown_type"
	MalformedPayload ValidationKind = "malformed_payload"
)

// ValidationError means the caller sent a malformed or unrecognized envelope.
type ValidationError struct {
	Kind  ValidationKind
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s (field %q)", e.Kind, e.Field)
}

// RoutingError means a syntactically valid message type has no downstream
// target configured. This is an operator problem, not a caller problem.
type RoutingError struct {
	Type models.MessageType
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("no downstream target configured for message type %q", e.Type)
}

// DownstreamKind classifies a failed outbound call.
type DownstreamKind string

const (
	Unreachable DownstreamKind = "unreachable"
	Timeout     DownstreamKind = "timeout"
	BadResponse DownstreamKind = "bad_response"
)

// DownstreamError means the selected downstream service failed to serve the
// forwarded call. Status carries the downstream status code when one was
// received (zero otherwise).
type DownstreamError struct {
	Kind   DownstreamKind
	Status int
	Detail string
}

func (e *DownstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("downstream call failed: %s (status %d): %s", e.Kind, e.Status, e.Detail)
	}
	return fmt.Sprintf("downstream call failed: %s: %s", e.Kind, e.Detail)
}

// ToAPIError maps a dispatch error onto the HTTP error contract: validation
// failures are the caller's fault (400), routing gaps are the operator's
// fault (500), downstream failures surface as 502/504 or pass the
// downstream's own status through when one was received.
func ToAPIError(err error) models.APIError {
	switch e := err.(type) {
	case *ValidationError:
		kind := models.ErrorKindMalformedPayload
		switch e.Kind {
		case MissingField:
			kind = models.ErrorKindMissingField
		case UnknownType:
			kind = models.ErrorKindUnknownType
		}
		return models.NewAPIError(kind, e.Field, "", http.StatusBadRequest)
	case *RoutingError:
		return models.NewAPIError(models.ErrorKindNoTargetConfigured, "", e.Error(), http.StatusInternalServerError)
	case *DownstreamError:
		switch e.Kind {
		case Timeout:
			return models.NewAPIError(models.ErrorKindUpstreamTimeout, "", e.Detail, http.StatusGatewayTimeout)
		case Unreachable:
			return models.NewAPIError(models.ErrorKindUpstreamUnreachable, "", e.Detail, http.StatusBadGateway)
		default:
			status := http.StatusBadGateway
			if e.Status >= 400 && e.Status < 600 {
				status = e.Status
			}
			return models.NewAPIError(models.ErrorKindBadUpstreamResponse, "", e.Detail, status)
		}
	}
	return models.NewAPIError(models.ErrorKindInternalServerError, "", err.Error(), http.StatusInternalServerError)
}
