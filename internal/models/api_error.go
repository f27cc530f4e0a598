package models

import "fmt"

// ErrorKind is a string type for consistent error kinds across services.
type ErrorKind string

// Predefined error kinds for gateway and service errors.
const (
	// Validation (caller's fault)
	ErrorKindMissingField     ErrorKind = "missing_field"
	ErrorKindUnknownType      ErrorKind = "unknown_type"
	ErrorKindMalformedPayload ErrorKind = "malformed_payload"

	// Routing (operator's fault)
	ErrorKindNoTargetConfigured ErrorKind = "no_target_configured"

	// Downstream (environment's fault)
	ErrorKindUpstreamUnreachable ErrorKind = "upstream_unreachable"
	ErrorKindUpstreamTimeout     ErrorKind = "upstream_timeout"
	ErrorKindBadUpstreamResponse ErrorKind = "bad_upstream_response"

	// Generic
	ErrorKindBadRequest          ErrorKind = "bad_request"
	ErrorKindNotFound            ErrorKind = "not_found"
	ErrorKindInternalServerError ErrorKind = "internal_server_error"
)

// APIError is the structured error carried in every HTTP error response,
// serialized under an "error" key: {"error": {"kind": ..., "field"?, "detail"?}}.
type APIError struct {
	Kind       ErrorKind `json:"kind"`
	Field      string    `json:"field,omitempty"`  // offending field, for validation errors
	Detail     string    `json:"detail,omitempty"` // optional human-readable context
	StatusCode int       `json:"-"`                // HTTP status code
}

// Error makes APIError implement the error interface.
func (e APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] field %q: %s", e.Kind, e.Field, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Detail)
}

// NewAPIError is a constructor for APIError.
func NewAPIError(kind ErrorKind, field, detail string, statusCode int) APIError {
	return APIError{
		Kind:       kind,
		Field:      field,
		Detail:     detail,
		StatusCode: statusCode,
	}
}
