package service

import (
	"bytes"
	"encoding/json"

	"IoTHub.gateway/internal/models"
)

// rawEnvelope mirrors the inbound JSON before any shape checks run. Data is
// kept raw so payload decoding can wait until the type is known.
type rawEnvelope struct {
	DeviceID string          `json:"deviceId"`
	Type     string          `json:"type"`
	Data     json.RawMessage `json:"data"`
}

// ValidateEnvelope checks structural well-formedness of an inbound message
// and returns a typed Envelope. It is a pure function of its input: no side
// effects, no calls out. The payload is only inspected after the type itself
// is confirmed known, so an unrecognized type always wins over a bad payload.
func ValidateEnvelope(raw []byte) (models.Envelope, error) {
	var env rawEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return models.Envelope{}, &ValidationError{Kind: MalformedPayload, Field: "body"}
	}

	if env.DeviceID == "" {
		return models.Envelope{}, &ValidationError{Kind: MissingField, Field: "deviceId"}
	}
	if env.Type == "" {
		return models.Envelope{}, &ValidationError{Kind: MissingField, Field: "type"}
	}

	msgType := models.MessageType(env.Type)
	if !models.KnownType(msgType) {
		return models.Envelope{}, &ValidationError{Kind: UnknownType, Field: "type"}
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return models.Envelope{}, &ValidationError{Kind: MissingField, Field: "data"}
	}

	validated := models.Envelope{DeviceID: env.DeviceID, Type: msgType}

	switch msgType {
	case models.TypeRegistration:
		var payload struct {
			Username *string `json:"username"`
		}
		if err := json.Unmarshal(env.Data, &payload); err != nil {
			return models.Envelope{}, &ValidationError{Kind: MalformedPayload, Field: "data"}
		}
		if payload.Username == nil || *payload.Username == "" {
			return models.Envelope{}, &ValidationError{Kind: MalformedPayload, Field: "data.username"}
		}
		validated.Registration = &models.RegistrationData{Username: *payload.Username}
	case models.TypeReading:
		var payload struct {
			Reading *float64 `json:"reading"`
		}
		if err := json.Unmarshal(env.Data, &payload); err != nil {
			return models.Envelope{}, &ValidationError{Kind: MalformedPayload, Field: "data"}
		}
		if payload.Reading == nil {
			return models.Envelope{}, &ValidationError{Kind: MalformedPayload, Field: "data.reading"}
		}
		validated.Reading = &models.ReadingData{Reading: *payload.Reading}
	}

	return validated, nil
}
