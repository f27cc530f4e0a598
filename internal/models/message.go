package models

// MessageType is the declared type of an inbound device message.
type MessageType string

const (
	TypeRegistration MessageType = "registration"
	TypeReading      MessageType = "reading"
)

// KnownType reports whether t is one of the supported message types.
func KnownType(t MessageType) bool {
	switch t {
	case TypeRegistration, TypeReading:
		return true
	}
	return false
}

// RegistrationData is the payload of a registration message.
type RegistrationData struct {
	Username string `json:"username"`
}

// ReadingData is the payload of a reading message.
type ReadingData struct {
	Reading float64 `json:"reading"`
}

// Envelope is a validated inbound message. Exactly one of Registration or
// Reading is set, matching Type.
type Envelope struct {
	DeviceID     string
	Type         MessageType
	Registration *RegistrationData
	Reading      *ReadingData
}

// DeviceUpdate is the body sent to the device service registration endpoint.
type DeviceUpdate struct {
	Username string `json:"username"`
}

// ReadingPayload is the body sent to the reading service ingestion endpoint.
type ReadingPayload struct {
	DeviceID string  `json:"deviceId"`
	Reading  float64 `json:"reading"`
}
