package service

import (
	"testing"

	"IoTHub.gateway/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnvelope_Registration(t *testing.T) {
	raw := []byte(`{"deviceId":"sensor-001","type":"registration","data":{"username":"alice"}}`)

	env, err := ValidateEnvelope(raw)
	require.NoError(t, err)

	assert.Equal(t, "sensor-001", env.DeviceID)
	assert.Equal(t, models.TypeRegistration, env.Type)
	require.NotNil(t, env.Registration)
	assert.Equal(t, "alice", env.Registration.Username)
	assert.Nil(t, env.Reading)
}

func TestValidateEnvelope_Reading(t *testing.T) {
	raw := []byte(`{"deviceId":"sensor-001","type":"reading","data":{"reading":23.5}}`)

	env, err := ValidateEnvelope(raw)
	require.NoError(t, err)

	assert.Equal(t, models.TypeReading, env.Type)
	require.NotNil(t, env.Reading)
	assert.Equal(t, 23.5, env.Reading.Reading)
	assert.Nil(t, env.Registration)
}

func TestValidateEnvelope_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		kind  ValidationKind
		field string
	}{
		{"not json", `{"deviceId":`, MalformedPayload, "body"},
		{"missing deviceId", `{"type":"registration","data":{"username":"alice"}}`, MissingField, "deviceId"},
		{"empty deviceId", `{"deviceId":"","type":"reading","data":{"reading":1}}`, MissingField, "deviceId"},
		{"missing type", `{"deviceId":"d1","data":{"username":"alice"}}`, MissingField, "type"},
		{"missing data", `{"deviceId":"d1","type":"reading"}`, MissingField, "data"},
		{"null data", `{"deviceId":"d1","type":"reading","data":null}`, MissingField, "data"},
		{"unknown type", `{"deviceId":"d1","type":"telemetry","data":{"reading":1}}`, UnknownType, "type"},
		{"registration without username", `{"deviceId":"d1","type":"registration","data":{}}`, MalformedPayload, "data.username"},
		{"registration empty username", `{"deviceId":"d1","type":"registration","data":{"username":""}}`, MalformedPayload, "data.username"},
		{"registration non-string username", `{"deviceId":"d1","type":"registration","data":{"username":42}}`, MalformedPayload, "data"},
		{"reading without value", `{"deviceId":"d1","type":"reading","data":{}}`, MalformedPayload, "data.reading"},
		{"reading non-numeric value", `{"deviceId":"d1","type":"reading","data":{"reading":"hot"}}`, MalformedPayload, "data"},
		{"data not an object", `{"deviceId":"d1","type":"reading","data":[1,2]}`, MalformedPayload, "data"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateEnvelope([]byte(tc.raw))
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.kind, vErr.Kind)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

// An unknown type must be rejected before the payload is ever inspected,
// even when the payload is also broken.
func TestValidateEnvelope_UnknownTypeWinsOverBadPayload(t *testing.T) {
	raw := []byte(`{"deviceId":"d1","type":"telemetry","data":{"bogus":true}}`)

	_, err := ValidateEnvelope(raw)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, UnknownType, vErr.Kind)
}
