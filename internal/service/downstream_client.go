package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"IoTHub.gateway/internal/models"
	"github.com/go-resty/resty/v2"
)

// DownstreamResponse is a successful answer from a downstream service.
type DownstreamResponse struct {
	Status int
	Body   map[string]interface{}
}

// Forwarder performs the outbound call for one validated message.
type Forwarder interface {
	Forward(ctx context.Context, target Target, env models.Envelope) (DownstreamResponse, error)
}

// DownstreamClient forwards validated messages to their downstream service
// over HTTP. Each Forward makes exactly one outbound call, bounded by the
// configured timeout; there is no retry loop. Transient downstream failures
// are reported to the caller immediately rather than masked.
type DownstreamClient struct {
	http *resty.Client
}

// NewDownstreamClient creates a new DownstreamClient with a per-call timeout.
func NewDownstreamClient(timeout time.Duration) *DownstreamClient {
	return &DownstreamClient{
		http: resty.New().SetTimeout(timeout),
	}
}

// Forward sends the envelope's relevant fields to the target service.
// Registration goes as an upsert to the device service's registration
// endpoint; readings go to the reading service's ingestion endpoint.
func (c *DownstreamClient) Forward(ctx context.Context, target Target, env models.Envelope) (DownstreamResponse, error) {
	var (
		resp *resty.Response
		err  error
	)

	switch target.Type {
	case models.TypeRegistration:
		endpoint := fmt.Sprintf("%s/devices/%s", target.BaseURL, env.DeviceID)
		resp, err = c.http.R().
			SetContext(ctx).
			SetBody(models.DeviceUpdate{Username: env.Registration.Username}).
			Put(endpoint)
	case models.TypeReading:
		endpoint := fmt.Sprintf("%s/readings", target.BaseURL)
		resp, err = c.http.R().
			SetContext(ctx).
			SetBody(models.ReadingPayload{DeviceID: env.DeviceID, Reading: env.Reading.Reading}).
			Post(endpoint)
	default:
		return DownstreamResponse{}, &ValidationError{Kind: UnknownType, Field: "type"}
	}

	if err != nil {
		return DownstreamResponse{}, translateTransportError(err)
	}

	if resp.StatusCode() >= 400 {
		log.Printf("Downstream %s returned status %d for device %s", target.BaseURL, resp.StatusCode(), env.DeviceID)
		return DownstreamResponse{}, &DownstreamError{
			Kind:   BadResponse,
			Status: resp.StatusCode(),
			Detail: string(resp.Body()),
		}
	}

	body := map[string]interface{}{}
	if raw := resp.Body(); len(raw) > 0 {
		if jsonErr := json.Unmarshal(raw, &body); jsonErr != nil {
			return DownstreamResponse{}, &DownstreamError{
				Kind:   BadResponse,
				Status: resp.StatusCode(),
				Detail: "malformed response body",
			}
		}
	}

	return DownstreamResponse{Status: resp.StatusCode(), Body: body}, nil
}

// translateTransportError folds the transport-level failure modes into the
// downstream error taxonomy. No status code exists here: the call never
// produced a response.
func translateTransportError(err error) *DownstreamError {
	var urlErr *url.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &DownstreamError{Kind: Timeout, Detail: "downstream call timed out"}
	case errors.As(err, &urlErr) && urlErr.Timeout():
		return &DownstreamError{Kind: Timeout, Detail: "downstream call timed out"}
	default:
		return &DownstreamError{Kind: Unreachable, Detail: err.Error()}
	}
}
