// Package carrier implements the outbound gateway to the third-party
// shipment-creation API.
package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Fardankhan12/FurniroXFardan/internal/api/metrics"
	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
)

const shipmentsPath = "/v1/shipments"

// Client talks to the carrier over HTTP with a bearer credential.
// One call per shipment, no retries; the transport's default behaviour
// governs timeouts.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  zerolog.Logger
}

func NewClient(baseURL, apiKey string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{},
		logger:  logger,
	}
}

// CreateShipment submits one shipment to the carrier.
//
// The required-field check is boundary behaviour, not the carrier's: a
// request missing ship_from, ship_to or packages never goes on the wire.
func (c *Client) CreateShipment(ctx context.Context, req domain.ShipmentRequest) (*domain.ShipmentResult, error) {
	if !req.HasRequiredFields() {
		return nil, &domain.StepError{
			Step:    domain.StepCreateShipment,
			Status:  http.StatusBadRequest,
			Message: domain.ErrMissingShipmentFields.Error(),
			Err:     domain.ErrMissingShipmentFields,
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &domain.StepError{Step: domain.StepCreateShipment, Message: "encode shipment request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+shipmentsPath, bytes.NewReader(body))
	if err != nil {
		return nil, &domain.StepError{Step: domain.StepCreateShipment, Message: "build shipment request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues("carrier", "error").Observe(time.Since(start).Seconds())
		return nil, &domain.StepError{Step: domain.StepCreateShipment, Message: "carrier unreachable", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues("carrier", "error").Observe(time.Since(start).Seconds())
		return nil, &domain.StepError{Step: domain.StepCreateShipment, Message: "read carrier response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.UpstreamRequestDuration.WithLabelValues("carrier", "error").Observe(time.Since(start).Seconds())
		c.logger.Error().
			Int("status", resp.StatusCode).
			RawJSON("payload", jsonOrNull(raw)).
			Msg("carrier rejected shipment")

		// The carrier's status and error payload are preserved so the
		// caller can pass them through.
		return nil, &domain.StepError{
			Step:    domain.StepCreateShipment,
			Status:  resp.StatusCode,
			Message: "carrier error",
			Details: parsePayload(raw),
		}
	}
	metrics.UpstreamRequestDuration.WithLabelValues("carrier", "ok").Observe(time.Since(start).Seconds())

	var result domain.ShipmentResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &domain.StepError{Step: domain.StepCreateShipment, Message: "decode carrier response", Err: err}
	}
	result.Raw = json.RawMessage(raw)

	return &result, nil
}

// parsePayload decodes an upstream error body; an unparsable body yields
// nil so the failure degrades to a generic one.
func parsePayload(raw []byte) any {
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	return payload
}

func jsonOrNull(raw []byte) []byte {
	if json.Valid(raw) {
		return raw
	}
	return []byte("null")
}
