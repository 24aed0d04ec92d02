// Package cms implements the outbound gateway to the Sanity-style document
// store that owns customer and order documents.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Fardankhan12/FurniroXFardan/internal/api/metrics"
	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
	"github.com/Fardankhan12/FurniroXFardan/internal/core/ports"
)

// Config carries the document-store connection settings.
type Config struct {
	// BaseURL overrides the derived project URL; used in tests.
	BaseURL    string
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
}

// Client issues mutations against the CMS data API. Documents are owned by
// the CMS once created; only their identifiers come back.
type Client struct {
	mutateURL string
	token     string
	httpc     *http.Client
	logger    zerolog.Logger
}

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.api.sanity.io", cfg.ProjectID)
	}
	return &Client{
		mutateURL: fmt.Sprintf("%s/%s/data/mutate/%s?returnIds=true", base, cfg.APIVersion, cfg.Dataset),
		token:     cfg.Token,
		httpc:     &http.Client{},
		logger:    logger,
	}
}

// CreateCustomer persists one customer document and returns its identifier.
func (c *Client) CreateCustomer(ctx context.Context, customer domain.CustomerInput, fullName string) (*ports.CustomerRecord, error) {
	id, err := c.create(ctx, domain.StepCreateCustomer, map[string]any{
		"_type":           "customer",
		"firstName":       customer.FirstName,
		"lastName":        customer.LastName,
		"fullName":        fullName,
		"email":           customer.Email,
		"phone":           customer.Phone,
		"streetAddress":   customer.StreetAddress,
		"city":            customer.City,
		"province":        customer.Province,
		"zipCode":         customer.ZipCode,
		"additionalNotes": customer.AdditionalNotes,
	})
	if err != nil {
		return nil, err
	}
	return &ports.CustomerRecord{ID: id, FullName: fullName}, nil
}

// CreateOrder persists one order document referencing the customer and
// returns its identifier.
func (c *Client) CreateOrder(ctx context.Context, doc ports.OrderDocument) (string, error) {
	return c.create(ctx, domain.StepCreateOrder, map[string]any{
		"_type": "order",
		"customer": map[string]any{
			"_type": "reference",
			"_ref":  doc.CustomerID,
		},
		"fullName": doc.FullName,
		"shipTo": map[string]any{
			"name":         doc.ShipTo.Name,
			"phone":        doc.ShipTo.Phone,
			"email":        doc.ShipTo.Email,
			"addressLine1": doc.ShipTo.AddressLine1,
			"city":         doc.ShipTo.CityLocality,
			"state":        doc.ShipTo.StateProvince,
			"postalCode":   doc.ShipTo.PostalCode,
			"country":      doc.ShipTo.CountryCode,
		},
		"trackingNumber": doc.TrackingNumber,
		"shipmentCost":   doc.ShipmentCost,
		"trackingUrl":    doc.TrackingURL,
		"createdAt":      doc.CreatedAt,
		"labelPrint":     doc.LabelPrint,
		"carrierCode":    doc.CarrierCode,
		"additionalInfo": doc.AdditionalInfo,
	})
}

type mutateRequest struct {
	Mutations []mutation `json:"mutations"`
}

type mutation struct {
	Create map[string]any `json:"create"`
}

type mutateResponse struct {
	TransactionID string `json:"transactionId"`
	Results       []struct {
		ID        string `json:"id"`
		Operation string `json:"operation"`
	} `json:"results"`
}

// create issues one create-mutation. One network call, no retry; step tags
// the failure so the orchestrator knows where the chain broke.
func (c *Client) create(ctx context.Context, step string, doc map[string]any) (string, error) {
	body, err := json.Marshal(mutateRequest{Mutations: []mutation{{Create: doc}}})
	if err != nil {
		return "", &domain.StepError{Step: step, Message: "encode document", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.mutateURL, bytes.NewReader(body))
	if err != nil {
		return "", &domain.StepError{Step: step, Message: "build document request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues("cms", "error").Observe(time.Since(start).Seconds())
		return "", &domain.StepError{Step: step, Message: "document store unreachable", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues("cms", "error").Observe(time.Since(start).Seconds())
		return "", &domain.StepError{Step: step, Message: "read document store response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.UpstreamRequestDuration.WithLabelValues("cms", "error").Observe(time.Since(start).Seconds())
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("step", step).
			Msg("document store rejected mutation")

		var details any
		if json.Unmarshal(raw, &details) != nil {
			details = strings.TrimSpace(string(raw))
		}
		return "", &domain.StepError{
			Step:    step,
			Status:  resp.StatusCode,
			Message: "document store error",
			Details: details,
		}
	}
	metrics.UpstreamRequestDuration.WithLabelValues("cms", "ok").Observe(time.Since(start).Seconds())

	var result mutateResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", &domain.StepError{Step: step, Message: "decode document store response", Err: err}
	}
	if len(result.Results) == 0 || result.Results[0].ID == "" {
		return "", &domain.StepError{Step: step, Message: "document store returned no identifier"}
	}

	return result.Results[0].ID, nil
}
