package carrier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
)

func sampleRequest() domain.ShipmentRequest {
	return domain.ShipmentRequest{
		ShipFrom: &domain.ShippingAddress{
			Name:         "Furniro Warehouse",
			AddressLine1: "123 Main St",
			CityLocality: "Austin",
			PostalCode:   "78756",
			CountryCode:  "US",
		},
		ShipTo: &domain.ShippingAddress{
			Name:         "Ali Khan",
			AddressLine1: "123 Main Street",
			CityLocality: "Lahore",
			PostalCode:   "54000",
			CountryCode:  "PK",
		},
		Packages: []domain.Parcel{
			{Weight: domain.Weight{Value: 20, Unit: "pound"}},
		},
		CarrierID:   "se-1861706",
		ServiceCode: "fedex_ground",
	}
}

func TestCreateShipment_Success(t *testing.T) {
	const body = `{
		"shipment_id": "se-abc",
		"tracking_number": "TRK123",
		"ship_to": {"name": "Ali Khan", "city_locality": "Lahore"},
		"shipment_cost": {"amount": 42.5, "currency": "usd"},
		"tracking_url": "https://track.example/TRK123",
		"label_download": {"pdf": "https://labels.example/TRK123.pdf"},
		"carrier_code": "fedex"
	}`

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/shipments" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")

		var req domain.ShipmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode outbound payload: %v", err)
		}
		if req.ShipTo == nil || req.ShipTo.CityLocality != "Lahore" {
			t.Errorf("outbound ship_to: %+v", req.ShipTo)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-key", zerolog.Nop())
	result, err := client.CreateShipment(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer secret-key" {
		t.Errorf("authorization header: %q", gotAuth)
	}
	if result.TrackingNumber != "TRK123" {
		t.Errorf("tracking number: %q", result.TrackingNumber)
	}
	if result.CostAmount() != 42.5 {
		t.Errorf("cost: %v", result.CostAmount())
	}
	if result.LabelPDF() != "https://labels.example/TRK123.pdf" {
		t.Errorf("label: %q", result.LabelPDF())
	}
	if !json.Valid(result.Raw) || len(result.Raw) == 0 {
		t.Error("raw response body must be preserved")
	}
}

func TestCreateShipment_OptionalFieldsDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"tracking_number": "TRK9"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", zerolog.Nop())
	result, err := client.CreateShipment(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CostAmount() != 0 {
		t.Errorf("missing cost must read as 0, got %v", result.CostAmount())
	}
	if result.LabelPDF() != "" {
		t.Errorf("missing label must read as empty, got %q", result.LabelPDF())
	}
	if got := result.DestinationOrZero(); got != (domain.ShippingAddress{}) {
		t.Errorf("missing ship_to must read as zero value, got %+v", got)
	}
}

func TestCreateShipment_MissingFields_NeverOnTheWire(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", zerolog.Nop())

	req := sampleRequest()
	req.Packages = nil

	_, err := client.CreateShipment(context.Background(), req)

	var stepErr *domain.StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected StepError, got %v", err)
	}
	if stepErr.Status != http.StatusBadRequest {
		t.Errorf("status: %d", stepErr.Status)
	}
	if !errors.Is(err, domain.ErrMissingShipmentFields) {
		t.Errorf("expected ErrMissingShipmentFields, got %v", err)
	}
	if calls != 0 {
		t.Errorf("pre-flight rejection must not call the carrier, got %d calls", calls)
	}
}

func TestCreateShipment_CarrierErrorPreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors": [{"message": "invalid postal code"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", zerolog.Nop())
	_, err := client.CreateShipment(context.Background(), sampleRequest())

	var stepErr *domain.StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected StepError, got %v", err)
	}
	if stepErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("upstream status must be preserved, got %d", stepErr.Status)
	}
	if stepErr.Details == nil {
		t.Error("upstream error payload must be preserved")
	}
	if stepErr.Step != domain.StepCreateShipment {
		t.Errorf("step: %q", stepErr.Step)
	}
}

func TestCreateShipment_UnparsableErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream proxy error"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", zerolog.Nop())
	_, err := client.CreateShipment(context.Background(), sampleRequest())

	var stepErr *domain.StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected StepError, got %v", err)
	}
	if stepErr.Status != http.StatusBadGateway {
		t.Errorf("status: %d", stepErr.Status)
	}
	if stepErr.Details != nil {
		t.Errorf("unparsable body degrades to nil details, got %v", stepErr.Details)
	}
}

func TestCreateShipment_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL, "k", zerolog.Nop())
	_, err := client.CreateShipment(context.Background(), sampleRequest())

	var stepErr *domain.StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected StepError, got %v", err)
	}
	if stepErr.Status != 0 {
		t.Errorf("transport failures carry no upstream status, got %d", stepErr.Status)
	}
}
