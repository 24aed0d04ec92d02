package ports

import (
	"context"

	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
)

// CustomerRecord is the read reference to a customer document after the
// CMS has taken ownership of it. Only the identifier is threaded forward.
type CustomerRecord struct {
	ID       string
	FullName string
}

// OrderDocument is the composed order payload persisted to the document
// store: the customer reference plus the shipment details copied by value.
type OrderDocument struct {
	CustomerID     string
	FullName       string
	ShipTo         domain.ShippingAddress
	TrackingNumber string
	ShipmentCost   float64
	TrackingURL    string
	CreatedAt      string
	LabelPrint     string
	CarrierCode    string
	AdditionalInfo string
}

// CustomerRegistry creates customer documents in the persistence service.
// One create-call per submission; no idempotency key, so a resubmitted
// form creates a duplicate customer record.
type CustomerRegistry interface {
	CreateCustomer(ctx context.Context, customer domain.CustomerInput, fullName string) (*CustomerRecord, error)
}

// OrderStore persists composed order documents and returns the stored
// identifier.
type OrderStore interface {
	CreateOrder(ctx context.Context, doc OrderDocument) (string, error)
}
