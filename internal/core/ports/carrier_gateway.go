package ports

import (
	"context"

	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
)

// CarrierGateway is the outbound boundary to the third-party shipment API.
//
// CreateShipment performs exactly one network call, no retries. Requests
// missing ship_from, ship_to or packages are rejected with
// domain.ErrMissingShipmentFields before anything goes on the wire.
// Carrier-side failures come back as *domain.StepError preserving the
// upstream status code and error payload.
type CarrierGateway interface {
	CreateShipment(ctx context.Context, req domain.ShipmentRequest) (*domain.ShipmentResult, error)
}
