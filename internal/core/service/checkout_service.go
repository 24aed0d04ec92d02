package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Fardankhan12/FurniroXFardan/internal/api/metrics"
	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
	"github.com/Fardankhan12/FurniroXFardan/internal/core/ports"
)

// InflightGuard abstracts the processing flag that disables double
// submission (Redis). The guard is advisory: when the backing store is
// unreachable the submission proceeds.
type InflightGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string)
}

// AttemptSink receives finished attempt records for the reconciliation
// journal. Writes happen off the request path.
type AttemptSink interface {
	Enqueue(attempt *domain.CheckoutAttempt)
}

// CheckoutConfig carries the fixed shipment parameters every submission
// uses: the warehouse origin and the negotiated carrier service.
type CheckoutConfig struct {
	Origin      domain.ShippingAddress
	CarrierID   string
	ServiceCode string
}

// CheckoutService sequences the checkout workflow. The three outbound
// calls are strictly sequential; any failure aborts the remaining chain
// with no compensation for completed steps.
type CheckoutService struct {
	validator *CheckoutValidator
	carrier   ports.CarrierGateway
	customers ports.CustomerRegistry
	orders    ports.OrderStore
	guard     InflightGuard
	journal   AttemptSink
	cfg       CheckoutConfig
	logger    zerolog.Logger
}

func NewCheckoutService(
	validator *CheckoutValidator,
	carrier ports.CarrierGateway,
	customers ports.CustomerRegistry,
	orders ports.OrderStore,
	guard InflightGuard,
	journal AttemptSink,
	cfg CheckoutConfig,
	logger zerolog.Logger,
) *CheckoutService {
	return &CheckoutService{
		validator: validator,
		carrier:   carrier,
		customers: customers,
		orders:    orders,
		guard:     guard,
		journal:   journal,
		cfg:       cfg,
		logger:    logger,
	}
}

// Submit runs one checkout submission end to end.
func (s *CheckoutService) Submit(ctx context.Context, input domain.CustomerInput) (*ports.CheckoutResult, error) {
	normalized, fieldErrs := s.validator.Validate(input)
	if fieldErrs != nil {
		// No network calls and no processing flag on this path.
		metrics.CheckoutsTotal.WithLabelValues("invalid").Inc()
		return nil, fieldErrs
	}

	guardKey := strings.ToLower(strings.TrimSpace(normalized.Email))
	switch acquired, err := s.guard.Acquire(ctx, guardKey); {
	case err != nil:
		s.logger.Warn().Err(err).Msg("in-flight guard unavailable, proceeding without it")
	case !acquired:
		metrics.CheckoutsTotal.WithLabelValues("in_flight").Inc()
		return nil, domain.ErrCheckoutInFlight
	default:
		// The flag must clear on every exit, including failures.
		defer s.guard.Release(context.WithoutCancel(ctx), guardKey)
	}

	fullName := normalized.FullName()
	attempt := &domain.CheckoutAttempt{
		ID:        uuid.NewString(),
		Email:     guardKey,
		FullName:  fullName,
		CreatedAt: time.Now().UTC(),
	}

	// 1. Carrier shipment.
	shipment, err := s.carrier.CreateShipment(ctx, s.buildShipmentRequest(normalized, fullName))
	if err != nil {
		return nil, s.abort(attempt, domain.StepCreateShipment, err)
	}
	attempt.TrackingNumber = shipment.TrackingNumber
	s.recordStep(attempt, domain.StepCreateShipment, "tracking_number="+shipment.TrackingNumber)

	// 2. Customer record. A failure here leaves the shipment orphaned;
	// the journal entry above is what makes that reconcilable.
	customer, err := s.customers.CreateCustomer(ctx, normalized, fullName)
	if err != nil {
		return nil, s.abort(attempt, domain.StepCreateCustomer, err)
	}
	attempt.CustomerID = customer.ID
	s.recordStep(attempt, domain.StepCreateCustomer, "customer_id="+customer.ID)

	// 3. Order document.
	orderID, err := s.orders.CreateOrder(ctx, buildOrderDocument(customer.ID, fullName, normalized.AdditionalNotes, shipment))
	if err != nil {
		return nil, s.abort(attempt, domain.StepCreateOrder, err)
	}
	attempt.OrderID = orderID
	s.recordStep(attempt, domain.StepCreateOrder, "order_id="+orderID)

	attempt.State = domain.AttemptSucceeded
	s.journal.Enqueue(attempt)
	metrics.CheckoutsTotal.WithLabelValues("succeeded").Inc()

	s.logger.Info().
		Str("attempt_id", attempt.ID).
		Str("order_id", orderID).
		Str("tracking_number", shipment.TrackingNumber).
		Msg("checkout completed")

	return &ports.CheckoutResult{
		AttemptID:       attempt.ID,
		OrderID:         orderID,
		CustomerID:      customer.ID,
		TrackingNumber:  shipment.TrackingNumber,
		ConfirmationURL: "/order-confirmation/order?orderId=" + orderID,
	}, nil
}

// abort finalises a failed attempt: the step outcome is journalled and the
// error is returned tagged with the step it came from. Already-completed
// steps are left as they are.
func (s *CheckoutService) abort(attempt *domain.CheckoutAttempt, step string, err error) error {
	attempt.State = domain.AttemptFailed
	attempt.Steps = append(attempt.Steps, domain.StepRecord{
		Name:   step,
		Status: "failed",
		Detail: err.Error(),
		At:     time.Now().UTC(),
	})
	s.journal.Enqueue(attempt)

	metrics.CheckoutsTotal.WithLabelValues("failed").Inc()
	metrics.StepFailuresTotal.WithLabelValues(step).Inc()

	s.logger.Error().Err(err).
		Str("attempt_id", attempt.ID).
		Str("step", step).
		Msg("checkout aborted")

	if _, ok := err.(*domain.StepError); ok {
		return err
	}
	return &domain.StepError{Step: step, Message: "checkout step failed", Err: err}
}

func (s *CheckoutService) recordStep(attempt *domain.CheckoutAttempt, step, detail string) {
	attempt.Steps = append(attempt.Steps, domain.StepRecord{
		Name:   step,
		Status: "completed",
		Detail: detail,
		At:     time.Now().UTC(),
	})
}

// buildShipmentRequest assembles the carrier payload from the validated
// form plus the fixed origin. Shipments always go out as one placeholder
// parcel; weight negotiation is out of the storefront's hands.
func (s *CheckoutService) buildShipmentRequest(c domain.CustomerInput, fullName string) domain.ShipmentRequest {
	return domain.ShipmentRequest{
		ShipFrom: &s.cfg.Origin,
		ShipTo: &domain.ShippingAddress{
			Name:                 fullName,
			AddressLine1:         strings.TrimSpace(c.StreetAddress),
			CityLocality:         strings.TrimSpace(c.City),
			StateProvince:        c.Province,
			PostalCode:           strings.TrimSpace(c.ZipCode),
			CountryCode:          domain.DestinationCountry,
			Phone:                strings.TrimSpace(c.Phone),
			Email:                strings.TrimSpace(c.Email),
			ResidentialIndicator: "no",
		},
		Packages: []domain.Parcel{
			{
				Weight:     domain.Weight{Value: 20, Unit: "pound"},
				Dimensions: domain.Dimensions{Length: 12, Width: 10, Height: 8, Unit: "inch"},
			},
		},
		CarrierID:   s.cfg.CarrierID,
		ServiceCode: s.cfg.ServiceCode,
	}
}

// buildOrderDocument copies the shipment details into the order by value;
// optional carrier fields were already defaulted at the gateway boundary.
func buildOrderDocument(customerID, fullName, notes string, shipment *domain.ShipmentResult) ports.OrderDocument {
	return ports.OrderDocument{
		CustomerID:     customerID,
		FullName:       fullName,
		ShipTo:         shipment.DestinationOrZero(),
		TrackingNumber: shipment.TrackingNumber,
		ShipmentCost:   shipment.CostAmount(),
		TrackingURL:    shipment.TrackingURL,
		CreatedAt:      shipment.CreatedAt,
		LabelPrint:     shipment.LabelPDF(),
		CarrierCode:    shipment.CarrierCode,
		AdditionalInfo: notes,
	}
}
