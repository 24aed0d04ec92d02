package ports

import (
	"context"

	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
)

// CheckoutResult is returned after a fully successful submission.
type CheckoutResult struct {
	AttemptID       string
	OrderID         string
	CustomerID      string
	TrackingNumber  string
	ConfirmationURL string
}

// CheckoutService runs the checkout submission workflow:
// validate → create shipment → create customer → create order.
//
// Validation failures return domain.FieldErrors before any network call.
// A failure on any later step aborts the remaining chain and returns a
// *domain.StepError; already-completed steps are not compensated.
type CheckoutService interface {
	Submit(ctx context.Context, input domain.CustomerInput) (*CheckoutResult, error)
}

// ListAttemptsInput carries the parameters for the reconciliation listing.
type ListAttemptsInput struct {
	State string // optional: "succeeded" or "failed"
	Email string // optional: exact match
	Page  int    // 1-based
	Limit int    // capped by the service
}

// ListAttemptsResult is one page of the checkout attempt journal.
type ListAttemptsResult struct {
	Items      []*domain.CheckoutAttempt
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AdminService covers the operator surface: key-based login and the
// attempt journal used for manual reconciliation.
type AdminService interface {
	Login(ctx context.Context, apiKey string) (string, error)
	ListAttempts(ctx context.Context, input ListAttemptsInput) (*ListAttemptsResult, error)
}
