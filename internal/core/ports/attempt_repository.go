package ports

import (
	"context"

	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
)

// ListAttemptsFilter carries the query parameters for listing journal entries.
type ListAttemptsFilter struct {
	State string // optional: filter by terminal state
	Email string // optional: exact match on customer email
	Page  int    // 1-based
	Limit int
}

// AttemptRepository defines persistence operations for the checkout
// attempt journal.
type AttemptRepository interface {
	Insert(ctx context.Context, attempt *domain.CheckoutAttempt) error
	// List returns a page of attempts matching filter, newest first,
	// and the total count.
	List(ctx context.Context, filter ListAttemptsFilter) ([]*domain.CheckoutAttempt, int64, error)
}
