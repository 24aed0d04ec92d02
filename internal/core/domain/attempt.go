package domain

import "time"

// AttemptState is the terminal state of one checkout submission.
type AttemptState string

const (
	AttemptSucceeded AttemptState = "succeeded"
	AttemptFailed    AttemptState = "failed"
)

// StepRecord is one named step's outcome within a checkout attempt.
type StepRecord struct {
	Name   string    `json:"name" bson:"name"`
	Status string    `json:"status" bson:"status"`
	Detail string    `json:"detail,omitempty" bson:"detail,omitempty"`
	At     time.Time `json:"at" bson:"at"`
}

// CheckoutAttempt is the reconciliation journal entry written for every
// submission that passed validation. A failed attempt whose shipment step
// completed identifies an orphaned shipment: no compensation is run, so
// the journal is the only place the orphan is visible.
type CheckoutAttempt struct {
	ID             string       `json:"id" bson:"_id"`
	Email          string       `json:"email" bson:"email"`
	FullName       string       `json:"full_name" bson:"full_name"`
	State          AttemptState `json:"state" bson:"state"`
	Steps          []StepRecord `json:"steps" bson:"steps"`
	TrackingNumber string       `json:"tracking_number,omitempty" bson:"tracking_number,omitempty"`
	CustomerID     string       `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	OrderID        string       `json:"order_id,omitempty" bson:"order_id,omitempty"`
	CreatedAt      time.Time    `json:"created_at" bson:"created_at"`
}
