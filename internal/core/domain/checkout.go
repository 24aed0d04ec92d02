package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Checkout step names. Every submission walks them in this order; the step
// name is carried on failures and in the attempt journal so a failed run
// can be reconciled by hand.
const (
	StepValidate       = "validate"
	StepCreateShipment = "create_shipment"
	StepCreateCustomer = "create_customer"
	StepCreateOrder    = "create_order"
)

var ErrMissingShipmentFields = errors.New("missing required fields: ship_from, ship_to and packages must be provided")
var ErrCheckoutInFlight = errors.New("a checkout for this customer is already in progress")
var ErrInvalidOperatorKey = errors.New("invalid operator key")

// Provinces is the fixed set of destination provinces the storefront ships to.
var Provinces = []string{"Sindh", "Punjab", "Balochistan", "KPK", "Gilgit-Baltistan"}

// DestinationCountry is fixed: the storefront only ships to Pakistan.
const DestinationCountry = "PK"

// CustomerInput is the raw billing form as submitted by the shopper.
// It is consumed once per submission and never persisted as-is.
type CustomerInput struct {
	FirstName       string `json:"firstName"       validate:"required,min=2,max=50"`
	LastName        string `json:"lastName"        validate:"required,min=2,max=50"`
	StreetAddress   string `json:"streetAddress"   validate:"required,min=5,max=100"`
	City            string `json:"city"            validate:"required,min=2,max=50"`
	Province        string `json:"province"        validate:"required,oneof=Sindh Punjab Balochistan KPK Gilgit-Baltistan"`
	ZipCode         string `json:"zipCode"         validate:"required,number,min=5,max=10"`
	Phone           string `json:"phone"           validate:"required,number,len=10"`
	Email           string `json:"email"           validate:"required,email"`
	AdditionalNotes string `json:"additionalNotes" validate:"omitempty,max=500"`
}

// FullName derives the display name sent to the registrar and order store.
func (c CustomerInput) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// FieldErrors maps a form field to the message of the first rule it
// violated. Fields are validated independently, so every invalid field is
// reported at once.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// StepError is a tagged failure from one of the checkout's external calls.
// Status and Details preserve what the upstream service returned so the
// caller can pass them through.
type StepError struct {
	Step    string
	Status  int
	Message string
	Details any
	Err     error
}

func (e *StepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Step, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Step, e.Message, e.Status)
}

func (e *StepError) Unwrap() error { return e.Err }
