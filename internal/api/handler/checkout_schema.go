package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses this package writes directly.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// checkoutRequest is the billing form as the storefront submits it. The
// field rules live in the core validator, not on this transport type.
type checkoutRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	StreetAddress   string `json:"streetAddress"`
	City            string `json:"city"`
	Province        string `json:"province"`
	ZipCode         string `json:"zipCode"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	AdditionalNotes string `json:"additionalNotes"`
}

type checkoutResponse struct {
	AttemptID       string `json:"attempt_id"`
	OrderID         string `json:"order_id"`
	CustomerID      string `json:"customer_id"`
	TrackingNumber  string `json:"tracking_number"`
	ConfirmationURL string `json:"confirmation_url"`
}

// --- Admin surface ---

type adminLoginRequest struct {
	APIKey string `json:"api_key"`
}

type adminLoginResponse struct {
	Token string `json:"token"`
}

type stepRecordResponse struct {
	Name   string    `json:"name"`
	Status string    `json:"status"`
	Detail string    `json:"detail,omitempty"`
	At     time.Time `json:"at"`
}

type attemptResponse struct {
	ID             string               `json:"id"`
	Email          string               `json:"email"`
	FullName       string               `json:"full_name"`
	State          string               `json:"state"`
	Steps          []stepRecordResponse `json:"steps"`
	TrackingNumber string               `json:"tracking_number,omitempty"`
	CustomerID     string               `json:"customer_id,omitempty"`
	OrderID        string               `json:"order_id,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listAttemptsResponse struct {
	Data       []attemptResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
