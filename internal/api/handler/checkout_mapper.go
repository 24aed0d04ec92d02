package handler

import (
	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
	"github.com/Fardankhan12/FurniroXFardan/internal/core/ports"
)

// --- Request → Service input ---

func toCustomerInput(req checkoutRequest) domain.CustomerInput {
	return domain.CustomerInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		StreetAddress:   req.StreetAddress,
		City:            req.City,
		Province:        req.Province,
		ZipCode:         req.ZipCode,
		Phone:           req.Phone,
		Email:           req.Email,
		AdditionalNotes: req.AdditionalNotes,
	}
}

// --- Service result → HTTP response ---

func toCheckoutResponse(r *ports.CheckoutResult) checkoutResponse {
	return checkoutResponse{
		AttemptID:       r.AttemptID,
		OrderID:         r.OrderID,
		CustomerID:      r.CustomerID,
		TrackingNumber:  r.TrackingNumber,
		ConfirmationURL: r.ConfirmationURL,
	}
}

func toListAttemptsResponse(r *ports.ListAttemptsResult) listAttemptsResponse {
	items := make([]attemptResponse, len(r.Items))
	for i, a := range r.Items {
		items[i] = toAttemptResponse(a)
	}
	return listAttemptsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toAttemptResponse(a *domain.CheckoutAttempt) attemptResponse {
	steps := make([]stepRecordResponse, len(a.Steps))
	for i, s := range a.Steps {
		steps[i] = stepRecordResponse{
			Name:   s.Name,
			Status: s.Status,
			Detail: s.Detail,
			At:     s.At.UTC(),
		}
	}
	return attemptResponse{
		ID:             a.ID,
		Email:          a.Email,
		FullName:       a.FullName,
		State:          string(a.State),
		Steps:          steps,
		TrackingNumber: a.TrackingNumber,
		CustomerID:     a.CustomerID,
		OrderID:        a.OrderID,
		CreatedAt:      a.CreatedAt.UTC(),
	}
}
