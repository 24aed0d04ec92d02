package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Fardankhan12/FurniroXFardan/internal/core/ports"
)

// CheckoutHandler handles the storefront checkout submission.
type CheckoutHandler struct {
	service ports.CheckoutService
}

func NewCheckoutHandler(service ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// Submit handles POST /v1/checkout.
//
// @Summary      Submit the checkout form
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      checkoutRequest  true  "Billing and shipping details"
// @Success      201   {object}  checkoutResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  map[string]any
// @Failure      500   {object}  errorResponse
// @Router       /v1/checkout [post]
func (h *CheckoutHandler) Submit(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	result, err := h.service.Submit(c.Request().Context(), toCustomerInput(req))
	if err != nil {
		// The central error handler renders field maps, upstream
		// passthroughs and in-flight conflicts.
		return err
	}

	return c.JSON(http.StatusCreated, toCheckoutResponse(result))
}
