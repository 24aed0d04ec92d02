package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
	"github.com/Fardankhan12/FurniroXFardan/internal/core/ports"
)

// ShippingHandler exposes the shipment-creation boundary directly: the
// storefront's internal route in front of the carrier API.
type ShippingHandler struct {
	gateway ports.CarrierGateway
}

func NewShippingHandler(gateway ports.CarrierGateway) *ShippingHandler {
	return &ShippingHandler{gateway: gateway}
}

// Create handles POST /v1/shipping.
//
// @Summary      Create a shipment with the carrier
// @Tags         shipping
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ShipmentRequest  true  "Carrier-shaped shipment payload"
// @Success      200   {object}  domain.ShipmentResult
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/shipping [post]
func (h *ShippingHandler) Create(c echo.Context) error {
	var req domain.ShipmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	result, err := h.gateway.CreateShipment(c.Request().Context(), req)
	if err != nil {
		// Missing-field rejections come back as 400, carrier failures
		// as a status/payload passthrough, both via the error handler.
		return err
	}

	// Return the carrier's body verbatim when we have it.
	if len(result.Raw) > 0 {
		return c.JSONBlob(http.StatusOK, result.Raw)
	}
	return c.JSON(http.StatusOK, result)
}

// MethodNotAllowed handles GET /v1/shipping, which the original boundary
// explicitly rejects.
func (h *ShippingHandler) MethodNotAllowed(c echo.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
}
