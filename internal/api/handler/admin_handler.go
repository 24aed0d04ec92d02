package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Fardankhan12/FurniroXFardan/internal/core/ports"
)

// AdminHandler covers the operator surface: login and the checkout
// attempt journal used for manual reconciliation.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Login handles POST /admin/login.
//
// @Summary      Exchange the operator API key for a JWT
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminLoginRequest  true  "Operator key"
// @Success      200   {object}  adminLoginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	token, err := h.service.Login(c.Request().Context(), req.APIKey)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminLoginResponse{Token: token})
}

// ListAttempts handles GET /v1/checkouts.
//
// @Summary      List checkout attempts (reconciliation journal)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        state  query     string  false  "Filter by terminal state (succeeded|failed)"
// @Param        email  query     string  false  "Filter by customer email"
// @Param        page   query     int     false  "Page (1-based)"
// @Param        limit  query     int     false  "Page size (max 100)"
// @Success      200    {object}  listAttemptsResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /v1/checkouts [get]
func (h *AdminHandler) ListAttempts(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListAttempts(c.Request().Context(), ports.ListAttemptsInput{
		State: c.QueryParam("state"),
		Email: c.QueryParam("email"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListAttemptsResponse(result))
}
