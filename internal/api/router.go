package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Fardankhan12/FurniroXFardan/internal/api/handler"
	"github.com/Fardankhan12/FurniroXFardan/internal/api/middleware"
	"github.com/Fardankhan12/FurniroXFardan/internal/core/ports"
)

// Deps holds everything the router needs wired in.
type Deps struct {
	Checkout  ports.CheckoutService
	Carrier   ports.CarrierGateway
	Admin     ports.AdminService
	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("checkout"))

	// --- Handlers ---
	checkoutHandler := handler.NewCheckoutHandler(deps.Checkout)
	shippingHandler := handler.NewShippingHandler(deps.Carrier)
	adminHandler := handler.NewAdminHandler(deps.Admin)

	// --- Storefront routes ---
	e.POST("/v1/checkout", checkoutHandler.Submit)
	e.POST("/v1/shipping", shippingHandler.Create)
	e.GET("/v1/shipping", shippingHandler.MethodNotAllowed)

	// --- Operator routes ---
	e.POST("/admin/login", adminHandler.Login)
	attempts := e.Group("/v1/checkouts",
		middleware.Auth(deps.JWTSecret),
		middleware.RequireRole("admin"),
	)
	attempts.GET("", adminHandler.ListAttempts)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
