package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/Fardankhan12/FurniroXFardan/docs"
	"github.com/Fardankhan12/FurniroXFardan/internal/api"
	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
	"github.com/Fardankhan12/FurniroXFardan/internal/core/service"
	"github.com/Fardankhan12/FurniroXFardan/internal/gateway/carrier"
	"github.com/Fardankhan12/FurniroXFardan/internal/gateway/cms"
	"github.com/Fardankhan12/FurniroXFardan/internal/infrastructure/config"
	mongodb "github.com/Fardankhan12/FurniroXFardan/internal/infrastructure/db/mongo"
	redisdb "github.com/Fardankhan12/FurniroXFardan/internal/infrastructure/db/redis"
	"github.com/Fardankhan12/FurniroXFardan/internal/infrastructure/queue"
	"github.com/Fardankhan12/FurniroXFardan/pkg/logger"
)

// @title        Furniro Checkout API
// @version      1.0
// @description  Checkout submission workflow for the Furniro storefront.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// .env is a dev convenience; absence is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Dependencies ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	attemptRepo := mongodb.NewAttemptRepository(db)
	if err := attemptRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure journal indexes")
	}

	dispatcher := queue.NewDispatcher(0, attemptRepo, log)
	dispatcher.Start(ctx)

	carrierGateway := carrier.NewClient(cfg.Carrier.BaseURL, cfg.Carrier.APIKey, log)
	cmsClient := cms.NewClient(cms.Config{
		BaseURL:    cfg.CMS.BaseURL,
		ProjectID:  cfg.CMS.ProjectID,
		Dataset:    cfg.CMS.Dataset,
		APIVersion: cfg.CMS.APIVersion,
		Token:      cfg.CMS.Token,
	}, log)

	checkoutService := service.NewCheckoutService(
		service.NewCheckoutValidator(),
		carrierGateway,
		cmsClient,
		cmsClient,
		redisdb.NewInflightGuard(rdb),
		dispatcher,
		service.CheckoutConfig{
			Origin: domain.ShippingAddress{
				Name:          cfg.Origin.Name,
				AddressLine1:  cfg.Origin.Address,
				CityLocality:  cfg.Origin.City,
				StateProvince: cfg.Origin.State,
				PostalCode:    cfg.Origin.PostalCode,
				CountryCode:   cfg.Origin.Country,
				Phone:         cfg.Origin.Phone,
			},
			CarrierID:   cfg.Carrier.CarrierID,
			ServiceCode: cfg.Carrier.ServiceCode,
		},
		log,
	)
	adminService := service.NewAdminService(attemptRepo, cfg.AdminKeyHash, cfg.JWTSecret, 24*time.Hour, log)

	e := api.NewRouter(api.Deps{
		Checkout:  checkoutService,
		Carrier:   carrierGateway,
		Admin:     adminService,
		Mongo:     db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("checkout service started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("checkout service stopped")
}
