// @title                       Inventory API
// @version                     1.0
// @description                 Product, order and user management backend for the inventory console.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/inc-inventory/inventory-system/internal/api"
	"github.com/inc-inventory/inventory-system/internal/api/handler"
	"github.com/inc-inventory/inventory-system/internal/core/service"
	mongodb "github.com/inc-inventory/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/inc-inventory/inventory-system/internal/infrastructure/db/redis"
	"github.com/inc-inventory/inventory-system/internal/infrastructure/jobs"
	"github.com/inc-inventory/inventory-system/internal/infrastructure/pdf"
	"github.com/inc-inventory/inventory-system/internal/infrastructure/queue"
	"github.com/inc-inventory/inventory-system/internal/pkg/config"
	"github.com/inc-inventory/inventory-system/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadDotEnv(".env"); err != nil {
		zlog.Fatal().Err(err).Msg("load .env")
	}
	cfg, err := config.Load(ctx)
	if err != nil {
		zlog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "inventory-api",
	})

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}

	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	movementRepo := mongodb.NewStockMovementRepository(db)
	dashboardRepo := mongodb.NewDashboardRepository(db)

	if err := mongodb.EnsureIndexes(ctx, userRepo, categoryRepo, productRepo, orderRepo, movementRepo); err != nil {
		log.Fatal().Err(err).Msg("mongo indexes")
	}

	// --- Background workers ---
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	stockRecorder := service.NewStockService(movementRepo, redisdb.NewMovementDedup(rdb), log)
	dispatcher := queue.NewDispatcher(cfg.StockWorkers, stockRecorder, log)
	dispatcher.Start(workerCtx)

	sweep, err := jobs.NewLowStockSweep(dashboardRepo, cfg.LowStockSchedule, log)
	if err != nil {
		log.Fatal().Err(err).Msg("low stock sweep")
	}
	sweep.Start()

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL(), log)
	services := api.Services{
		Auth:       authService,
		Users:      service.NewUserService(userRepo, log),
		Categories: service.NewCategoryService(categoryRepo, log),
		Products:   service.NewProductService(productRepo, categoryRepo, movementRepo, log),
		Orders:     service.NewOrderService(orderRepo, productRepo, dispatcher, log),
		Dashboard: service.NewDashboardService(
			dashboardRepo, redisdb.NewDashboardCache(rdb, cfg.DashboardCacheTTL), log),
		Reports: service.NewReportService(
			orderRepo, productRepo, pdf.NewRenderer(), cfg.ReportCompanyName, log),
	}

	e := api.NewRouter(services, api.Options{
		Log:             log,
		CORSOrigins:     cfg.CORSOrigins,
		UploadDir:       cfg.UploadDir,
		LoginRatePerMin: cfg.LoginRatePerMin,
		Readiness: map[string]handler.Pinger{
			"mongodb": handler.PingFunc(mongodb.Pinger(db)),
			"redis":   handler.PingFunc(redisdb.Pinger(rdb)),
		},
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	sweep.Stop(shutdownCtx)
	// In-flight movements drain before the stores close.
	dispatcher.Close()
	cancelWorkers()

	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
	log.Info().Msg("stopped")
}
