package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Claudio-Lins/amigo-tvde-backend/config"
	"github.com/Claudio-Lins/amigo-tvde-backend/db"
	"github.com/Claudio-Lins/amigo-tvde-backend/handlers"
	"github.com/Claudio-Lins/amigo-tvde-backend/internal/store/postgres"
	"github.com/Claudio-Lins/amigo-tvde-backend/logger"
	"github.com/Claudio-Lins/amigo-tvde-backend/models"
	"github.com/Claudio-Lins/amigo-tvde-backend/router"
	"github.com/Claudio-Lins/amigo-tvde-backend/services"
	"github.com/redis/go-redis/v9"
)

func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.ConnectPool(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.Database.URL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisOptions := &redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	if cfg.Server.Environment == config.EnvProduction {
		redisOptions.TLSConfig = &tls.Config{
			ServerName: cfg.Redis.Address,
			MinVersion: tls.VersionTLS12,
		}
	}
	redisClient := redis.NewClient(redisOptions)
	defer func() { _ = redisClient.Close() }()

	// Stores
	periodStore := postgres.NewPeriodStore(pool)
	vehicleStore := postgres.NewVehicleStore(pool)
	shiftStore := postgres.NewShiftStore(pool)
	fuelStore := postgres.NewFuelStore(pool)
	expenseStore := postgres.NewExpenseStore(pool)

	// Models
	periodModel := models.NewPeriodModel(periodStore)
	vehicleModel := models.NewVehicleModel(vehicleStore)
	shiftModel := models.NewShiftModel(shiftStore, vehicleModel, periodModel)
	fuelModel := models.NewFuelModel(fuelStore, vehicleModel, shiftModel, periodModel)
	expenseModel := models.NewExpenseModel(expenseStore, periodModel)

	// Services
	reportCache := services.NewReportCache(redisClient)
	reportService := services.NewReportService(shiftModel, vehicleModel, periodModel, fuelModel, expenseModel, reportCache)
	healthService := services.NewHealthService(pool, redisClient, cfg.Server.Version)

	deps := router.Dependencies{
		Config:         cfg,
		RedisClient:    redisClient,
		PeriodHandler:  handlers.NewPeriodHandler(periodModel, reportService),
		VehicleHandler: handlers.NewVehicleHandler(vehicleModel, reportService),
		ShiftHandler:   handlers.NewShiftHandler(shiftModel, reportService),
		FuelHandler:    handlers.NewFuelHandler(fuelModel, reportService),
		ExpenseHandler: handlers.NewExpenseHandler(expenseModel, reportService),
		ReportHandler:  handlers.NewReportHandler(reportService),
		HealthHandler:  handlers.NewHealthHandler(healthService),
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router.SetupRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server shutdown failed", "error", err)
	}
	log.Info("Server stopped")
}
