package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frontdesk/config"
	"frontdesk/cron"
	"frontdesk/database"
	"frontdesk/handlers"
	"frontdesk/middleware"
	"frontdesk/routes"
	"frontdesk/services/booking"
	"frontdesk/services/counter"
	"frontdesk/services/inventory"
	"frontdesk/services/pricing"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := database.OpenStore(startCtx, cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open %s store: %v", cfg.StoreBackend, err)
	}
	logger.Info("Store connected", zap.String("backend", cfg.StoreBackend))
	if cfg.StoreBackend == config.BackendMemory {
		logger.Warn("In-memory store selected; bookings and counters are lost on restart")
	}

	// services.
	roomInventory := inventory.NewRoomInventory(store, inventory.Layout{
		TotalRooms:      cfg.TotalRooms,
		FirstRoomNumber: cfg.FirstRoomNumber,
	}, logger.Named("inventory"))
	dailyTracker := counter.NewDailyTracker(store, loc, logger.Named("counter"))

	bookingService := booking.NewBookingService(
		roomInventory,
		dailyTracker,
		booking.NewKVSessionStore(store, cfg.SessionTTL),
		booking.NewPaymentHandler(logger.Named("payment")),
		pricing.NewRates(cfg.PriceAC, cfg.PriceNonAC, cfg.PriceBed, cfg.PricePillow, cfg.TaxPercent),
		booking.Presentation{
			HotelName:      cfg.HotelName,
			CurrencySymbol: cfg.CurrencySymbol,
			IncludedItems:  cfg.Amenities(),
		},
		logger.Named("booking"),
	)
	if err := bookingService.Bootstrap(startCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to initialize front desk records: %v", err)
	}
	cancelStart()

	worker, err := cron.NewWorker(loc, logger.Named("cron"), func(ctx context.Context) error {
		_, err := dailyTracker.EnsureToday(ctx)
		return err
	}, cfg.StoreBackend, store)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to schedule background jobs: %v", err)
	}
	worker.Start()

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewBookingHandler(bookingService, loc),
		handlers.NewHealthHandler(cfg.StoreBackend, store),
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting %s front desk on %s...", cfg.HotelName, srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Stop(ctx)
	if err := store.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close store: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
