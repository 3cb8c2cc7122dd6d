package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/mikosha12/Hulu-beand-mern-b/config"
	"github.com/mikosha12/Hulu-beand-mern-b/jobs"
	"github.com/mikosha12/Hulu-beand-mern-b/routes"
	"github.com/mikosha12/Hulu-beand-mern-b/services"
	"github.com/mikosha12/Hulu-beand-mern-b/services/logger"
	"github.com/mikosha12/Hulu-beand-mern-b/services/metrics"
	"github.com/mikosha12/Hulu-beand-mern-b/services/notification"
)

// @title       Hulu hotel booking API
// @version     1.0
// @BasePath    /
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	cfg := config.Load()

	appLogger, err := logger.New(cfg.Env, logger.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET_KEY must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := config.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Database.Driver, err)
	}
	defer closeStore()

	rdb, err := config.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	if rdb == nil {
		appLogger.Info("REDIS_ADDR not set, search cache disabled")
	} else {
		defer rdb.Close()
	}
	cache := services.NewCache(rdb)

	cld, err := config.ConnectCloudinary(cfg.Services.CloudinaryURL)
	if err != nil {
		log.Fatalf("Failed to configure Cloudinary: %v", err)
	}

	router, m, c := config.InitApp(cfg, appLogger)
	defer m.Close()
	push := notification.NewMelodyService(m)

	var uploader services.MediaUploader
	if cld != nil {
		uploader = services.NewCloudinaryUploader(cld)
	}
	var geocoder services.Geocoder
	if cfg.Services.GoongAPIKey != "" {
		geocoder = services.NewGoongGeocoder(cfg.Services.GoongAPIKey, cfg.Services.GoongRatePerSec)
	}
	var gateway services.PaymentGateway
	if cfg.Services.StripeSecretKey != "" {
		gateway = services.NewStripeGateway(cfg.Services.StripeSecretKey, cfg.Services.Currency)
	}

	tokens := services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := services.NewAuthService(services.AuthServiceOptions{
		Users:          store.Users,
		Tokens:         tokens,
		GoogleClientID: cfg.Auth.GoogleClientID,
		Logger:         appLogger,
	})
	notificationService := services.NewNotificationService(services.NotificationServiceOptions{
		Users:         store.Users,
		Notifications: store.Notifications,
		Push:          push,
		Logger:        appLogger,
	})
	transactionService := services.NewTransactionService(services.TransactionServiceOptions{
		Transactions:   store.Transactions,
		CommissionRate: cfg.Policy.CommissionRate,
		Logger:         appLogger,
	})
	svc := routes.Services{
		Auth:  authService,
		Users: services.NewUserService(services.UserServiceOptions{Users: store.Users, Uploader: uploader, Logger: appLogger}),
		Hotels: services.NewHotelService(services.HotelServiceOptions{
			Hotels:         store.Hotels,
			Notifier:       notificationService,
			Uploader:       uploader,
			Geocoder:       geocoder,
			Cache:          cache,
			Logger:         appLogger,
			StrictApproval: cfg.Policy.StrictApproval,
		}),
		Search: services.NewSearchService(services.SearchServiceOptions{
			Hotels:       store.Hotels,
			Cache:        cache,
			CacheTTL:     cfg.Redis.CacheTTL,
			ApprovedOnly: cfg.Policy.SearchApprovedOnly,
			Logger:       appLogger,
		}),
		Notifications: notificationService,
		Transactions:  transactionService,
		Bookings: services.NewBookingService(services.BookingServiceOptions{
			Hotels:       store.Hotels,
			Gateway:      gateway,
			Transactions: transactionService,
			Cache:        cache,
			Logger:       appLogger,
		}),
	}

	reporter := services.NewAdminReporter(transactionService, store.Hotels, push, appLogger)
	if err := jobs.InitCronJobs(c, reporter, appLogger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	config.InitWebSocket(router, m, authService, appLogger)

	routes.SetupRoutes(router, svc, routes.Options{
		RateLimitPerSec: cfg.Server.RateLimitPerSec,
		RateLimitBurst:  cfg.Server.RateLimitBurst,
		TokenTTL:        cfg.Auth.TokenTTL,
		SecureCookie:    cfg.Auth.SecureCookie,
		Metrics:         metrics.Handler(metrics.InitRegistry()),
	})

	srv := &http.Server{Addr: ":" + cfg.Server.Port, Handler: router}
	go func() {
		appLogger.Info("Server starting on port %s (%s backend)", cfg.Server.Port, cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown: %v", err)
	}
}
