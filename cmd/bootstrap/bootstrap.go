package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estatehub/config"
	deliveryHttp "estatehub/internal/delivery/http"
	"estatehub/internal/delivery/http/handler"
	"estatehub/internal/delivery/http/middleware"
	"estatehub/internal/infrastructure/cache"
	"estatehub/internal/infrastructure/database"
	"estatehub/internal/infrastructure/payment"
	"estatehub/internal/metrics"
	"estatehub/internal/repository"
	"estatehub/internal/service"
	"estatehub/internal/usecase"
	"estatehub/pkg/jwt"
	"estatehub/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply pending schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Register Prometheus collectors
	metrics.Register()

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	propertyRepo := repository.NewPropertyRepository()
	bookingRepo := repository.NewBookingRepository()
	paymentRepo := repository.NewPaymentRepository()
	notificationRepo := repository.NewNotificationRepository()
	reviewRepo := repository.NewReviewRepository()
	wishlistRepo := repository.NewWishlistRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize shared services
	paystackClient := payment.NewPaystackClient(cfg.Paystack)
	mailer := service.NewMailer(cfg.SMTP, log)
	notifier := service.NewNotifier(db, log, notificationRepo, redisClient)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, notifier, mailer)
	propertyUsecase := usecase.NewPropertyUsecase(db, log, propertyRepo, notifier)
	bookingUsecase := usecase.NewBookingUsecase(db, log, bookingRepo, propertyRepo, notifier, mailer)
	paymentUsecase := usecase.NewPaymentUsecase(db, log, cfg, paymentRepo, bookingRepo, propertyRepo, paystackClient, notifier, mailer)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, notificationRepo, notifier)
	reviewUsecase := usecase.NewReviewUsecase(db, log, reviewRepo, bookingRepo, propertyRepo)
	wishlistUsecase := usecase.NewWishlistUsecase(db, log, wishlistRepo, propertyRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	propertyHandler := handler.NewPropertyHandler(propertyUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase)
	reviewHandler := handler.NewReviewHandler(reviewUsecase, customValidator)
	wishlistHandler := handler.NewWishlistHandler(wishlistUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		propertyHandler,
		bookingHandler,
		paymentHandler,
		notificationHandler,
		reviewHandler,
		wishlistHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
