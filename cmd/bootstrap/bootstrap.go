package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legal-consult-api/config"
	deliveryHttp "legal-consult-api/internal/delivery/http"
	"legal-consult-api/internal/delivery/http/handler"
	"legal-consult-api/internal/delivery/http/middleware"
	"legal-consult-api/internal/infrastructure/cache"
	"legal-consult-api/internal/infrastructure/database"
	"legal-consult-api/internal/infrastructure/directory"
	"legal-consult-api/internal/repository"
	"legal-consult-api/internal/service"
	"legal-consult-api/internal/usecase"
	"legal-consult-api/pkg/jwt"
	"legal-consult-api/pkg/validator"

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

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

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

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	lawyerRepo := repository.NewLawyerProfileRepository()
	consultationRepo := repository.NewConsultationRepository()
	experienceRepo := repository.NewWorkExperienceRepository()
	educationRepo := repository.NewEducationRepository()
	referenceRepo := repository.NewReferenceOptionRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize infrastructure
	wizardStore := cache.NewWizardStore(redisClient, cfg.Wizard.SessionTTL)
	directoryClient := directory.NewClient(cfg.Directory.BaseURL, cfg.Directory.Timeout, cfg.Directory.MaxRetries, cfg.Directory.BackoffBase, log)

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, lawyerRepo, jwtService, redisClient)
	lawyerUsecase := usecase.NewLawyerUsecase(db, log, lawyerRepo)
	consultationUsecase := usecase.NewConsultationUsecase(db, log, consultationRepo, auditService)
	bookingUsecase := usecase.NewBookingWizardUsecase(db, log, wizardStore, lawyerRepo, consultationRepo, auditService)
	profileUsecase := usecase.NewProfileWizardUsecase(db, log, wizardStore, lawyerRepo, experienceRepo, educationRepo, auditService)
	referenceUsecase := usecase.NewReferenceDataUsecase(db, log, directoryClient, referenceRepo, redisClient)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Warm the reference-data cache in the background
	stagger := cfg.Directory.WarmStagger
	if stagger <= 0 {
		stagger = 2 * time.Second
	}
	referenceUsecase.WarmCache(stagger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	lawyerHandler := handler.NewLawyerHandler(lawyerUsecase, bookingUsecase)
	consultationHandler := handler.NewConsultationHandler(consultationUsecase)
	bookingHandler := handler.NewBookingWizardHandler(bookingUsecase, customValidator)
	profileHandler := handler.NewProfileWizardHandler(profileUsecase, customValidator)
	referenceDataHandler := handler.NewReferenceDataHandler(referenceUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, lawyerHandler, consultationHandler, bookingHandler, profileHandler, referenceDataHandler, auditLogHandler, authMiddleware, corsMiddleware)
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
