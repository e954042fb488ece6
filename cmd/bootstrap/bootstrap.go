package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salon-booking-engine/config"
	deliveryHttp "salon-booking-engine/internal/delivery/http"
	"salon-booking-engine/internal/delivery/http/handler"
	"salon-booking-engine/internal/delivery/http/middleware"
	"salon-booking-engine/internal/domain/entity"
	domainRepository "salon-booking-engine/internal/domain/repository"
	"salon-booking-engine/internal/infrastructure/cache"
	"salon-booking-engine/internal/infrastructure/database"
	"salon-booking-engine/internal/repository"
	"salon-booking-engine/internal/service"
	"salon-booking-engine/internal/usecase"
	"salon-booking-engine/pkg/jwt"
	"salon-booking-engine/pkg/validator"

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
	Detectors   []*service.ChangeDetector
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

	// Apply schema migrations before opening the pool. The schema carries
	// the exclusion constraint the booking path relies on.
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, err
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	if err := app.initialize(); err != nil {
		return nil, err
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initialize wires repositories, usecases, handlers and the per-business
// change detectors, then builds the HTTP server.
func (app *App) initialize() error {
	cfg := app.Config
	db := app.DB

	// Initialize JWT verifier
	jwtService := jwt.NewJWTService(cfg.Auth)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	businessRepo := repository.NewBusinessRepository()
	professionalRepo := repository.NewProfessionalRepository()
	serviceRepo := repository.NewServiceRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	eventRepo := repository.NewAppointmentEventRepository()

	// Initialize usecases
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, businessRepo, professionalRepo, serviceRepo, appointmentRepo)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, professionalRepo, serviceRepo, appointmentRepo)
	professionalUsecase := usecase.NewProfessionalUsecase(db, log, businessRepo, professionalRepo)
	serviceUsecase := usecase.NewServiceUsecase(db, log, businessRepo, serviceRepo)
	reportUsecase := usecase.NewReportUsecase(db, log, app.RedisClient, cfg.Report, businessRepo, professionalRepo, serviceRepo, appointmentRepo)
	eventUsecase := usecase.NewEventUsecase(db, log, eventRepo)

	// Initialize handlers
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase, customValidator)
	professionalHandler := handler.NewProfessionalHandler(professionalUsecase, customValidator)
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase)
	eventHandler := handler.NewEventHandler(eventUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		appointmentHandler,
		availabilityHandler,
		professionalHandler,
		serviceHandler,
		reportHandler,
		eventHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// One change detector per business, feeding the event trail
	if err := app.startDetectors(log, businessRepo, appointmentRepo, eventRepo); err != nil {
		return err
	}

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	app.Server = &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return nil
}

// startDetectors launches one change detector per business. Each is
// primed with the current appointment window so a restart does not
// replay existing appointments as fresh creations.
func (app *App) startDetectors(
	log *logrus.Logger,
	businessRepo domainRepository.BusinessRepository,
	appointmentRepo domainRepository.AppointmentRepository,
	eventRepo domainRepository.AppointmentEventRepository,
) error {
	businesses, err := businessRepo.FindAll(app.DB)
	if err != nil {
		return fmt.Errorf("failed to list businesses: %w", err)
	}

	recorder := service.NewEventRecorder(app.DB, log, eventRepo)
	cfg := app.Config.Detector
	today := time.Now().UTC().Truncate(24 * time.Hour)

	for _, business := range businesses {
		filter := &entity.AppointmentFilter{
			StartAt: today.AddDate(0, 0, -cfg.WindowDays).Format("2006-01-02"),
			EndAt:   today.AddDate(0, 0, cfg.WindowDays).Format("2006-01-02"),
		}
		current, err := appointmentRepo.FindByBusiness(app.DB, business.ID, filter)
		if err != nil {
			return fmt.Errorf("failed to prime change detector for business %s: %w", business.ID, err)
		}

		detector := service.NewChangeDetector(
			app.DB,
			log,
			appointmentRepo,
			recorder,
			business.ID,
			cfg.Interval,
			cfg.WindowDays,
			service.SnapshotFromAppointments(current),
		)
		detector.Start()
		app.Detectors = append(app.Detectors, detector)
	}

	logrus.Infof("Started %d change detectors", len(app.Detectors))
	return nil
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

	// Stop detectors before closing the pool they poll
	for _, detector := range app.Detectors {
		detector.Stop()
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
