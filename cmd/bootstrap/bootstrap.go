package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-appointment-service/config"
	deliveryHttp "health-appointment-service/internal/delivery/http"
	"health-appointment-service/internal/delivery/http/handler"
	"health-appointment-service/internal/delivery/http/middleware"
	"health-appointment-service/internal/delivery/tool"
	"health-appointment-service/internal/infrastructure/cache"
	"health-appointment-service/internal/infrastructure/database"
	"health-appointment-service/internal/repository"
	"health-appointment-service/internal/service"
	"health-appointment-service/internal/usecase"
	"health-appointment-service/pkg/jwt"
	"health-appointment-service/pkg/validator"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DirectoryDB *gorm.DB
	UserDB      *gorm.DB
	RedisClient *redis.Client
	Toolset     *tool.Toolset
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

	// Open the directory/ledger store
	directoryDB, err := database.NewDirectoryConnection(cfg.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory database: %w", err)
	}
	app.DirectoryDB = directoryDB

	// Open the credential/profile store
	userDB, err := database.NewUserConnection(cfg.UserDB)
	if err != nil {
		return nil, fmt.Errorf("failed to open user database: %w", err)
	}
	app.UserDB = userDB

	// Optional Redis search cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	log := logrus.StandardLogger()

	// Repositories
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	userRepo := repository.NewUserRepository()

	// Seed the directory if it is empty
	seeder := service.NewDirectorySeeder(log, gofakeit.New(cfg.Directory.Seed), doctorRepo)
	if err := seeder.Populate(directoryDB, cfg.Directory.SeedCount); err != nil {
		return nil, fmt.Errorf("failed to seed directory: %w", err)
	}

	// Services
	searchCache := service.NewSearchCache(redisClient, cfg.Redis.SearchCacheTTL, log)
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Usecases
	searchUsecase := usecase.NewDoctorSearchUsecase(directoryDB, log, doctorRepo, searchCache)
	appointmentUsecase := usecase.NewAppointmentUsecase(directoryDB, log, doctorRepo, appointmentRepo)
	authUsecase := usecase.NewAuthUsecase(userDB, log, userRepo, jwtService)

	// Tool contract for the orchestration layer
	app.Toolset = tool.NewToolset(log, searchUsecase, appointmentUsecase)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(searchUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, authUsecase, customValidator)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Router
	router := deliveryHttp.NewRouter(authHandler, doctorHandler, appointmentHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	app.Server = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: httpRouter,
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (databases, redis)
func (app *App) Close() {
	for _, db := range []*gorm.DB{app.DirectoryDB, app.UserDB} {
		if db == nil {
			continue
		}
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
