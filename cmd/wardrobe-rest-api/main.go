// cmd/wardrobe-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/CharlieZimmermann/wardrobe-app/internal/api/rest/v1"
	"github.com/CharlieZimmermann/wardrobe-app/internal/app"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/profiles"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/weather"
	"github.com/CharlieZimmermann/wardrobe-app/internal/infrastructure/auth"
	"github.com/CharlieZimmermann/wardrobe-app/internal/infrastructure/connector"
	"github.com/CharlieZimmermann/wardrobe-app/internal/infrastructure/persistence"
	"github.com/CharlieZimmermann/wardrobe-app/internal/infrastructure/stylist"
	"github.com/CharlieZimmermann/wardrobe-app/internal/infrastructure/weatherapi"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/config"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/telemetry"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	ctx := context.Background()
	shutdownTracing, err := telemetry.Setup(ctx, &restConfig.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracer shutdown failed", "error", err)
		}
	}()

	// Initialize application dependencies
	deps, err := initializeDependencies(ctx, restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	cache    *weatherapi.RedisCache
	services *v1.Services
}

func (d *appDependencies) close(log logger.Logger) {
	if d.cache != nil {
		if err := d.cache.Close(); err != nil {
			log.Warn("closing redis failed", "error", err)
		}
	}
	if err := persistence.CloseDB(d.db); err != nil {
		log.Warn("closing database failed", "error", err)
	}
}

// initializeDependencies sets up all application components
func initializeDependencies(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	itemRepo, err := persistence.NewGormClothingItemRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create clothing item repository: %w", err)
	}

	profileRepo, err := persistence.NewGormProfileRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}

	accountRepo, err := persistence.NewGormAccountRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account repository: %w", err)
	}

	// Initialize connectors
	photoConnector, err := connector.NewPhotoConnector(ctx, &cfg.PhotoStorage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize photo connector: %w", err)
	}

	weatherClient := weatherapi.NewOpenWeatherClient(&cfg.Weather, &http.Client{Timeout: cfg.Weather.Timeout}, log)
	stylistClient := stylist.NewAnthropicStylist(&cfg.Stylist, &http.Client{Timeout: cfg.Stylist.Timeout}, log)

	cache := initializeWeatherCache(ctx, cfg, log)

	tokenService, err := auth.NewJWTTokenService(&cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	if !tokenService.IsConfigured() {
		log.Warn("No JWT secret configured; protected routes will answer 500 until auth.jwt_secret is set")
	}

	// Initialize services
	services, err := initializeApplicationServices(cfg, db, itemRepo, profileRepo, accountRepo, photoConnector, weatherClient, cache, stylistClient, tokenService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{db: db, cache: cache, services: services}, nil
}

// initializeWeatherCache connects to Redis when enabled. Failures leave the cache off.
func initializeWeatherCache(ctx context.Context, cfg *config.RestConfig, log logger.Logger) *weatherapi.RedisCache {
	if !cfg.Redis.Enabled {
		return nil
	}

	cache, err := weatherapi.NewRedisCache(ctx, &cfg.Redis)
	if err != nil {
		log.Warn("Weather cache disabled", "addr", cfg.Redis.Addr, "error", err)
		return nil
	}
	log.Info("Weather cache connected", "addr", cfg.Redis.Addr)
	return cache
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	db *gorm.DB,
	itemRepo clothing.ClothingItemRepository,
	profileRepo profiles.ProfileRepository,
	accountRepo accounts.AccountRepository,
	photoConnector clothing.PhotoConnector,
	weatherClient *weatherapi.OpenWeatherClient,
	cache *weatherapi.RedisCache,
	stylistClient *stylist.AnthropicStylist,
	tokenService *auth.JWTTokenService,
	log logger.Logger,
) (*v1.Services, error) {
	uploadService, err := app.NewClothingUploadService(photoConnector, itemRepo, cfg.PhotoStorage.MaxUploadBytes, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create clothing upload service: %w", err)
	}

	metadataService, err := app.NewClothingMetadataService(itemRepo, photoConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create clothing metadata service: %w", err)
	}

	photoService, err := app.NewClothingPhotoService(itemRepo, photoConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create clothing photo service: %w", err)
	}

	profileService, err := app.NewProfileService(profileRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}

	// A nil *RedisCache must not become a non-nil interface
	var weatherCache weather.Cache
	if cache != nil {
		weatherCache = cache
	}
	weatherService, err := app.NewWeatherService(weatherClient, weatherCache, cfg.Weather.CacheTTL, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather service: %w", err)
	}

	outfitService, err := app.NewOutfitService(itemRepo, profileRepo, weatherService, stylistClient, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create outfit service: %w", err)
	}

	accountService, err := app.NewAccountService(accountRepo, tokenService, auth.NewBcryptHasher(0), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &v1.Services{
		ClothingUpload:   uploadService,
		ClothingMetadata: metadataService,
		ClothingPhoto:    photoService,
		Profile:          profileService,
		Weather:          weatherService,
		Outfit:           outfitService,
		Account:          accountService,
		Tokens:           tokenService,
		MaxUploadBytes:   cfg.PhotoStorage.MaxUploadBytes,
		CheckDatabase: func(ctx context.Context) error {
			return persistence.Ping(ctx, db)
		},
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Telemetry.TracingEnabled {
		r.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	r.Use(v1.Metrics(), v1.RequestLogger(log))

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: !allowsAnyOrigin(cfg.AllowOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.services, log)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// Browsers refuse credentialed responses that carry a wildcard origin
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
