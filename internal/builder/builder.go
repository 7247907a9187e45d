package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/n46/deckgen/internal/api"
	catalogapi "github.com/n46/deckgen/internal/api/catalog"
	generationapi "github.com/n46/deckgen/internal/api/generation"
	presentationapi "github.com/n46/deckgen/internal/api/presentation"
	"github.com/n46/deckgen/internal/config"
	"github.com/n46/deckgen/internal/integration/gamma"
	"github.com/n46/deckgen/internal/pkg/formatter"
	"github.com/n46/deckgen/internal/pkg/validator"
	"github.com/n46/deckgen/internal/repository"
	"github.com/n46/deckgen/internal/usecase/generation"
	"github.com/n46/deckgen/internal/usecase/presentation"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	presentationRepo := repository.NewPresentationPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize external service connectors (with mock support)
	var gammaConnector generation.GammaConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connector for Gamma")
		gammaConnector = gamma.NewMockConnector(logger)
	} else {
		logger.Info("Using real connector for Gamma")
		gammaConnector = gamma.NewConnector(cfg.GammaConnectorCfg, logger)
	}

	// Initialize validators
	presentationValidator := validator.NewValidator()
	logger.Info("Validators initialized")

	// Initialize formatters and progress tracking
	formatterFactory := formatter.NewFactory()
	progressStore := generation.NewProgressStore(cfg.ProgressTTL)

	// Initialize use cases
	presentationUC := presentation.NewUsecase(
		presentationRepo,
		presentationValidator,
		formatterFactory,
		logger,
	)

	generationUC := generation.NewUsecase(
		presentationRepo,
		gammaConnector,
		presentationValidator,
		progressStore,
		cfg.ThemeCacheTTL,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	presentationHandler := presentationapi.NewHandler(presentationUC)
	generationHandler := generationapi.NewHandler(generationUC)
	catalogHandler := catalogapi.NewHandler()
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(presentationHandler, generationHandler, catalogHandler, cfg.CORSAllowedOrigins, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
