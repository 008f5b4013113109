package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/usecase"
	authUseCase "github.com/yozi-budget/yozi-backend/internal/domain/usecase/auth"
	budgetUseCase "github.com/yozi-budget/yozi-backend/internal/domain/usecase/budget"
	categoryUseCase "github.com/yozi-budget/yozi-backend/internal/domain/usecase/category"
	transactionUseCase "github.com/yozi-budget/yozi-backend/internal/domain/usecase/transaction"

	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/handler"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/middleware"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/routes"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/database"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/database/migration"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/logger"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/oauth"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/repository"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/session"
	timeProvider "github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/time"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	tp := timeProvider.NewRealTimeProvider(loc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger, tp); err != nil {
		appLogger.Error("Server stopped with error", coreport.ErrorFields(err, nil))
		_ = appLogger.Flush()
		os.Exit(1)
	}

	appLogger.Info("Server exited gracefully", nil)
}

func run(ctx context.Context, cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) error {
	// Prometheus collectors are only registered when metrics are enabled
	var (
		registerer prometheus.Registerer
		gatherer   prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		registerer, gatherer = registry, registry
	}

	// Connect to the database
	dbManager := database.NewManager(
		database.CreateConfigFromViperConfig(cfg),
		appLogger,
		tp,
		database.NewMetrics(registerer),
	)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", coreport.ErrorFields(err, nil))
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Initialize repositories
	db := dbManager.DB()
	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	transactionRepo := repository.NewTransactionRepository(db, appLogger)
	budgetRepo := repository.NewBudgetRepository(db, appLogger)
	uow := dbManager.CreateUnitOfWork()

	// Initialize use cases
	categories := categoryUseCase.NewCategoryUseCase(categoryRepo, appLogger)
	if cfg.Category.SeedOnStartup {
		if err := migration.SeedCategories(ctx, categories, appLogger); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
	}

	tokens, err := session.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiration, tp)
	if err != nil {
		return fmt.Errorf("create token issuer: %w", err)
	}

	providers := oauth.ProvidersFromConfig(cfg.OAuth, &http.Client{Timeout: 10 * time.Second})
	if len(providers) == 0 {
		appLogger.Warn("No OAuth provider configured, social login is disabled", nil)
	}

	auth := authUseCase.NewAuthUseCase(providers, tokens, uow, userRepo, tp, appLogger)
	transactions := transactionUseCase.NewTransactionService(uow, transactionRepo, userRepo, categoryRepo, tp, appLogger)
	budgets := budgetUseCase.NewBudgetUseCase(budgetRepo, transactionRepo, categoryRepo, habitScorer(cfg.Analysis), tp, appLogger,
		budgetUseCase.WithPriorMonthSummary(cfg.Analysis.PriorMonthSummary))

	// Initialize API handlers
	handlers := routes.Handlers{
		Budget:      handler.NewBudgetHandler(budgets, tp, appLogger),
		Transaction: handler.NewTransactionHandler(transactions, appLogger),
		Category:    handler.NewCategoryHandler(categories, appLogger),
		Auth: handler.NewAuthHandler(auth, handler.RedirectConfig{
			SuccessURL:   cfg.Auth.SuccessRedirectURL,
			ErrorURL:     cfg.Auth.ErrorRedirectURL,
			SecureCookie: cfg.Auth.StateCookieSecure,
		}, appLogger),
		Health: handler.NewHealthHandler(dbManager, appLogger),
	}

	opts := routes.Options{
		CORSOrigins: cfg.CORS.AllowOrigins,
		Gatherer:    gatherer,
		Profiling:   cfg.Profiling.Enabled,
	}
	if registerer != nil {
		opts.HTTPMetrics = middleware.NewHTTPMetrics(registerer)
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, opts)
	routes.SetupRoutes(router, handlers, middleware.Auth(auth, appLogger), opts)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Starting server", map[string]any{
			"addr":      server.Addr,
			"env":       cfg.Environment,
			"timezone":  tp.Location().String(),
			"providers": len(providers),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// habitScorer picks the habit score implementation for the analysis settings
func habitScorer(cfg config.AnalysisConfig) usecase.HabitScorer {
	scorer := budgetUseCase.NewPlaceholderHabitScorer()
	if cfg.RecordedDays {
		return budgetUseCase.NewRecordedDaysScorer(scorer)
	}
	return scorer
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	switch cfg.Database.Driver {
	case database.DriverSQLite:
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (file path or :memory:)")
		}
	case database.DriverPostgres:
		required := []struct{ key, value string }{
			{"database.host (or YOZI_DB_HOST environment variable)", cfg.Database.Host},
			{"database.port (or YOZI_DB_PORT environment variable)", cfg.Database.Port},
			{"database.username (or YOZI_DB_USERNAME environment variable)", cfg.Database.Username},
			{"database.database (or YOZI_DB_NAME environment variable)", cfg.Database.Database},
		}
		for _, r := range required {
			if r.value == "" {
				missingConfigs = append(missingConfigs, r.key)
			}
		}
	default:
		return fmt.Errorf("invalid database.driver value: %q, must be %s or %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate session configuration
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or YOZI_JWT_SECRET environment variable)")
	}

	if cfg.Auth.JWTExpiration == 0 {
		missingConfigs = append(missingConfigs, "auth.jwtExpiration")
	}

	if cfg.Auth.SuccessRedirectURL == "" {
		missingConfigs = append(missingConfigs, "auth.successRedirectUrl")
	}

	if cfg.Auth.ErrorRedirectURL == "" {
		missingConfigs = append(missingConfigs, "auth.errorRedirectUrl")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		if cfg.Database.Driver == database.DriverPostgres {
			switch strings.ToLower(cfg.Database.SSLMode) {
			case "require", "verify-ca", "verify-full":
			default:
				warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
			}
		}

		if cfg.Database.Driver == database.DriverSQLite {
			warnings = append(warnings, "database.driver sqlite is meant for local runs")
		}

		if !cfg.Auth.StateCookieSecure {
			warnings = append(warnings, "auth.stateCookieSecure should be true in production")
		}

		if cfg.Profiling.Enabled {
			warnings = append(warnings, "profiling.enabled exposes /debug/pprof")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
