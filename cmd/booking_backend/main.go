package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
	"github.com/deskbook/desk_booking_app/internal/cache"
	"github.com/deskbook/desk_booking_app/internal/core/domain"
	portsrepo "github.com/deskbook/desk_booking_app/internal/core/ports/repositories"
	portssvc "github.com/deskbook/desk_booking_app/internal/core/ports/services"
	"github.com/deskbook/desk_booking_app/internal/core/services"
	"github.com/deskbook/desk_booking_app/internal/handlers"
	"github.com/deskbook/desk_booking_app/internal/middleware"
	"github.com/deskbook/desk_booking_app/internal/repositories/database/pgsql"
	"github.com/deskbook/desk_booking_app/internal/repositories/memory"
	"github.com/deskbook/desk_booking_app/pkg/config"
	"github.com/deskbook/desk_booking_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limiterstore "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Desk Booking API
// @version 1.0
// @description Office desk booking service: check an access code, view available desks per date, reserve one.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	catalog := memory.NewCatalog(time.Now(), memory.DefaultPlaceNames())

	repos, cleanup, err := buildRepositories(logger, cfg, catalog)
	if err != nil {
		logger.Error("Failed to build repositories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	var availabilityCache services.AvailabilityCache
	if cfg.RedisAddr != "" {
		availabilityCache = cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.AvailabilityCacheTTL)
		logger.Info("Availability cache enabled", slog.String("redis_addr", cfg.RedisAddr))
	}

	serviceContainer := &portssvc.ServiceContainer{
		Booking: services.NewBookingService(repos.LedgerRepo, repos.CatalogRepo, availabilityCache),
		User:    services.NewUserService(repos.UserRepo),
	}

	if cfg.SeedDemoBookings {
		seedDemoBookings(logger, catalog, repos.LedgerRepo)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limiterstore.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRepositories selects the ledger/user backend: postgres when
// PGSQL_URL is set, the in-memory fixtures otherwise. The returned
// cleanup releases the pool in pg mode.
func buildRepositories(logger *slog.Logger, cfg *config.Config, catalog portsrepo.CatalogReader) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.DatabaseURL == "" {
		repos := portsrepo.RepositoryProvider{
			LedgerRepo:  memory.NewLedger(),
			CatalogRepo: catalog,
			UserRepo:    memory.NewUserDirectory(memory.DefaultUsers()...),
		}
		return repos, func() {}, nil
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		database.ClosePgxPool(dbPool)
		return portsrepo.RepositoryProvider{}, nil, err
	}

	repos := pgsql.NewRepositoryProvider(dbPool, catalog)
	return repos, func() { database.ClosePgxPool(dbPool) }, nil
}

// runMigrations applies all pending migrations from the migrations dir.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	// Open a temporary standard sql.DB connection for migrations,
	// using the pgx stdlib driver to stay compatible with the pool.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	logger.Info("Database migrations applied.")
	return nil
}

// seedDemoBookings books the first place of the first three non-empty
// days for the first fixture user, mirroring the demo dataset.
func seedDemoBookings(logger *slog.Logger, catalog portsrepo.CatalogReader, ledger portsrepo.LedgerRepositoryFacade) {
	ctx := context.Background()

	slots, err := catalog.ListDateSlots(ctx)
	if err != nil {
		logger.Warn("Failed to seed demo bookings", slog.String("error", err.Error()))
		return
	}

	demoUser := memory.DefaultUsers()[0]
	for i, slot := range slots {
		if i >= 3 || len(slot.Places) == 0 {
			continue
		}
		booking := &domain.Booking{Date: slot.Date, Place: slot.Places[0], UserID: demoUser.Code}
		if err := ledger.AppendBooking(ctx, booking); err != nil && !errors.Is(err, apperrors.ErrAlreadyBooked) {
			logger.Warn("Failed to seed demo booking", slog.String("date", domain.DateKey(slot.Date)), slog.String("error", err.Error()))
		}
	}
	logger.Info("Demo bookings seeded")
}
