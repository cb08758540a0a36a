package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskwell/taskwell-api/internal/api/middleware"
	"github.com/taskwell/taskwell-api/internal/config"
	"github.com/taskwell/taskwell-api/internal/platform/postgres"
	"github.com/taskwell/taskwell-api/internal/service"
	"github.com/taskwell/taskwell-api/internal/service/auth"
	"github.com/taskwell/taskwell-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// wiring and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	db     *sql.DB

	// Stores (interfaces so tests can substitute in-memory fakes)
	userStore store.UserStore
	taskStore store.TaskStore

	// Services
	userService    *service.UserService
	jwtService     auth.JWTService
	passwordHasher *auth.BcryptHasher
	rateLimiter    *middleware.RateLimiter
}

// newApplication constructs every component the server needs: database
// connection, migrations, stores, token service and rate limiter. All
// dependencies are passed explicitly; nothing is package-global.
func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := postgres.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("database migrations applied")

	revocations, err := auth.NewRevocationList()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create revocation list: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth, revocations)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	userStore := postgres.NewUserStore(db)
	passwordHasher := auth.NewBcryptHasher()

	return &application{
		config:         cfg,
		db:             db,
		userStore:      userStore,
		taskStore:      postgres.NewTaskStore(db),
		userService:    service.NewUserService(db, userStore, passwordHasher, slog.Default()),
		jwtService:     jwtService,
		passwordHasher: passwordHasher,
		rateLimiter:    rateLimiter,
	}, nil
}

// Close releases the application's resources.
func (app *application) Close() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
	}
}
