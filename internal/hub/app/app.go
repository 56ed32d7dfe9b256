package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"userhub-go/internal/hub/domain"
	httpapi "userhub-go/internal/hub/http"
	"userhub-go/internal/hub/service"
	"userhub-go/internal/hub/store"
	"userhub-go/internal/hub/store/drivers/sqlite"
	"userhub-go/pkg/cryptox"
	"userhub-go/pkg/idx"
	"userhub-go/pkg/jwtx"
	"userhub-go/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the hub emulator with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	signer *jwtx.Signer

	// Services
	sessionService    *service.SessionService
	exchangeService   *service.ExchangeService
	invitationService *service.InvitationService

	// HTTP server
	server *nethttp.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "hubd",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	signer, err := jwtx.NewSigner(cfg.Issuer)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize session signer: %w", err)
	}
	app.signer = signer

	app.initServices()
	app.initHTTP()

	if err := app.seedUser(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("hub emulator starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down hub emulator...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("hub emulator stopped")
	return nil
}

// Handler exposes the routed handler so tests can drive the emulator
// in-process without binding a port.
func (app *Application) Handler() nethttp.Handler { return app.router }

// Close releases resources without going through the HTTP shutdown path.
// Intended for tests that never called Run.
func (app *Application) Close() error { return app.db.Close() }

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	providers := make(map[string]bool, len(app.cfg.AllowedProviders))
	for _, p := range app.cfg.AllowedProviders {
		providers[p] = true
	}

	app.sessionService = &service.SessionService{
		Store:  app.db,
		Signer: app.signer,
		TTL:    app.cfg.SessionTTL,
	}
	app.exchangeService = &service.ExchangeService{
		Store:     app.db,
		Signer:    app.signer,
		TTL:       app.cfg.SessionTTL,
		Providers: providers,
	}
	app.invitationService = &service.InvitationService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.SessionService = app.sessionService
	router.ExchangeService = app.exchangeService
	router.InvitationService = app.invitationService
	router.ApplyRoutes()

	app.router = router

	app.server = &nethttp.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// seedUser creates the configured password user when the database doesn't
// already have it. No-op when seeding is not configured.
func (app *Application) seedUser(ctx context.Context) error {
	if app.cfg.SeedUsername == "" || app.cfg.SeedPassword == "" {
		return nil
	}

	_, err := app.db.Users().GetUserByUsername(ctx, app.cfg.SeedUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to check seed user: %w", err)
	}

	hash, err := cryptox.HashPassword(app.cfg.SeedPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     app.cfg.SeedUsername,
		PasswordHash: hash,
	}
	if err := app.db.Users().CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create seed user: %w", err)
	}

	app.logger.Info("seed user created", "username", user.Username)
	return nil
}
