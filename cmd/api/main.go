// Package main is the entry point for the firm site server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/pkordes/firm-site/internal/catalog"
	"github.com/pkordes/firm-site/internal/config"
	"github.com/pkordes/firm-site/internal/domain"
	"github.com/pkordes/firm-site/internal/handler"
	"github.com/pkordes/firm-site/internal/middleware"
	"github.com/pkordes/firm-site/internal/naming"
	"github.com/pkordes/firm-site/internal/pages"
	"github.com/pkordes/firm-site/internal/render"
	"github.com/pkordes/firm-site/internal/repo"
	"github.com/pkordes/firm-site/internal/service"
	"github.com/pkordes/firm-site/migrations"
	"github.com/pkordes/firm-site/openapi"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Catalog ----------------------------------------------------------
	// A malformed catalog is fatal: serving with a partial one would shrink
	// the prerender list without anyone noticing.
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		slog.Error("failed to load priority catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}

	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	firm := domain.FirmContact{Name: cfg.FirmName, Phone: cfg.FirmPhone, CTA: cfg.FirmCTA}

	// --- Page registry ----------------------------------------------------
	registry := service.NewRegistry()
	if err := pages.Register(registry, renderer, firm); err != nil {
		slog.Error("failed to register pages", "error", err)
		os.Exit(1)
	}

	// --- Database (optional) ----------------------------------------------
	if cfg.DatabaseURL != "" {
		pool, err := openPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		slog.Info("database connection established")

		if cfg.RunMigrations {
			if err := migrate(context.Background(), pool); err != nil {
				slog.Error("failed to run migrations", "error", err)
				os.Exit(1)
			}
		}

		n, err := service.RegisterStoredPages(context.Background(), registry, repo.NewLocationPageRepo(pool), renderer, firm)
		if err != nil {
			slog.Error("failed to register stored pages", "error", err)
			os.Exit(1)
		}
		slog.Info("stored pages registered", "count", n)
	}
	slog.Info("page registry ready", "pages", registry.Len())

	// --- Services ---------------------------------------------------------
	params := service.NewStaticParamsService(cat, logger)
	resolver := service.NewResolver(registry, naming.NewFormatter(cat.DisplayOverrides()), renderer, firm, logger)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// GetHead routes HEAD requests to the GET handlers.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.GetHead)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	server := handler.NewServer(params, resolver, renderer, firm, openapi.Document)
	r.Mount("/", server.Routes())

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

// openPool creates the pool and verifies the DB is reachable before
// accepting traffic.
func openPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

// migrate applies pending goose migrations through a database/sql handle
// borrowed from the pool.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		slog.Info("migration applied", "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}
