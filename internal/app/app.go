// internal/app/app.go

// Package app wires the application together: configuration, logging, the
// history store, the analysis services and the HTTP server.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scenespeak/scenespeak/internal/api"
	"github.com/scenespeak/scenespeak/internal/config"
	"github.com/scenespeak/scenespeak/internal/logger"
	"github.com/scenespeak/scenespeak/internal/remote"
	"github.com/scenespeak/scenespeak/internal/services"
	"github.com/scenespeak/scenespeak/internal/storage"
)

const shutdownTimeout = 30 * time.Second

// App holds the wired application.
type App struct {
	Config   *config.Config
	Analyzer *services.AnalyzerService
	History  *services.HistoryService
	Export   *services.ExportService

	router  *gin.Engine
	log     *slog.Logger
	closers []io.Closer
}

// Options tweaks how the application is wired.
type Options struct {
	// LocalOnly skips the remote analysis client entirely; every analysis
	// runs the local pipeline.
	LocalOnly bool
}

// New loads configuration and wires every collaborator explicitly.
func New(opts Options) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})

	a := &App{
		Config: cfg,
		log:    logger.With("app"),
	}

	store, err := a.newStore(cfg)
	if err != nil {
		return nil, err
	}

	a.History = services.NewHistoryService(store)

	var remoteClient services.RemoteAnalyzer
	if !opts.LocalOnly && cfg.RemoteURL != "" {
		remoteClient = remote.NewClient(cfg.RemoteURL, cfg.RemoteAPIKey,
			time.Duration(cfg.RemoteTimeout)*time.Second)
	} else if !opts.LocalOnly {
		a.log.Warn("REMOTE_API_URL not set, every analysis will run locally")
	}

	a.Analyzer = services.NewAnalyzerService(remoteClient, a.History)
	a.Export = services.NewExportService()

	handler := api.NewHandler(a.Analyzer, a.History, a.Export)
	a.router = api.NewRouter(handler, cfg.DebugMode)

	return a, nil
}

func (a *App) newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.HistoryBackend {
	case config.BackendSQLite:
		store, err := storage.NewSQLiteStore(cfg.HistoryPath())
		if err != nil {
			return nil, fmt.Errorf("opening sqlite history store: %w", err)
		}
		a.closers = append(a.closers, store)
		return store, nil
	default:
		store, err := storage.NewFileStore(cfg.HistoryPath())
		if err != nil {
			return nil, fmt.Errorf("opening file history store: %w", err)
		}
		return store, nil
	}
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully.
func (a *App) Run() error {
	srv := &http.Server{
		Addr:    ":" + a.Config.Port,
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server listening", "port", a.Config.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		a.Close()
		return fmt.Errorf("starting server: %w", err)
	case sig := <-quit:
		a.log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	a.Close()
	a.log.Info("server stopped")
	return nil
}

// Close releases resources held by the wired collaborators.
func (a *App) Close() {
	for _, closer := range a.closers {
		if err := closer.Close(); err != nil {
			a.log.Warn("closing resource", "error", err)
		}
	}
}
