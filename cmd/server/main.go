package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"school-directory-service/internal/api"
	"school-directory-service/internal/bootstrap"
	"school-directory-service/internal/config"
	"school-directory-service/internal/platform/obs"
	"school-directory-service/internal/services"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// main is the application composition root.
// It wires the configured directory adapter behind the SchoolDirectory port and starts the HTTP server.
func main() {
	foundEnv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := obs.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if !foundEnv {
		logger.Info("no .env file found (using environment variables)")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	dir, closeDir, err := bootstrap.OpenDirectory(cfg, logger)
	if err != nil {
		return err
	}
	defer closeDir()

	catalog := services.NewCatalog(dir, logger)
	router, err := api.NewRouter(catalog, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	// The directory loads in the background; requests see a loading state until it lands.
	g.Go(func() error {
		if err := catalog.Load(gctx); err != nil {
			logger.Error("initial directory load failed", zap.String("source", string(cfg.Source)), zap.Error(err))
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("source", string(cfg.Source)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
