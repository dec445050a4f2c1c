package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"portfolio_api/internal/api"
	"portfolio_api/internal/app/service"
	"portfolio_api/internal/platform/config"
	"portfolio_api/internal/platform/logging"
	"portfolio_api/internal/platform/storage"
)

func main() {
	boot := logging.New("info")

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.New(cfg.LogLevel)

	// 2. Record stores (one JSON file per collection)
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to create data directory")
	}
	blogStore := storage.NewFileStore(filepath.Join(cfg.DataDir, "blogs.json"))
	portfolioStore := storage.NewFileStore(filepath.Join(cfg.DataDir, "portfolios.json"))

	// 3. Services
	blogService := service.NewBlogService(blogStore)
	portfolioService := service.NewPortfolioService(portfolioStore)

	// 4. Router & HTTP server
	router := api.NewRouter(logger, blogService, portfolioService)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 5. Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		var err error
		if cfg.TLSEnabled() {
			logger.Info().Str("addr", cfg.Addr()).Msg("HTTPS server starting")
			err = server.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			logger.Warn().Str("addr", cfg.Addr()).Msg("no TLS certificate configured, serving plain HTTP")
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-stop

	logger.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped gracefully")
}
