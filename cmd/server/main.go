package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/wfm-tools/wfmarket-data/internal/config"
	"github.com/wfm-tools/wfmarket-data/internal/server"
	"github.com/wfm-tools/wfmarket-data/internal/tool"
	"github.com/wfm-tools/wfmarket-data/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults apply when omitted)")
	flag.Parse()

	// A .env is optional; config values reference its variables via ${VAR}.
	godotenv.Load()

	bootLogger := slog.New(tint.NewHandler(os.Stderr, nil))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		bootLogger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:     cfg.Log.SlogLevel(),
		AddSource: cfg.Log.AddSource,
	}))
	slog.SetDefault(logger)

	logger.Info("starting wfmarket server",
		"version", version.Version,
		"commit", version.Commit,
		"api_url", cfg.API.BaseURL,
		"port", cfg.Server.Port,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	t := tool.New(tool.Config{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.API.Timeout,
		RequestLimit:      cfg.API.RequestLimit,
		RequestWindow:     cfg.API.RequestWindow,
		RetryBackoff:      cfg.API.RetryBackoff,
		DefaultFloorCount: cfg.Tool.DefaultFloorCount,
		VerifyConcurrency: cfg.Tool.VerifyConcurrency,
	}, logger)

	if err := t.Initialize(ctx); err != nil {
		logger.Error("failed to initialize tool", "error", err)
		os.Exit(1)
	}
	defer t.Shutdown()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.NewRouter(t, logger, server.Options{AllowedOrigins: cfg.Server.AllowedOrigins}),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
	t.Shutdown()

	logger.Info("server stopped")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadAndValidate(path)
}
