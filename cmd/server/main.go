package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fashion-shot-studio/internal/config"
	"fashion-shot-studio/internal/genclient"
	"fashion-shot-studio/internal/httpclient"
	"fashion-shot-studio/internal/server"
	"fashion-shot-studio/internal/studio"
	"fashion-shot-studio/internal/workflow"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)

	httpClient := httpclient.New(httpclient.Options{
		PreferIPv4:  cfg.PreferIPv4,
		Timeout:     cfg.HTTPTimeout,
		DialTimeout: cfg.DialTimeout,
	})

	client := genclient.New(genclient.Options{
		ProxyURL:   cfg.ProxyURL,
		Model:      cfg.Model,
		HTTPClient: httpClient,
		Logger:     logger,
		OnQuotaExhausted: func(model string) {
			logger.Warn("model quota exhausted", "model", model)
		},
	})

	sessions := workflow.NewStore(workflow.StoreOptions{
		MaxIdle: cfg.SessionMaxIdle,
		NewProducer: func() *studio.Producer {
			return studio.New(studio.Options{
				Client: client,
				Logger: logger,
			})
		},
	})

	api := server.New(server.Options{
		Sessions:       sessions,
		Logger:         logger,
		RequestTimeout: cfg.RequestTimeout,
		MaxConcurrent:  cfg.MaxConcurrent,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Minute,
		IdleTimeout:       90 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("server started", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
	logger.Info("shutting down")
}

func newLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
