package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gamestatus-bot/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		InitLogger("info")
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	InitLogger(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	app, err := NewApp(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Shutdown(shutdownCtx); err != nil {
			slog.Error("Application shutdown error", "error", err)
		}
	}()

	if err := app.Run(); err != nil {
		return fmt.Errorf("start application: %w", err)
	}

	WaitForShutdown()
	return nil
}

func InitLogger(level string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level)})
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
