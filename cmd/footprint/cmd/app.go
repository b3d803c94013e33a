package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/footprint-app/footprint/internal/app"
	"github.com/footprint-app/footprint/internal/config"
	"github.com/footprint-app/footprint/internal/logger"
)

// loadConfig reads configuration and sends logs to stderr so stdout stays JSON.
func loadConfig() *config.Config {
	cfg := config.Load()
	logger.InitWriter(os.Stderr, cfg.IsDevelopment(), cfg.SentryDSN)
	return cfg
}

// withApp runs fn against a fully wired application and closes it afterwards.
func withApp(fn func(a *app.App) error) error {
	a, err := app.New(loadConfig())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	return fn(a)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
