package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/smartattend/internal/app"
	"github.com/jask/smartattend/internal/config"
	"github.com/jask/smartattend/internal/notify"
	"github.com/jask/smartattend/internal/store"
	"github.com/jask/smartattend/internal/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// run closes everything it opens before returning.
func run(args []string) error {
	fs := flag.NewFlagSet("smartattend", flag.ContinueOnError)
	startRoute := fs.String("route", "", "initial navigation address, e.g. #/admin/create")
	configPath := fs.String("config", "", "config file (overrides SMARTATTEND_CONFIG)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *configPath != "" {
		os.Setenv("SMARTATTEND_CONFIG", *configPath)
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer closeLog.Close()
	slog.SetDefault(logger)

	backend, closer, err := store.Open(cfg.Store.Backend, cfg.Database.Path, cfg.Store.Dir)
	if err != nil {
		logger.Error("open store", "backend", cfg.Store.Backend, "error", err)
		return fmt.Errorf("store: %w", err)
	}
	defer closer.Close()

	decide := app.RandomDecider(nil)
	if cfg.Attendance.Seed != 0 {
		decide = app.SeededDecider(cfg.Attendance.Seed)
	}

	addr := cfg.UI.StartRoute
	if *startRoute != "" {
		addr = *startRoute
	}

	ctx := context.Background()
	a := app.New(ctx, app.Deps{
		Store:   store.New(backend, logger),
		Notify:  notify.New(notify.WithTTL(cfg.UI.ToastDuration)),
		Decide:  decide,
		Log:     logger,
		Address: addr,
	}, app.Options{
		SuccessProbability: cfg.Attendance.SuccessProbability,
		TimeFormat:         cfg.UI.TimeFormat,
	})
	a.Start()
	logger.Info("started", "backend", cfg.Store.Backend, "address", a.Address.Current())

	p := tea.NewProgram(tui.New(a, tui.Options{ClockInterval: cfg.UI.ClockInterval, Log: logger}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

// openLogger writes JSON logs to the configured file. The terminal belongs
// to the UI, so an empty path discards logs.
func openLogger(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.Level))); err != nil {
		level = slog.LevelInfo
	}
	if cfg.Path == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}
