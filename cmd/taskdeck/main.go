package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/task"
	"github.com/taskdeck/taskdeck/internal/ui"
)

func main() {
	// Root flags override the config file.
	configPath := flag.String("config", "", "path to taskdeck.toml")
	theme := flag.String("theme", "", "color theme: dark or light")
	logFile := flag.String("log", "", "debug log file (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "taskdeck:", err)
		os.Exit(1)
	}
	if *theme == "dark" || *theme == "light" {
		cfg.Theme = *theme
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "taskdeck:", err)
		os.Exit(1)
	}
	defer closeLog()

	// The store lives for the process only; seed it while it is empty.
	store := task.NewStore()
	store.SeedExamples(cfg.SeedTitles)
	logger.Debug("store seeded", "tasks", store.Len())

	if err := ui.Run(store, cfg, logger); err != nil {
		fmt.Fprintln(os.Stderr, "taskdeck:", err)
		os.Exit(1)
	}
}

// newLogger writes debug logs to the configured file. The TUI owns
// stdout, so with no file configured the logger discards everything.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.New(f)
	logger.SetLevel(log.DebugLevel)
	return logger, func() { _ = f.Close() }, nil
}
