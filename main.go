package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"flingr/internal/apps"
	"flingr/internal/config"
	"flingr/internal/engine"
	"flingr/internal/eventbus"
	"flingr/internal/executor"
	"flingr/internal/logger"
	"flingr/internal/recent"
	"flingr/internal/search"
	"flingr/internal/ui"
)

func main() {
	var configPath string
	var debug bool
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	cacheDir := cacheRoot()

	// Set up logging; the TUI owns stdout.
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	closeLog, err := logger.Init(filepath.Join(cacheDir, "flingr.log"), level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open log file: %v\n", err)
	}
	defer closeLog()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration, creating the default file on first run
	configSvc := config.NewServiceWithBus(bus)
	cfg := loadOrCreateConfig(configSvc, configPath)

	// Build the application index (cached between runs)
	index := apps.Scan(filepath.Join(cacheDir, "apps.cache"), bus)

	// Recent launches feed the recency boost
	recents := recent.Load(filepath.Join(cacheDir, "recent.msgpack"))

	// Debounced external file search
	files := search.NewController(
		search.NewFileSearcher(),
		time.Duration(cfg.UI.DebounceMs)*time.Millisecond,
		cfg.UI.MinSearchLen,
		cfg.UI.SearchCap,
	)

	eng := engine.New(cfg, index, recents, files)

	applyTheme := func(name string) error {
		cfg.CurrentTheme = name
		return configSvc.Save(cfg)
	}
	exe := executor.New(cfg.Terminal, bus, applyTheme)

	uiModel := ui.NewModel(cfg, eng, exe)
	// The scan finished before the program loop exists, so its outcome
	// is reported directly rather than through the bus.
	uiModel.SetStatus(fmt.Sprintf("indexed %d applications", index.Len()))
	p := tea.NewProgram(uiModel, tea.WithAltScreen())

	// Forward executor events into the UI
	forward := func(e eventbus.DomainEvent) { p.Send(ui.EventMsg{Event: e}) }
	bus.Subscribe(eventbus.EventLaunchFailed, forward)
	bus.Subscribe(eventbus.EventThemeApplied, forward)
	bus.Subscribe(eventbus.EventError, forward)

	logger.Log.Info("starting", "apps", index.Len(), "theme", cfg.CurrentTheme)
	if _, err := p.Run(); err != nil {
		logger.Log.Error("error running program", "err", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// loadOrCreateConfig loads the config or writes the defaults on first
// run so the user has a file to edit.
func loadOrCreateConfig(svc config.Service, path string) *config.Config {
	if path != "" {
		if cfg, err := svc.LoadFromPath(path); err == nil {
			return cfg
		} else {
			logger.Log.Warn("failed to load config, using defaults", "path", path, "err", err)
			return config.Default()
		}
	}

	cfg, err := svc.Load()
	if err != nil {
		logger.Log.Warn("failed to load config, using defaults", "err", err)
		return config.Default()
	}

	if _, statErr := os.Stat(svc.Path()); os.IsNotExist(statErr) {
		if saveErr := svc.Save(cfg); saveErr != nil {
			logger.Log.Warn("failed to write default config", "err", saveErr)
		}
	}
	return cfg
}

func cacheRoot() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	dir = filepath.Join(dir, "flingr")
	_ = os.MkdirAll(dir, 0o755)
	return dir
}
