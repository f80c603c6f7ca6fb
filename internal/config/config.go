package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"flingr/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Terminal     string        `toml:"terminal"`      // command prefix used to run shell commands
	PowerKeyword string        `toml:"power_keyword"` // colon keyword for power actions
	CurrentTheme string        `toml:"current_theme"`
	UI           UISettings    `toml:"ui"`
	Themes       []Theme       `toml:"themes"`
	Shortcuts    []Shortcut    `toml:"shortcuts"`
	PowerActions []PowerAction `toml:"power_actions"`
}

// UISettings holds tuning knobs for the result list and search timing
type UISettings struct {
	MaxResults   int `toml:"max_results"`
	DebounceMs   int `toml:"debounce_ms"`
	MinSearchLen int `toml:"min_search_len"`
	SearchCap    int `toml:"search_cap"` // external file-search result cap
}

// Theme names a color scheme selectable via the :t command
type Theme struct {
	Name       string `toml:"name"`
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Accent     string `toml:"accent"`
	Highlight  string `toml:"highlight"`
}

// Shortcut is a user-defined colon keyword expanding into a target
// template; %s in the target is replaced with the residual query.
type Shortcut struct {
	Keyword string `toml:"keyword"`
	Label   string `toml:"label"`
	Target  string `toml:"target"`
}

// PowerAction is one entry of the power menu (shutdown, reboot, ...)
type PowerAction struct {
	Label   string `toml:"label"`
	Command string `toml:"command"`
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(cfg *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(cfg *Config, path string) error
	Path() string
}

// service is the concrete implementation
type service struct {
	bus      eventbus.EventBus
	filePath string
}

// NewService creates a config service rooted in the user config dir
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "flingr")
	_ = os.MkdirAll(dir, 0o755)

	return &service{filePath: filepath.Join(dir, "flingr.toml")}
}

// NewServiceWithBus creates a config service with event bus support
func NewServiceWithBus(bus eventbus.EventBus) Service {
	s := NewService().(*service)
	s.bus = bus
	return s
}

// Path returns the config file location
func (s *service) Path() string {
	return s.filePath
}

// Load loads the configuration, falling back to defaults when the file
// does not exist yet.
func (s *service) Load() (*Config, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return Default(), nil
	}
	return s.LoadFromPath(s.filePath)
}

// Save saves the configuration to the default location
func (s *service) Save(cfg *Config) error {
	if err := s.SaveToPath(cfg, s.filePath); err != nil {
		return err
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyFallbacks(&cfg)
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (s *service) SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// applyFallbacks fills zero values so a sparse user config still works
func applyFallbacks(cfg *Config) {
	def := Default()
	if cfg.Terminal == "" {
		cfg.Terminal = def.Terminal
	}
	if cfg.PowerKeyword == "" {
		cfg.PowerKeyword = def.PowerKeyword
	}
	if cfg.UI.MaxResults <= 0 {
		cfg.UI.MaxResults = def.UI.MaxResults
	}
	if cfg.UI.DebounceMs <= 0 {
		cfg.UI.DebounceMs = def.UI.DebounceMs
	}
	if cfg.UI.MinSearchLen <= 0 {
		cfg.UI.MinSearchLen = def.UI.MinSearchLen
	}
	if cfg.UI.SearchCap <= 0 {
		cfg.UI.SearchCap = def.UI.SearchCap
	}
	if len(cfg.Themes) == 0 {
		cfg.Themes = def.Themes
	}
	if cfg.CurrentTheme == "" {
		cfg.CurrentTheme = def.CurrentTheme
	}
	if len(cfg.PowerActions) == 0 {
		cfg.PowerActions = def.PowerActions
	}
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Terminal:     "x-terminal-emulator -e",
		PowerKeyword: "p",
		CurrentTheme: "dusk",
		UI: UISettings{
			MaxResults:   10,
			DebounceMs:   240,
			MinSearchLen: 2,
			SearchCap:    200,
		},
		Themes: []Theme{
			{Name: "dusk", Background: "235", Foreground: "252", Accent: "99", Highlight: "226"},
			{Name: "paper", Background: "255", Foreground: "235", Accent: "33", Highlight: "202"},
			{Name: "moss", Background: "234", Foreground: "250", Accent: "78", Highlight: "214"},
		},
		Shortcuts: []Shortcut{
			{Keyword: "g", Label: "Google", Target: "https://www.google.com/search?q=%s"},
			{Keyword: "w", Label: "Wikipedia", Target: "https://en.wikipedia.org/wiki/Special:Search?search=%s"},
		},
		PowerActions: []PowerAction{
			{Label: "Shutdown", Command: "systemctl poweroff"},
			{Label: "Reboot", Command: "systemctl reboot"},
			{Label: "Suspend", Command: "systemctl suspend"},
			{Label: "Lock", Command: "loginctl lock-session"},
			{Label: "Logout", Command: "loginctl terminate-user self"},
		},
	}
}
