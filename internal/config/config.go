package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete ripple configuration
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Feed     FeedConfig     `mapstructure:"feed"`
	Gesture  GestureConfig  `mapstructure:"gesture"`
	Playback PlaybackConfig `mapstructure:"playback"`
	TUI      TUIConfig      `mapstructure:"tui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Serve    ServeConfig    `mapstructure:"serve"`
}

// APIConfig controls how the client talks to the feed service
type APIConfig struct {
	// BaseURL is the root of the feed service (default: "http://localhost:8080")
	BaseURL string `mapstructure:"base_url"`
	// AccessToken is appended to media URLs as a query parameter when set.
	// The engine treats media URLs as opaque; injection happens at hand-off.
	AccessToken string `mapstructure:"access_token"`
	// TimeoutSeconds is the per-request timeout for page fetches and
	// reaction submissions (default: 10)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// UserID is who reactions are attributed to (default: "viewer")
	UserID string `mapstructure:"user_id"`
}

// FeedConfig controls pagination and prefetch behavior
type FeedConfig struct {
	// PageSize is the number of items requested per page (default: 10)
	PageSize int `mapstructure:"page_size"`
	// PrefetchThreshold triggers a speculative fetch when the active index is
	// within this many items of the end of the loaded list (default: 3)
	PrefetchThreshold int `mapstructure:"prefetch_threshold"`
	// IndicatorLimit is how many items the position indicator shows as
	// individually addressable dots; the rest collapse to a count (default: 10)
	IndicatorLimit int `mapstructure:"indicator_limit"`
}

// GestureConfig controls swipe and pull-to-refresh classification
type GestureConfig struct {
	// SwipeThresholdPx is the minimum vertical travel for a swipe (default: 50)
	SwipeThresholdPx float64 `mapstructure:"swipe_threshold_px"`
	// SwipeMaxDurationMs is the "fast enough" window; slower gestures must
	// travel twice the threshold to count (default: 300)
	SwipeMaxDurationMs int `mapstructure:"swipe_max_duration_ms"`
	// PullThresholdPx is the damped pull distance that arms a refresh
	// (default: 60)
	PullThresholdPx float64 `mapstructure:"pull_threshold_px"`
}

// PlaybackConfig controls per-item transport behavior
type PlaybackConfig struct {
	// ControlsHideSeconds is how long transport controls stay visible without
	// interaction while playing (default: 3)
	ControlsHideSeconds int `mapstructure:"controls_hide_seconds"`
	// StartMuted controls whether each item begins muted. This is per item:
	// the mute preference is never carried from one item to the next
	// (default: true)
	StartMuted bool `mapstructure:"start_muted"`
	// DefaultDurationMs is used when the server supplies no duration hint and
	// the driver has not reported metadata yet (default: 15000)
	DefaultDurationMs int64 `mapstructure:"default_duration_ms"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// TickIntervalMs drives playback position updates and timers (default: 100)
	TickIntervalMs int `mapstructure:"tick_interval_ms"`
	// ShowHelpBar shows the key binding bar at the bottom (default: true)
	ShowHelpBar bool `mapstructure:"show_help_bar"`
	// MouseEnabled turns terminal mouse reporting on so drag gestures work
	// (default: true)
	MouseEnabled bool `mapstructure:"mouse_enabled"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
}

// ServeConfig controls the development stub feed server
type ServeConfig struct {
	// Port is the listen port for `ripple serve` (default: 8080)
	Port int `mapstructure:"port"`
	// ItemCount is how many fake items the stub generates per seed (default: 50)
	ItemCount int `mapstructure:"item_count"`
}

// Default returns a Config populated with default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8080",
			TimeoutSeconds: 10,
			UserID:         "viewer",
		},
		Feed: FeedConfig{
			PageSize:          10,
			PrefetchThreshold: 3,
			IndicatorLimit:    10,
		},
		Gesture: GestureConfig{
			SwipeThresholdPx:   50,
			SwipeMaxDurationMs: 300,
			PullThresholdPx:    60,
		},
		Playback: PlaybackConfig{
			ControlsHideSeconds: 3,
			StartMuted:          true,
			DefaultDurationMs:   15000,
		},
		TUI: TUIConfig{
			TickIntervalMs: 100,
			ShowHelpBar:    true,
			MouseEnabled:   true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
		Serve: ServeConfig{
			Port:      8080,
			ItemCount: 50,
		},
	}
}

// Timeout returns the API request timeout as a duration
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SwipeMaxDuration returns the swipe speed window as a duration
func (c *GestureConfig) SwipeMaxDuration() time.Duration {
	return time.Duration(c.SwipeMaxDurationMs) * time.Millisecond
}

// ControlsHideDelay returns the controls auto-hide delay as a duration
func (c *PlaybackConfig) ControlsHideDelay() time.Duration {
	return time.Duration(c.ControlsHideSeconds) * time.Second
}

// TickInterval returns the TUI tick interval as a duration
func (c *TUIConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// SetDefaults registers all default values with viper
func SetDefaults() {
	defaults := Default()

	// API defaults
	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.access_token", defaults.API.AccessToken)
	viper.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)
	viper.SetDefault("api.user_id", defaults.API.UserID)

	// Feed defaults
	viper.SetDefault("feed.page_size", defaults.Feed.PageSize)
	viper.SetDefault("feed.prefetch_threshold", defaults.Feed.PrefetchThreshold)
	viper.SetDefault("feed.indicator_limit", defaults.Feed.IndicatorLimit)

	// Gesture defaults
	viper.SetDefault("gesture.swipe_threshold_px", defaults.Gesture.SwipeThresholdPx)
	viper.SetDefault("gesture.swipe_max_duration_ms", defaults.Gesture.SwipeMaxDurationMs)
	viper.SetDefault("gesture.pull_threshold_px", defaults.Gesture.PullThresholdPx)

	// Playback defaults
	viper.SetDefault("playback.controls_hide_seconds", defaults.Playback.ControlsHideSeconds)
	viper.SetDefault("playback.start_muted", defaults.Playback.StartMuted)
	viper.SetDefault("playback.default_duration_ms", defaults.Playback.DefaultDurationMs)

	// TUI defaults
	viper.SetDefault("tui.tick_interval_ms", defaults.TUI.TickIntervalMs)
	viper.SetDefault("tui.show_help_bar", defaults.TUI.ShowHelpBar)
	viper.SetDefault("tui.mouse_enabled", defaults.TUI.MouseEnabled)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)

	// Serve defaults
	viper.SetDefault("serve.port", defaults.Serve.Port)
	viper.SetDefault("serve.item_count", defaults.Serve.ItemCount)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ripple")
	}
	// Fall back to ~/.config/ripple
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ripple"
	}
	return filepath.Join(home, ".config", "ripple")
}

// StateDir returns the path where logs and runtime state are written
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "ripple")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ripple"
	}
	return filepath.Join(home, ".local", "state", "ripple")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
