package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "feed.page_size")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation
// errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateAPI()...)
	errors = append(errors, c.validateFeed()...)
	errors = append(errors, c.validateGesture()...)
	errors = append(errors, c.validatePlayback()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateServe()...)

	return errors
}

func (c *Config) validateAPI() []ValidationError {
	var errors []ValidationError

	if c.API.BaseURL == "" {
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "must not be empty",
		})
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "must be an absolute URL",
		})
	}

	if c.API.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "api.timeout_seconds",
			Value:   c.API.TimeoutSeconds,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateFeed() []ValidationError {
	var errors []ValidationError

	if c.Feed.PageSize < 1 || c.Feed.PageSize > 100 {
		errors = append(errors, ValidationError{
			Field:   "feed.page_size",
			Value:   c.Feed.PageSize,
			Message: "must be between 1 and 100",
		})
	}

	if c.Feed.PrefetchThreshold < 0 {
		errors = append(errors, ValidationError{
			Field:   "feed.prefetch_threshold",
			Value:   c.Feed.PrefetchThreshold,
			Message: "must not be negative",
		})
	}

	if c.Feed.IndicatorLimit < 1 {
		errors = append(errors, ValidationError{
			Field:   "feed.indicator_limit",
			Value:   c.Feed.IndicatorLimit,
			Message: "must be at least 1",
		})
	}

	return errors
}

func (c *Config) validateGesture() []ValidationError {
	var errors []ValidationError

	if c.Gesture.SwipeThresholdPx <= 0 {
		errors = append(errors, ValidationError{
			Field:   "gesture.swipe_threshold_px",
			Value:   c.Gesture.SwipeThresholdPx,
			Message: "must be positive",
		})
	}

	if c.Gesture.SwipeMaxDurationMs <= 0 {
		errors = append(errors, ValidationError{
			Field:   "gesture.swipe_max_duration_ms",
			Value:   c.Gesture.SwipeMaxDurationMs,
			Message: "must be positive",
		})
	}

	if c.Gesture.PullThresholdPx <= 0 {
		errors = append(errors, ValidationError{
			Field:   "gesture.pull_threshold_px",
			Value:   c.Gesture.PullThresholdPx,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validatePlayback() []ValidationError {
	var errors []ValidationError

	if c.Playback.ControlsHideSeconds < 1 {
		errors = append(errors, ValidationError{
			Field:   "playback.controls_hide_seconds",
			Value:   c.Playback.ControlsHideSeconds,
			Message: "must be at least 1",
		})
	}

	if c.Playback.DefaultDurationMs < 1000 {
		errors = append(errors, ValidationError{
			Field:   "playback.default_duration_ms",
			Value:   c.Playback.DefaultDurationMs,
			Message: "must be at least 1000",
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.TickIntervalMs < 16 || c.TUI.TickIntervalMs > 1000 {
		errors = append(errors, ValidationError{
			Field:   "tui.tick_interval_ms",
			Value:   c.TUI.TickIntervalMs,
			Message: "must be between 16 and 1000",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateServe() []ValidationError {
	var errors []ValidationError

	if c.Serve.Port < 1 || c.Serve.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "serve.port",
			Value:   c.Serve.Port,
			Message: "must be a valid port number",
		})
	}

	if c.Serve.ItemCount < 1 {
		errors = append(errors, ValidationError{
			Field:   "serve.item_count",
			Value:   c.Serve.ItemCount,
			Message: "must be at least 1",
		})
	}

	return errors
}
