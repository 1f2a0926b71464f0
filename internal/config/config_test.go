package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault_Validates(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("default config should validate, got %d errors: %v", len(errs), ValidationErrors(errs))
	}
}

func TestDefault_BehaviorValues(t *testing.T) {
	cfg := Default()

	if cfg.Feed.PageSize != 10 {
		t.Errorf("Feed.PageSize = %d, want 10", cfg.Feed.PageSize)
	}
	if cfg.Feed.PrefetchThreshold != 3 {
		t.Errorf("Feed.PrefetchThreshold = %d, want 3", cfg.Feed.PrefetchThreshold)
	}
	if cfg.Gesture.SwipeThresholdPx != 50 {
		t.Errorf("Gesture.SwipeThresholdPx = %v, want 50", cfg.Gesture.SwipeThresholdPx)
	}
	if cfg.Gesture.PullThresholdPx != 60 {
		t.Errorf("Gesture.PullThresholdPx = %v, want 60", cfg.Gesture.PullThresholdPx)
	}
	if cfg.Playback.ControlsHideSeconds != 3 {
		t.Errorf("Playback.ControlsHideSeconds = %d, want 3", cfg.Playback.ControlsHideSeconds)
	}
	if !cfg.Playback.StartMuted {
		t.Error("Playback.StartMuted should default to true")
	}
}

func TestSetDefaults_ThenLoad(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Feed.PageSize != 10 {
		t.Errorf("Feed.PageSize = %d, want 10", cfg.Feed.PageSize)
	}
	if cfg.API.Timeout() != 10*time.Second {
		t.Errorf("API.Timeout() = %v, want 10s", cfg.API.Timeout())
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.Set("feed.page_size", 0)
	viper.Set("logging.level", "loud")

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 2 {
		t.Errorf("expected 2 validation errors, got %d: %v", len(verrs), verrs)
	}
}

func TestValidate_BadBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", false},
		{"valid https", "https://waves.example.com", false},
		{"empty", "", true},
		{"no scheme", "localhost:8080", true},
		{"garbage", "://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.API.BaseURL = tt.baseURL
			errs := cfg.Validate()
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("Validate() errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "feed.page_size", Value: 0, Message: "must be between 1 and 100"},
	}
	got := errs.Error()
	want := "feed.page_size: must be between 1 and 100 (got: 0)"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := Default()

	if cfg.Gesture.SwipeMaxDuration() != 300*time.Millisecond {
		t.Errorf("SwipeMaxDuration() = %v, want 300ms", cfg.Gesture.SwipeMaxDuration())
	}
	if cfg.Playback.ControlsHideDelay() != 3*time.Second {
		t.Errorf("ControlsHideDelay() = %v, want 3s", cfg.Playback.ControlsHideDelay())
	}
	if cfg.TUI.TickInterval() != 100*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 100ms", cfg.TUI.TickInterval())
	}
}
