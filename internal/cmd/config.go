package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftwave/ripple/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View ripple configuration",
	Long: `View the effective ripple configuration.

Values come from defaults, the config file, and RIPPLE_* environment
variables, in increasing precedence.`,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "api:")
	fmt.Fprintf(out, "  base_url: %s\n", cfg.API.BaseURL)
	fmt.Fprintf(out, "  timeout_seconds: %d\n", cfg.API.TimeoutSeconds)
	fmt.Fprintf(out, "  user_id: %s\n", cfg.API.UserID)
	fmt.Fprintf(out, "  access_token: %s\n", maskSecret(cfg.API.AccessToken))
	fmt.Fprintln(out, "feed:")
	fmt.Fprintf(out, "  page_size: %d\n", cfg.Feed.PageSize)
	fmt.Fprintf(out, "  prefetch_threshold: %d\n", cfg.Feed.PrefetchThreshold)
	fmt.Fprintf(out, "  indicator_limit: %d\n", cfg.Feed.IndicatorLimit)
	fmt.Fprintln(out, "gesture:")
	fmt.Fprintf(out, "  swipe_threshold_px: %g\n", cfg.Gesture.SwipeThresholdPx)
	fmt.Fprintf(out, "  swipe_max_duration_ms: %d\n", cfg.Gesture.SwipeMaxDurationMs)
	fmt.Fprintf(out, "  pull_threshold_px: %g\n", cfg.Gesture.PullThresholdPx)
	fmt.Fprintln(out, "playback:")
	fmt.Fprintf(out, "  controls_hide_seconds: %d\n", cfg.Playback.ControlsHideSeconds)
	fmt.Fprintf(out, "  start_muted: %t\n", cfg.Playback.StartMuted)
	fmt.Fprintf(out, "  default_duration_ms: %d\n", cfg.Playback.DefaultDurationMs)
	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  tick_interval_ms: %d\n", cfg.TUI.TickIntervalMs)
	fmt.Fprintf(out, "  show_help_bar: %t\n", cfg.TUI.ShowHelpBar)
	fmt.Fprintf(out, "  mouse_enabled: %t\n", cfg.TUI.MouseEnabled)
	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %t\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintln(out, "serve:")
	fmt.Fprintf(out, "  port: %d\n", cfg.Serve.Port)
	fmt.Fprintf(out, "  item_count: %d\n", cfg.Serve.ItemCount)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), config.ConfigFile())
	return nil
}

func maskSecret(s string) string {
	if s == "" {
		return "(unset)"
	}
	return "********"
}
