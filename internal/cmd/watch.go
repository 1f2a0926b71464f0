package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftwave/ripple/internal/config"
	"github.com/driftwave/ripple/internal/logging"
	"github.com/driftwave/ripple/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Open the feed",
	Long: `Open the vertical feed in the terminal.

Navigation: j/↓ next, k/↑ previous, or drag with the mouse. Space
toggles play/pause, m toggles mute, r opens the reaction picker, and a
pull past the top (or R) refreshes the whole feed.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logging.NopLogger()
	if cfg.Logging.Enabled {
		log, err = logging.NewLogger(config.StateDir(), cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		defer log.Close()
	}

	app := tui.New(cfg, log)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
