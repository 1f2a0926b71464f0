package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/driftwave/ripple/internal/config"
	"github.com/driftwave/ripple/internal/logging"
	"github.com/driftwave/ripple/internal/stubserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the development feed service",
	Long: `Run a local stub of the feed service, backed by a deterministic
in-memory catalog. Useful for developing against ripple without network
access:

  ripple serve --port 8080
  RIPPLE_API_BASE_URL=http://localhost:8080 ripple watch`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "listen port (overrides serve.port)")
	serveCmd.Flags().Int("items", 0, "catalog size (overrides serve.item_count)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Serve.Port = port
	}
	if items, _ := cmd.Flags().GetInt("items"); items > 0 {
		cfg.Serve.ItemCount = items
	}

	log := logging.NopLogger()
	if cfg.Logging.Enabled {
		log, err = logging.NewLogger("", cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		defer log.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := stubserver.New(cfg.Serve, log)
	return srv.Run(ctx)
}
