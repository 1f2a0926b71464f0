package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/driftwave/ripple/internal/config"
	"github.com/driftwave/ripple/internal/feed/api"
	"github.com/driftwave/ripple/internal/logging"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application talking to the configured feed
// service.
func New(cfg *config.Config, log *logging.Logger) *App {
	client := api.NewClient(cfg.API, log)
	return &App{model: NewModel(cfg, client, log)}
}

// NewWithService creates a TUI application over a custom feed service.
func NewWithService(cfg *config.Config, svc FeedService, log *logging.Logger) *App {
	return &App{model: NewModel(cfg, svc, log)}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if a.model.cfg.TUI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	a.program = tea.NewProgram(a.model, opts...)

	// Forward termination signals as a quit so transports are disposed
	// on the way out.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()
	signal.Stop(sigChan)
	return err
}
