package stubserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/driftwave/ripple/internal/config"
	"github.com/driftwave/ripple/internal/logging"
)

const shutdownTimeout = 10 * time.Second

// Server is the stub feed service: catalog, handlers, metrics, and the
// http.Server lifecycle.
type Server struct {
	catalog *Catalog
	metrics *Metrics
	log     *logging.Logger
	srv     *http.Server
}

// New builds a Server from serve configuration.
func New(cfg config.ServeConfig, log *logging.Logger) *Server {
	if log == nil {
		log = logging.NopLogger()
	}
	log = log.WithComponent("stubserver")

	catalog := NewCatalog(cfg.ItemCount)
	met := NewMetrics()
	met.SetCatalogSize(catalog.Len())
	h := NewHandler(catalog, log, met)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestMiddleware(met))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics", met.Handler())
	r.Get("/feed/videos", h.ListVideos)
	r.Post("/droplets/{droplet_id}/react", h.React)

	return &Server{
		catalog: catalog,
		metrics: met,
		log:     log,
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: r,
		},
	}
}

// Handler returns the server's router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run serves until ctx is canceled, then drains connections.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	s.log.Info("stub feed service listening", "addr", s.srv.Addr, "droplets", s.catalog.Len())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutdown signal received, draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
