package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/job-board/internal/api/middleware"
	"github.com/maxaizer/job-board/internal/api/routes"
	"github.com/maxaizer/job-board/internal/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// NewRouter assembles the gin engine with the full middleware chain. Tests
// drive it directly through httptest without opening a socket.
func NewRouter(cfg config.ServerConfig, deps routes.Deps) *gin.Engine {

	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(cfg.MaxRequestsPerSecond))

	routes.RegisterRoutes(r, deps)
	return r
}

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.ServerConfig, deps routes.Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    cfg.Addr,
			Handler: NewRouter(cfg, deps),
		},
	}
}

// Run serves until the context is canceled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {

	errChan := make(chan error, 1)
	go func() {
		log.Infof("http server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return errors.Wrap(err, "http server failed")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
