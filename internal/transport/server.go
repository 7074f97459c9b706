package transport

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rulelang/rulelang/internal/config"
)

// Server wraps the evaluate/health/metrics Handler in a net/http.Server
// with the start/stop lifecycle observability.Server uses, replacing the
// teacher's bare http.ListenAndServe call in cmd/server/main.go.
type Server struct {
	cfg        config.Server
	handler    *Handler
	httpServer *http.Server
	ready      atomic.Bool
}

// NewServer builds a Server bound to cfg. Readiness starts false;
// ListenAndServe sets it true once it has started the listener goroutine
// and false again when ctx is canceled. SetReady can override it.
func NewServer(cfg config.Server, log *logrus.Logger) *Server {
	s := &Server{cfg: cfg}
	s.handler = NewHandler(log, NewMetrics(), s.IsReady)
	return s
}

// SetReady flips the readiness probe's answer.
func (s *Server) SetReady(ready bool) {
	s.ready.Store(ready)
}

// IsReady reports the current readiness state.
func (s *Server) IsReady() bool {
	return s.ready.Load()
}

// ListenAndServe starts the HTTP server and blocks until it stops or
// ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.handler.Mux(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()
	s.SetReady(true)

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		s.SetReady(false)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
