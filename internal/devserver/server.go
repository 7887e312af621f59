package devserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/techsolutions/horabank/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Server runs the development API over plain HTTP.
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer builds a Server listening on addr with handler as its root.
func NewServer(addr string, handler http.Handler, log *logger.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: log,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("http server listening")
		if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info().Msg("shutting down http server")
	return s.httpServer.Shutdown(shutdownCtx)
}
