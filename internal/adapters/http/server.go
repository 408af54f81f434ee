package http

import (
	"context"
	"errors"
	"messenger/internal/platform/logger"
	"net"
	"net/http"
	"strconv"
	"time"

	"messenger/internal/config"
)

const defaultShutdownTimeout = 15 * time.Second

type Server struct {
	server          *http.Server
	logger          logger.Logger
	shutdownTimeout time.Duration
	addr            string
}

func NewServer(cfg *config.HttpConfig, log logger.Logger, handler http.Handler) *Server {
	return &Server{
		server: &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:           handler,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
		},
		logger:          log,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}
}

// Addr is the address the server is bound to once Start has returned. It
// differs from the configured one when port 0 was requested.
func (s *Server) Addr() string {
	if s.addr != "" {
		return s.addr
	}
	return s.server.Addr
}

func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		s.logger.Error("failed to listen", logger.String("addr", s.server.Addr), logger.Error(err))
		return err
	}
	s.addr = ln.Addr().String()

	s.logger.Info("Starting HTTP server", logger.String("addr", s.addr))

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("failed to serve", logger.Error(err))
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		s.logger.Info("Server startup cancelled")
		return s.shutdown(context.Background())
	default:
		return nil
	}
}

func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	s.logger.Info("Shutting down HTTP server", logger.Duration("timeout", s.timeout()))
	return s.shutdown(ctx)
}

func (s *Server) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

func (s *Server) timeout() time.Duration {
	if s.shutdownTimeout <= 0 {
		return defaultShutdownTimeout
	}
	return s.shutdownTimeout
}
