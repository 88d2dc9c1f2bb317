package server

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-resource-client/internal/config"
	"github.com/MKhiriev/go-resource-client/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	address    string

	// ready receives the bound address once the listener is open.
	ready chan string

	logger *logger.Logger
}

func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil {
		return nil, errNoHandlerIsProvided
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoAddressIsProvided
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		address:    cfg.HTTPAddress,
		ready:      make(chan string, 1),
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		s.logger.Err(err).Str("address", s.address).Msg("error opening listener")
		return err
	}
	s.ready <- listener.Addr().String()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(listener)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err = <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}
