package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-map-places/internal/config"
	"github.com/MKhiriev/go-map-places/internal/handler"
	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/workers"
)

// backgroundRunner is satisfied by *workers.Workers.
type backgroundRunner interface {
	Run(ctx context.Context)
}

type server struct {
	httpServer *httpServer
	workers    backgroundRunner
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, w *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	if w != nil {
		servers.workers = w
	}
	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run serves until ctx is cancelled or the listener fails, then shuts the
// HTTP server down and waits for background workers to finish.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	if s.workers != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.workers.Run(ctx)
		}()
	}

	serveErr := make(chan error, 1)
	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	var err error
	select {
	case <-ctx.Done():
		s.Shutdown()
	case err = <-serveErr:
	}

	cancel()
	wg.Wait()

	if err != nil {
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
