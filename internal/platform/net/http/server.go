package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"sailormouth/internal/platform/logger"
)

// Server runs a handler until its context ends, then drains in-flight requests
type Server struct {
	srv   *stdhttp.Server
	grace time.Duration
}

// NewServer listens on addr (":4000") and waits up to grace for requests on shutdown
func NewServer(addr string, h stdhttp.Handler, grace time.Duration) *Server {
	return &Server{
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
		},
		grace: grace,
	}
}

// Run serves until ctx is done or the listener fails
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Named("http")
	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.grace).Msg("http shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}
