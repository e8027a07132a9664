package ui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/quantumauth-io/payment-info/internal/constants"
	"github.com/quantumauth-io/payment-info/internal/logging"
)

type Config struct {
	Addr    string
	Handler http.Handler
	Logger  logging.Logger
}

// Service runs the payment page on a local listener.
type Service struct {
	cfg Config
	srv *http.Server
	ln  net.Listener
}

func NewUi(cfg Config) *Service {
	if cfg.Addr == "" {
		cfg.Addr = net.JoinHostPort(constants.DefaultHost, constants.DefaultPort)
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &Service{cfg: cfg}
}

func (s *Service) Start() error {
	if s.cfg.Handler == nil {
		return errors.New("ui: handler is required")
	}

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	s.ln = ln

	s.srv = &http.Server{
		Handler:           s.cfg.Handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		err := s.srv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.cfg.Logger.Error("HTTP server error", "error", err)
		}
	}()

	return nil
}

func (s *Service) URL() string {
	if s.ln == nil {
		return ""
	}
	return fmt.Sprintf("http://%s", s.ln.Addr().String())
}

func (s *Service) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
