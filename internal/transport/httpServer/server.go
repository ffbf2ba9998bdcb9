package httpServer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zakiyahfaroo/HuskySync/internal/config"
	"github.com/zakiyahfaroo/HuskySync/internal/transport/httpServer/routers"
	"github.com/zakiyahfaroo/HuskySync/internal/utils/logger/sl"
)

type HttpServer struct {
	logger *slog.Logger
	cfg    *config.Config
	server *http.Server
}

// NewHttpServer mounts the router on a chi mux and wraps it in an
// http.Server with the configured timeouts.
func NewHttpServer(logger *slog.Logger, router *routers.Router, cfg *config.Config) *HttpServer {
	mux := chi.NewMux()
	router.Mount(mux)

	return &HttpServer{
		logger: logger,
		cfg:    cfg,
		server: &http.Server{
			Addr:         net.JoinHostPort(cfg.HttpServer.Address, cfg.HttpServer.Port),
			Handler:      mux,
			ReadTimeout:  cfg.HttpServer.Timeout,
			WriteTimeout: cfg.HttpServer.Timeout,
		},
	}
}

// Listen serves until Shutdown is called.
func (s *HttpServer) Listen() {
	op := "HttpServer.Listen()"
	log := s.logger.With(slog.String("op", op))

	log.Info("http server listening", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http server stopped", sl.Err(err))
	}
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
