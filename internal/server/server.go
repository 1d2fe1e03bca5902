package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"biblioteca-backend/internal/platform/config"
	"biblioteca-backend/internal/platform/db"
	"biblioteca-backend/internal/platform/logger"
)

const shutdownTimeout = 10 * time.Second

// Server owns the HTTP listener and the database pool. The pool is closed only
// after in-flight requests have drained.
type Server struct {
	cfg  *config.Config
	db   *db.DB
	http *http.Server
}

func New(cfg *config.Config, database *db.DB) *Server {
	return &Server{
		cfg: cfg,
		db:  database,
		http: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      NewRouter(cfg, database),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

// Run serves until SIGINT/SIGTERM or a listener error, then shuts down.
func (s *Server) Run() error {
	// start listening (TLS when a cert is configured)
	serverErrors := make(chan error, 1)
	go func() {
		tls := s.cfg.Server.TLS
		if tls.Cert != "" {
			logger.Info().Str("addr", s.http.Addr).Msg("listening (https)")
			serverErrors <- s.http.ListenAndServeTLS(tls.Cert, tls.Key)
			return
		}
		logger.Info().Str("addr", s.http.Addr).Msg("listening (http)")
		serverErrors <- s.http.ListenAndServe()
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			s.closeDB()
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down...")
	}
	return s.Shutdown(context.Background())
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	err := s.http.Shutdown(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("http server shutdown error")
	}
	s.closeDB()
	return err
}

func (s *Server) closeDB() {
	if s.db == nil {
		return
	}
	if err := s.db.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close database pool")
		return
	}
	logger.Info().Msg("database pool closed")
}
