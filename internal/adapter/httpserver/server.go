// Package httpserver is the transport layer: it parses and validates query
// parameters, invokes the comment pipeline, and maps results and errors to
// HTTP responses.
package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"

	"github.com/enrico07/feddit-api/internal/domain"
	"github.com/enrico07/feddit-api/internal/platform/config"
)

type appService interface {
	GetComments(ctx context.Context, filter domain.CommentFilter) ([]domain.EnrichedComment, error)
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	app appService

	clock        clockwork.Clock
	healthChecks []HealthCheck
	startTime    time.Time
}

func NewServer(cfg *config.Config, app appService, healthChecks []HealthCheck, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          app,
		clock:        clock,
		healthChecks: healthChecks,
		startTime:    clock.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
