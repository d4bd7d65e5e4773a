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

	"github.com/clinicnet/clinicnet/internal/pkg/logger"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/labstack/echo/v4"
)

// GracefulServer wraps Echo with signal-driven graceful shutdown
type GracefulServer struct {
	echo     *echo.Echo
	logger   *logger.ZapLogger
	config   models.ServerConfig
	shutdown *ShutdownManager
}

// NewGracefulServer creates a new server. Components registered on shutdown
// are closed after the HTTP listener has drained.
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, config models.ServerConfig, shutdown *ShutdownManager) *GracefulServer {
	e.Server.ReadTimeout = time.Duration(config.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(config.WriteTimeout) * time.Second

	return &GracefulServer{
		echo:     e,
		logger:   zapLogger,
		config:   config,
		shutdown: shutdown,
	}
}

// Start serves until SIGINT or SIGTERM, then shuts down
func (s *GracefulServer) Start() error {
	errCh := make(chan error, 1)

	go func() {
		addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))
	case err := <-errCh:
		s.logger.Error("HTTP server failed", logger.Err(err))
		_ = s.Shutdown()
		return err
	}

	return s.Shutdown()
}

// Shutdown drains the HTTP server and then the registered components
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	timeout := time.Duration(s.config.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
	}

	if s.shutdown != nil {
		s.shutdown.Shutdown(ctx)
	}

	s.logger.Info("Server shutdown completed")
	return err
}

// ShutdownManager runs cleanup functions in reverse registration order
type ShutdownManager struct {
	logger    *logger.ZapLogger
	functions []namedCleanup
}

type namedCleanup struct {
	name string
	fn   func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.functions = append(sm.functions, namedCleanup{name: name, fn: fn})
}

// Shutdown executes all cleanup functions, continuing past failures.
// It returns the number of components that failed.
func (sm *ShutdownManager) Shutdown(ctx context.Context) int {
	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(sm.functions)))

	failed := 0
	for i := len(sm.functions) - 1; i >= 0; i-- {
		c := sm.functions[i]
		if err := c.fn(ctx); err != nil {
			failed++
			sm.logger.Error("Error during component shutdown",
				logger.String("component", c.name),
				logger.Err(err))
		}
	}

	sm.logger.Info("All components shutdown completed", logger.Int("failed", failed))
	return failed
}
