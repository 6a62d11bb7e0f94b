package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/logger"
)

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	addr            string
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, host string, port int, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		addr:            fmt.Sprintf("%s:%d", host, port),
		shutdownTimeout: shutdownTimeout,
	}
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down
func (s *GracefulServer) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

// ShutdownManager runs registered cleanup functions in reverse registration order
type ShutdownManager struct {
	logger    *logger.ZapLogger
	mu        sync.Mutex
	functions []namedFunc
}

type namedFunc struct {
	name string
	fn   func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.functions = append(sm.functions, namedFunc{name: name, fn: fn})
}

// Shutdown executes all registered cleanup functions, continuing past failures,
// and returns the joined errors
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	functions := append([]namedFunc(nil), sm.functions...)
	sm.mu.Unlock()

	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(functions)))

	var errs []error
	for i := len(functions) - 1; i >= 0; i-- {
		f := functions[i]
		if err := f.fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown", logger.String("component", f.name), logger.Err(err))
			errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
		}
	}

	sm.logger.Info("All components shutdown completed")
	return errors.Join(errs...)
}
