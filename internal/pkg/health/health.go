package health

import (
	"context"
	"errors"
	"net/http"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/logger"
)

// Checker reports whether one dependency is usable
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// Pinger is implemented by the Postgres and Redis clients
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingChecker checks a dependency through its Ping method
func PingChecker(p Pinger) Checker {
	return CheckerFunc(p.Ping)
}

// ConnectionChecker checks a client that tracks its own connection state
func ConnectionChecker(name string, connected func() bool) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if !connected() {
			return errors.New(name + " not connected")
		}
		return nil
	})
}

// BuildInfo describes the running binary
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// Response is the body of the detailed and readiness endpoints
type Response struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo is the health of one dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Service runs the registered dependency checks
type Service struct {
	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewService creates an empty health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a checker under name
func (s *Service) AddChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// CheckAll runs every checker and reports unhealthy if any failed
func (s *Service) CheckAll(ctx context.Context) Response {
	s.mu.RLock()
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)

	resp := Response{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(names)),
	}

	for _, name := range names {
		s.mu.RLock()
		checker := s.checkers[name]
		s.mu.RUnlock()

		if err := checker.CheckHealth(ctx); err != nil {
			logger.Warn("Health check failed", logger.String("dependency", name), logger.Err(err))
			resp.Dependencies[name] = DependencyInfo{Status: "unhealthy", Error: err.Error()}
			resp.Status = "unhealthy"
			continue
		}
		resp.Dependencies[name] = DependencyInfo{Status: "healthy"}
	}

	return resp
}

// RegisterHealthEndpoints registers liveness, readiness and detailed checks
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     version,
			ServiceName: serviceName,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	})

	live := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	}
	e.GET("/health", live)
	e.GET("/healthz", live)

	e.GET("/health/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		resp := svc.CheckAll(ctx)
		resp.Service = serviceName
		resp.Version = version
		return c.JSON(statusFor(resp), resp)
	})

	e.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		resp := svc.CheckAll(ctx)
		resp.Service = serviceName
		return c.JSON(statusFor(resp), resp)
	})
}

func statusFor(resp Response) int {
	if resp.Status == "unhealthy" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
