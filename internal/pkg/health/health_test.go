package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func TestService_CheckAll(t *testing.T) {
	svc := NewService()
	svc.AddChecker("postgres", PingChecker(fakePinger{}))
	svc.AddChecker("redis", PingChecker(fakePinger{err: errors.New("dial tcp: refused")}))
	svc.AddChecker("nats", ConnectionChecker("nats", func() bool { return true }))

	resp := svc.CheckAll(context.Background())

	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "healthy", resp.Dependencies["postgres"].Status)
	assert.Equal(t, "unhealthy", resp.Dependencies["redis"].Status)
	assert.Equal(t, "dial tcp: refused", resp.Dependencies["redis"].Error)
	assert.Equal(t, "healthy", resp.Dependencies["nats"].Status)
}

func TestRegisterHealthEndpoints(t *testing.T) {
	healthy := NewService()
	healthy.AddChecker("postgres", PingChecker(fakePinger{}))

	failing := NewService()
	failing.AddChecker("nats", ConnectionChecker("nats", func() bool { return false }))

	tests := []struct {
		name       string
		svc        *Service
		path       string
		wantStatus int
	}{
		{"ping", healthy, "/ping", http.StatusOK},
		{"liveness ignores dependencies", failing, "/health", http.StatusOK},
		{"healthz", failing, "/healthz", http.StatusOK},
		{"ready when healthy", healthy, "/ready", http.StatusOK},
		{"not ready when a dependency fails", failing, "/ready", http.StatusServiceUnavailable},
		{"detailed", failing, "/health/detailed", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			RegisterHealthEndpoints(e, "rides", "1.0.0", tt.svc)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPingEndpointBody(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "wallet", "2.1.0", NewService())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "wallet", info.ServiceName)
	assert.Equal(t, "2.1.0", info.Version)
	assert.NotEmpty(t, info.GoVersion)
}
