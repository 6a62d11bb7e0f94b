package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/pullup/internal/pkg/jwt"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{Secret: "secret", Expiration: 10, Issuer: "pullup"}
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := testJWTConfig()
	caller := models.Caller{ID: uuid.New(), Role: models.RoleDriver, Name: "Michael Chen"}
	token, _, err := jwtpkg.GenerateToken(caller, cfg)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.GET("/me", func(c echo.Context) error {
				got, ok := CallerFromContext(c)
				require.True(t, ok)
				assert.Equal(t, caller.ID, got.ID)
				assert.Equal(t, models.RoleDriver, got.Role)
				assert.Equal(t, caller.ID, UserIDFromContext(c))
				return c.NoContent(http.StatusOK)
			}, JWTAuthMiddleware(cfg))

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get(echo.HeaderXRequestID))
}

func TestMetricsMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(MetricsMiddleware())
	e.GET("/rides/:rideID", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rides/123", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
