package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/pullup/internal/pkg/jwt"
	"github.com/piresc/pullup/internal/pkg/middleware"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
	"github.com/stretchr/testify/require"
)

var testJWT = models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "pullup-test"}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// serve runs h behind the JWT middleware; a zero caller sends no token
func serve(t *testing.T, h echo.HandlerFunc, method, path, body string, caller models.Caller, params map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = utils.HTTPErrorHandler

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if caller.ID != uuid.Nil {
		token, _, err := jwtpkg.GenerateToken(caller, testJWT)
		require.NoError(t, err)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var names, values []string
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	err := middleware.JWTAuthMiddleware(testJWT)(h)(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

type publicContext struct {
	ctx echo.Context
	rec *httptest.ResponseRecorder
}

func newPublicContext(t *testing.T, token string) publicContext {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shared/"+token, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues(token)
	return publicContext{ctx: c, rec: rec}
}
