package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/models"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// StatusFromError maps domain errors to HTTP status codes
func StatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrUnsupportedTransition),
		errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrPaymentFailed):
		return http.StatusPaymentRequired
	case IsConnectivityError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// DomainErrorResponse answers with the status mapped from err. Internal errors
// are replaced by fallback so storage details never reach the client.
func DomainErrorResponse(c echo.Context, err error, fallback string) error {
	status := StatusFromError(err)
	msg := err.Error()
	switch status {
	case http.StatusInternalServerError:
		msg = fallback
	case http.StatusServiceUnavailable:
		msg = CannotConnectMessage
	}
	return ErrorResponseHandler(c, status, msg)
}

// ResultResponse writes an adapter envelope as is, with the status mapped from
// its cause when it failed
func ResultResponse[T any](c echo.Context, successStatus int, result models.Result[T]) error {
	if result.Success {
		return c.JSON(successStatus, result)
	}
	status := StatusFromError(result.Err)
	if result.Err == nil {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, result)
}

// HTTPErrorHandler renders every unhandled error, including unknown routes,
// as a JSON envelope
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := "Internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		msg = fmt.Sprintf("%v", he.Message)
		if status == http.StatusNotFound {
			msg = "Page not found"
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = ErrorResponseHandler(c, status, msg)
}
