package utils

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/piresc/pullup/internal/pkg/models"
)

// CannotConnectMessage replaces every connectivity failure shown to users
const CannotConnectMessage = "Cannot connect to the database. The data service may be paused or unavailable. Please try again later."

// IsConnectivityError reports whether err means the backing store could not be reached
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "failed to fetch") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "i/o timeout")
}

// AdapterError turns err into the display message of an adapter envelope.
// Connectivity failures share one message; domain errors keep their own text;
// anything else becomes fallback.
func AdapterError(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case IsConnectivityError(err):
		return CannotConnectMessage
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrForbidden),
		errors.Is(err, models.ErrConflict),
		errors.Is(err, models.ErrPaymentFailed):
		return err.Error()
	default:
		return fallback
	}
}

// AdapterResult builds a failed envelope for err
func AdapterResult[T any](err error, fallback string) models.Result[T] {
	return models.Fail[T](AdapterError(err, fallback), err)
}
