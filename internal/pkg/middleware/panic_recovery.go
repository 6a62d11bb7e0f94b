package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/utils"
	"go.uber.org/zap"
)

// PanicRecoveryWithZapMiddleware recovers handler panics, logs them with the
// stack trace, notices them in New Relic and answers with a 500 envelope
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryWithZapMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				userID := "anonymous"
				if uid := c.Get(userIDKey); uid != nil {
					userID = fmt.Sprintf("%v", uid)
				}

				zapLogger.Error("Panic recovered",
					zap.Any("panic_value", r),
					zap.String("panic_type", fmt.Sprintf("%T", r)),
					zap.String("stack_trace", string(debug.Stack())),
					zap.String("method", c.Request().Method),
					zap.String("path", c.Request().URL.Path),
					zap.String("user_id", userID),
					zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				)

				if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
					txn.NoticeError(newrelic.Error{
						Message: fmt.Sprintf("%v", r),
						Class:   "Panic",
					})
				}

				if !c.Response().Committed {
					err = utils.InternalServerErrorResponse(c, "Internal server error")
				}
			}()

			return next(c)
		}
	}
}
