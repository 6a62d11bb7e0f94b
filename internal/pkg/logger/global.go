package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	once         sync.Once
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance
// This should be called once during application startup
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance, or a production default
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	once.Do(func() {
		if globalLogger == nil {
			defaultLogger, _ := zap.NewProduction()
			globalLogger = &ZapLogger{Logger: defaultLogger}
		}
	})
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// InfoCtx logs with trace correlation when the context carries a New Relic transaction
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().WithNewRelicContext(newrelic.FromContext(ctx)).Info(msg, fields...)
}

// WarnCtx is the context-aware variant of Warn
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().WithNewRelicContext(newrelic.FromContext(ctx)).Warn(msg, fields...)
}

// ErrorCtx is the context-aware variant of Error
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().WithNewRelicContext(newrelic.FromContext(ctx)).Error(msg, fields...)
}
