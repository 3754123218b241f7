package logger

import (
	"context"

	"go.uber.org/zap"
)

// Logger is the printf-style logger used across the service.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})

	// Zap exposes the underlying logger for middleware that wants structured fields.
	Zap() *zap.Logger
}
