package transend

import (
	"github.com/effective-security/xlog"
)

// leveledLogger routes retryablehttp logs to the package logger
type leveledLogger struct{}

func (leveledLogger) Error(msg string, keysAndValues ...any) {
	logger.KV(xlog.ERROR, append([]any{"msg", msg}, keysAndValues...)...)
}

func (leveledLogger) Warn(msg string, keysAndValues ...any) {
	logger.KV(xlog.WARNING, append([]any{"msg", msg}, keysAndValues...)...)
}

func (leveledLogger) Info(msg string, keysAndValues ...any) {
	// retryablehttp logs every attempt at Info
	logger.KV(xlog.DEBUG, append([]any{"msg", msg}, keysAndValues...)...)
}

func (leveledLogger) Debug(msg string, keysAndValues ...any) {
	logger.KV(xlog.TRACE, append([]any{"msg", msg}, keysAndValues...)...)
}
