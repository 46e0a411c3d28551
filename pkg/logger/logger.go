// Package logger builds the structured loggers used by the checksum service
// and command line tools.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production logger at info level tagged with the service name.
func New(service string) *zap.SugaredLogger {
	log, err := NewWithLevel(service, "info")
	if err != nil {
		return NewNop()
	}
	return log
}

// NewWithLevel returns a production logger at the given level
// ("debug", "info", "warn", "error").
func NewWithLevel(service, level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.InitialFields = map[string]any{"service": service}

	log, err := config.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}

// NewDevelopment returns a human readable logger for local runs.
func NewDevelopment(service string) *zap.SugaredLogger {
	log, err := zap.NewDevelopment()
	if err != nil {
		return NewNop()
	}
	return log.Sugar().With("service", service)
}

// NewNop returns a logger that discards everything.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
