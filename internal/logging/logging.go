// Package logging builds the structured logger the CLI hands to the
// scheduler core, the way pkg/logger builds the request logger in the
// broader school-administration examples this CLI was built beside.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a *zap.SugaredLogger at the given level ("debug", "info",
// "warn", "error") and format ("console" or "json"). An unrecognized
// level falls back to info rather than failing CLI startup over a typo.
func New(level, format string) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if format == "json" {
		cfg = zap.NewProductionConfig()
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
