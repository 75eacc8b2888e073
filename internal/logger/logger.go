package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level       string
	Environment string
}

// ParseLevel maps a config string to a zap level, defaulting to info
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a logger: JSON with ISO8601 timestamps in production,
// colourised console output otherwise.
func New(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(ParseLevel(cfg.Level))

	if cfg.Environment == "production" {
		prodConfig := zap.NewProductionConfig()
		prodConfig.Level = level
		prodConfig.EncoderConfig.TimeKey = "timestamp"
		prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return prodConfig.Build(zap.Fields(zap.String("service", "dashmock")))
	}

	devConfig := zap.NewDevelopmentConfig()
	devConfig.Level = level
	devConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	// stack traces on every warning drown out the summary
	devConfig.DisableStacktrace = true
	return devConfig.Build()
}
