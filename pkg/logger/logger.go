package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is an interface for logging
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

// ZapLogger is a concrete implementation using zap
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// NewLogger creates a new logger instance. Production gets JSON output,
// everything else the console encoder. The level string ("debug", "info",
// "warn", "error") overrides the encoder's default; empty or unparseable
// levels fall back to it.
func NewLogger(env, level string) Logger {
	var cfg zap.Config
	var fallback zapcore.Level

	if env == "production" {
		cfg = zap.NewProductionConfig()
		fallback = zapcore.InfoLevel
	} else {
		cfg = zap.NewDevelopmentConfig()
		fallback = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level, fallback))

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}

	return &ZapLogger{
		logger: l.Sugar(),
	}
}

func parseLevel(level string, fallback zapcore.Level) zapcore.Level {
	if level == "" {
		return fallback
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return fallback
	}
	return parsed
}

func (l *ZapLogger) Info(msg string, args ...any) {
	l.logger.Infow(msg, args...)
}

func (l *ZapLogger) Error(msg string, args ...any) {
	l.logger.Errorw(msg, args...)
}

func (l *ZapLogger) Debug(msg string, args ...any) {
	l.logger.Debugw(msg, args...)
}

func (l *ZapLogger) Warn(msg string, args ...any) {
	l.logger.Warnw(msg, args...)
}
