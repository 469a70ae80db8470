// Package logging provides the slog-based logging service for the
// MediVoice API: a global logger writing to console and a rotating
// weekly log file, plus the HTTP request-logging middleware.
package logging

import (
	"log/slog"
	"os"
)

// Service wraps the configured slog logger.
type Service struct {
	Logger  *slog.Logger
	rotator *RotatingWriter
}

// Default is the process-wide logging service.
var Default *Service

// Init configures the global logger writing to logDir at the given
// minimum level.
func Init(logDir, level string, retentionWeeks int, maxFileSize int64) {
	logger, rotator := SetupLogger(logDir, level, retentionWeeks, maxFileSize)
	Default = &Service{Logger: logger, rotator: rotator}
	slog.SetDefault(logger)
}

// Close releases the log file held by the global service.
func Close() {
	if Default != nil && Default.rotator != nil {
		if err := Default.rotator.Close(); err != nil {
			slog.Warn("Failed to close log file", "error", err)
		}
	}
}

// fallback returns a console logger used before Init has run.
func fallback(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// Package-level functions for direct access

func Info(msg string, args ...any) {
	if Default == nil || Default.Logger == nil {
		fallback(slog.LevelInfo).Info(msg, args...)
		return
	}
	Default.Logger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	if Default == nil || Default.Logger == nil {
		fallback(slog.LevelWarn).Warn(msg, args...)
		return
	}
	Default.Logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	if Default == nil || Default.Logger == nil {
		fallback(slog.LevelError).Error(msg, args...)
		return
	}
	Default.Logger.Error(msg, args...)
}

func Debug(msg string, args ...any) {
	if Default == nil || Default.Logger == nil {
		fallback(slog.LevelDebug).Debug(msg, args...)
		return
	}
	Default.Logger.Debug(msg, args...)
}
