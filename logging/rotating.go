package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// RotatingWriter writes to a per-ISO-week log file, rotating when the
// week changes or the size cap is reached, and deletes files older
// than the retention period.
type RotatingWriter struct {
	logDir      string
	retention   time.Duration
	maxFileSize int64

	mu          sync.Mutex
	currentFile *os.File
	currentWeek string
	currentSize int64

	ctx    context.Context
	cancel context.CancelFunc
}

// NewRotatingWriter creates a rotating writer for logDir.
func NewRotatingWriter(logDir string, retentionWeeks int, maxFileSize int64) *RotatingWriter {
	ctx, cancel := context.WithCancel(context.Background())
	return &RotatingWriter{
		logDir:      logDir,
		retention:   time.Duration(retentionWeeks) * 7 * 24 * time.Hour,
		maxFileSize: maxFileSize,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// weekKey returns the ISO week key in YYYY-Www format.
func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// rotate opens a fresh file for the target week. Caller holds mu.
func (rw *RotatingWriter) rotate(targetWeek string, sized bool) error {
	if rw.currentFile != nil {
		if err := rw.currentFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file during rotation: %v\n", err)
		}
	}

	name := fmt.Sprintf("medivoice-%s.log", targetWeek)
	if sized {
		// Size-based rotation within the same week gets a timestamped name
		name = fmt.Sprintf("medivoice-%s_%d.log", targetWeek, time.Now().Unix())
	}

	file, err := os.OpenFile(filepath.Join(rw.logDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", name, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to stat log file %s: %w", name, err)
	}

	rw.currentFile = file
	rw.currentWeek = targetWeek
	rw.currentSize = info.Size()
	return nil
}

// Write implements io.Writer for slog handlers.
func (rw *RotatingWriter) Write(p []byte) (int, error) {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	week := weekKey(time.Now())
	switch {
	case rw.currentFile == nil || rw.currentWeek != week:
		if err := rw.rotate(week, false); err != nil {
			return 0, err
		}
	case rw.maxFileSize > 0 && rw.currentSize+int64(len(p)) > rw.maxFileSize:
		if err := rw.rotate(week, true); err != nil {
			return 0, err
		}
	}

	n, err := rw.currentFile.Write(p)
	rw.currentSize += int64(n)
	return n, err
}

// cleanupOldLogs deletes log files past the retention period.
func (rw *RotatingWriter) cleanupOldLogs() error {
	entries, err := os.ReadDir(rw.logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	cutoff := time.Now().Add(-rw.retention)
	deleted := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "medivoice-") || !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(rw.logDir, entry.Name())); err == nil {
				deleted++
			}
		}
	}

	if deleted > 0 {
		// Console only, to avoid writing through the rotator itself
		fmt.Printf("Cleaned up %d old log files\n", deleted)
	}

	return nil
}

// Close stops the cleanup goroutine and closes the current file.
func (rw *RotatingWriter) Close() error {
	rw.cancel()

	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.currentFile != nil {
		err := rw.currentFile.Close()
		rw.currentFile = nil
		return err
	}
	return nil
}

// parseLevel maps a LOG_LEVEL string to its slog level, defaulting to
// info for anything unrecognized.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// SetupLogger configures slog with a text console handler and a JSON
// rotating file handler, both filtering at the given level. If the log
// directory cannot be created it degrades to console-only logging.
func SetupLogger(logDir, level string, retentionWeeks int, maxFileSize int64) (*slog.Logger, *RotatingWriter) {
	minLevel := parseLevel(level)

	console := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: minLevel,
	})

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logger := slog.New(console)
		logger.Error("Failed to create logs directory, logging to console only", "error", err)
		return logger, nil
	}

	rotator := NewRotatingWriter(logDir, retentionWeeks, maxFileSize)

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-rotator.ctx.Done():
				return
			case <-ticker.C:
				if err := rotator.cleanupOldLogs(); err != nil {
					fmt.Fprintf(os.Stderr, "log cleanup failed: %v\n", err)
				}
			}
		}
	}()

	file := slog.NewJSONHandler(rotator, &slog.HandlerOptions{
		Level: minLevel,
	})

	return slog.New(&multiHandler{handlers: []slog.Handler{console, file}}), rotator
}

// multiHandler fans a record out to every underlying handler.
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}
