// Package logging строит *slog.Logger по конфигурации.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iudanet/carddavsync/internal/config"
)

// Logger логгер и закрытие файла журнала
type Logger struct {
	*slog.Logger
	closer io.Closer
}

// Close закрывает файл журнала, если он открыт
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// New создаёт логгер. Пустой cfg.File означает запись в stderr.
func New(cfg config.LogConfig) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer
	)
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		w, closer = lj, lj
	}

	return &Logger{
		Logger: slog.New(NewHandler(w, cfg.Format, level)),
		closer: closer,
	}, nil
}

// NewHandler создаёт text или json обработчик
func NewHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redact,
	}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel converts a string to slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// sensitiveKeys атрибуты, значения которых не попадают в журнал
var sensitiveKeys = map[string]struct{}{
	"password":   {},
	"secret":     {},
	"token":      {},
	"passphrase": {},
}

// redact скрывает секреты и userinfo в URL
func redact(_ []string, a slog.Attr) slog.Attr {
	if _, ok := sensitiveKeys[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, "[redacted]")
	}
	if a.Value.Kind() != slog.KindString || !strings.Contains(a.Key, "url") {
		return a
	}
	u, err := url.Parse(a.Value.String())
	if err != nil || u.User == nil {
		return a
	}
	u.User = nil
	return slog.String(a.Key, u.String())
}
