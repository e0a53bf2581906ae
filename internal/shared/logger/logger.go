package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"ispdesk/internal/shared/config"
)

var (
	mu   sync.Mutex
	root *slog.Logger
	// file is the log file opened by Init, nil when writing to stdout/stderr.
	file *os.File
)

// Init configures the process-wide slog logger. Warnings and errors carry
// their source location, and in debug mode every level does.
func Init(cfg *config.LoggerConfig, debug bool) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}

	w, f, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}

	sourceLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if debug {
		sourceLevels = append(sourceLevels, slog.LevelDebug, slog.LevelInfo)
	}
	l := slog.New(NewConditionalSourceHandler(newBaseHandler(w, cfg.Format, level), sourceLevels...))

	mu.Lock()
	if file != nil {
		_ = file.Close()
	}
	root, file = l, f
	mu.Unlock()

	slog.SetDefault(l)
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func openOutput(path string) (io.Writer, *os.File, error) {
	switch strings.ToLower(path) {
	case "", "stdout":
		return os.Stdout, nil, nil
	case "stderr":
		return os.Stderr, nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f, nil
}

// newBaseHandler picks JSON for "json" and tint's console output otherwise.
// Colors are only used on a terminal.
func newBaseHandler(w io.Writer, format string, level slog.Leveler) slog.Handler {
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:       level,
		TimeFormat:  time.DateTime,
		NoColor:     !isTerminal(w),
		ReplaceAttr: highlightErrors,
	})
}

// highlightErrors renders "error" attributes with tint's error styling.
func highlightErrors(_ []string, a slog.Attr) slog.Attr {
	if a.Key == "error" && a.Value.Kind() == slog.KindAny {
		if err, ok := a.Value.Any().(error); ok {
			return tint.Err(err)
		}
	}
	return a
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Get returns the logger built by Init, or a console logger at info level
// when Init has not run.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if root == nil {
		root = slog.New(NewConditionalSourceHandler(
			newBaseHandler(os.Stdout, "console", slog.LevelInfo),
			slog.LevelWarn, slog.LevelError,
		))
	}
	return root
}

// Sync flushes the log file, if any.
func Sync() error {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return nil
	}
	return file.Sync()
}
