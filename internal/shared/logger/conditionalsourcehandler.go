package logger

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
)

const redactedValue = "[REDACTED]"

// sensitiveKeys are attribute keys whose values never reach the log output.
// Router passwords and session tokens pass through the gate use cases, so a
// stray "password", args pair must not leak them.
var sensitiveKeys = map[string]bool{
	"password":        true,
	"router_password": true,
	"token":           true,
	"session_token":   true,
	"authorization":   true,
	"cookie":          true,
}

type conditionalSourceHandler struct {
	handler          slog.Handler
	showSourceLevels map[slog.Level]bool
}

// NewConditionalSourceHandler wraps handler so that records at the given
// levels carry their call site, and values of sensitive keys are masked.
// The wrapped handler should have AddSource: false.
//
//	handler := NewConditionalSourceHandler(
//	    tint.NewHandler(os.Stdout, opts),
//	    slog.LevelWarn,
//	    slog.LevelError,
//	)
func NewConditionalSourceHandler(handler slog.Handler, showSourceForLevels ...slog.Level) slog.Handler {
	levels := make(map[slog.Level]bool, len(showSourceForLevels))
	for _, level := range showSourceForLevels {
		levels[level] = true
	}
	return &conditionalSourceHandler{
		handler:          handler,
		showSourceLevels: levels,
	}
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(redact(a))
		return true
	})

	if h.showSourceLevels[r.Level] {
		// Skip runtime.Callers, this method and the slog frame that called it.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		frame, _ := runtime.CallersFrames(pcs[:]).Next()

		out.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		}))
	}

	return h.handler.Handle(ctx, out)
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = redact(a)
	}
	return &conditionalSourceHandler{
		handler:          h.handler.WithAttrs(masked),
		showSourceLevels: h.showSourceLevels,
	}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{
		handler:          h.handler.WithGroup(name),
		showSourceLevels: h.showSourceLevels,
	}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// redact masks a sensitive attribute, descending into groups.
func redact(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		masked := make([]any, len(group))
		for i, inner := range group {
			masked[i] = redact(inner)
		}
		return slog.Group(a.Key, masked...)
	}
	if sensitiveKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, redactedValue)
	}
	return a
}
