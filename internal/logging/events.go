package logging

import (
	"context"
	"log/slog"
)

const (
	defaultErrorHint = "check logview's own log for details"
	defaultImpact    = "the logs view may be incomplete"
)

// WarnWithContext logs a warning that always carries event_type, error_hint
// and impact. Fields already present in attrs win over the defaults.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	logEvent(logger, slog.LevelWarn, msg, eventType, attrs, true)
}

// ErrorWithContext logs an error that always carries event_type and error_hint.
func ErrorWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	logEvent(logger, slog.LevelError, msg, eventType, attrs, false)
}

func logEvent(logger *slog.Logger, level slog.Level, msg, eventType string, attrs []Attr, withImpact bool) {
	if logger == nil {
		return
	}
	present := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		present[a.Key] = true
	}
	out := make([]Attr, 0, len(attrs)+3)
	out = append(out, attrs...)
	if !present[FieldEventType] {
		out = append(out, String(FieldEventType, eventType))
	}
	if !present[FieldErrorHint] {
		out = append(out, String(FieldErrorHint, defaultErrorHint))
	}
	if withImpact && !present[FieldImpact] {
		out = append(out, String(FieldImpact, defaultImpact))
	}
	logger.LogAttrs(context.Background(), level, msg, out...)
}
