package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/philipp01105/logcore/core"
)

// SlogHandler adapts a Logger to slog.Handler so code written against
// log/slog ends up in the same severity gate and handler list.
type SlogHandler struct {
	logger *Logger
	attrs  string
	group  string
}

// NewSlogHandler returns a slog.Handler that logs through l.
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// NewSlog returns a *slog.Logger backed by l.
func NewSlog(l *Logger) *slog.Logger {
	return slog.New(NewSlogHandler(l))
}

// Enabled reports whether records at level pass the logger's threshold.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Enabled(slogLevelToSeverity(level))
}

// Handle renders the record as "<message> key=value..." and dispatches it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	sev := slogLevelToSeverity(record.Level)
	if !s.logger.Enabled(sev) {
		return nil
	}

	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})

	s.logger.logMessage(sev, b.String())
	return nil
}

// WithAttrs returns a handler that appends attrs to every record.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	return &SlogHandler{logger: s.logger, attrs: b.String(), group: s.group}
}

// WithGroup returns a handler that prefixes later attribute keys with name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	group := name
	if s.group != "" {
		group = s.group + "." + name
	}
	return &SlogHandler{logger: s.logger, attrs: s.attrs, group: group}
}

// slogLevelToSeverity maps slog levels onto severities; anything at or
// above LevelError+4 is Critical.
func slogLevelToSeverity(level slog.Level) core.Severity {
	switch {
	case level >= slog.LevelError+4:
		return core.Critical
	case level >= slog.LevelError:
		return core.Error
	case level >= slog.LevelWarn:
		return core.Warn
	case level >= slog.LevelInfo:
		return core.Info
	default:
		return core.Debug
	}
}

func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	fmt.Fprint(b, a.Value.Any())
}
