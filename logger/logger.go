package logger

import (
	"reflect"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/handler"
	"github.com/philipp01105/logcore/settings"
)

// Logger emits entries tagged with the name of its subject type. Loggers
// are obtained from a Registry and are safe for concurrent use.
type Logger struct {
	subject  reflect.Type
	typeName string
	settings func() *settings.Settings
}

// TypeName returns the package-qualified name stamped on every entry
func (l *Logger) TypeName() string {
	return l.typeName
}

// Subject returns the type the logger was created for
func (l *Logger) Subject() reflect.Type {
	return l.subject
}

// Settings returns the settings the logger currently dispatches through
func (l *Logger) Settings() *settings.Settings {
	return l.settings()
}

// Enabled reports whether an entry of severity sev would be dispatched
func (l *Logger) Enabled(sev core.Severity) bool {
	return l.settings().Enabled(sev)
}

// Log formats template with args and dispatches it at severity sev
func (l *Logger) Log(sev core.Severity, template string, args ...any) {
	s := l.settings()
	if !s.Enabled(sev) {
		return
	}
	l.dispatch(s, core.NewEntry(sev, l.typeName, formatMessage(template, args)))
}

// Debug logs a debug message
func (l *Logger) Debug(template string, args ...any) {
	l.Log(core.Debug, template, args...)
}

// Info logs an info message
func (l *Logger) Info(template string, args ...any) {
	l.Log(core.Info, template, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(template string, args ...any) {
	l.Log(core.Warn, template, args...)
}

// Error logs an error message
func (l *Logger) Error(template string, args ...any) {
	l.Log(core.Error, template, args...)
}

// Critical logs a critical message
func (l *Logger) Critical(template string, args ...any) {
	l.Log(core.Critical, template, args...)
}

// logMessage dispatches an already formatted message
func (l *Logger) logMessage(sev core.Severity, msg string) {
	s := l.settings()
	if !s.Enabled(sev) {
		return
	}
	l.dispatch(s, core.NewEntry(sev, l.typeName, msg))
}

// dispatch hands entry to every handler in order. A handler that fails
// or panics is reported and skipped; the caller never sees it.
func (l *Logger) dispatch(s *settings.Settings, entry core.Entry) {
	for _, h := range s.Handlers().Snapshot() {
		ok, recovered := write(h, entry)
		s.ReportDelivery(h, entry, ok, recovered)
	}
}

func write(h handler.Handler, entry core.Entry) (ok bool, recovered any) {
	defer func() {
		if r := recover(); r != nil {
			ok, recovered = false, r
		}
	}()
	return h.Write(entry), nil
}
