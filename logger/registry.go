package logger

import (
	"reflect"
	"sync"

	"github.com/philipp01105/logcore/settings"
)

// Registry caches one Logger per subject type.
type Registry struct {
	mu       sync.RWMutex
	loggers  map[reflect.Type]*Logger
	settings func() *settings.Settings
}

// NewRegistry returns a registry whose loggers dispatch through s. A nil
// s makes the registry follow settings.Default on every call.
func NewRegistry(s *settings.Settings) *Registry {
	source := settings.Default
	if s != nil {
		source = func() *settings.Settings { return s }
	}
	return &Registry{
		loggers:  make(map[reflect.Type]*Logger),
		settings: source,
	}
}

var defaultRegistry = NewRegistry(nil)

// DefaultRegistry returns the process-wide registry. Its loggers read
// settings.Default at every call, so SetDefault takes effect immediately.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// GetLogger returns the process-wide logger for the type of subject.
// subject may be a value, a pointer or a reflect.Type.
func GetLogger(subject any) *Logger {
	return defaultRegistry.GetLogger(subject)
}

// For returns the process-wide logger for T.
func For[T any]() *Logger {
	return defaultRegistry.Get(reflect.TypeFor[T]())
}

// GetLogger returns the logger for the type of subject.
func (r *Registry) GetLogger(subject any) *Logger {
	if t, ok := subject.(reflect.Type); ok {
		return r.Get(t)
	}
	return r.Get(reflect.TypeOf(subject))
}

// Get returns the logger for t, creating it on first use. Pointer types
// share the logger of their element type. A nil t yields the "<nil>"
// logger.
func (r *Registry) Get(t reflect.Type) *Logger {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	r.mu.RLock()
	l, ok := r.loggers[t]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok = r.loggers[t]; ok {
		return l
	}
	l = &Logger{
		subject:  t,
		typeName: typeName(t),
		settings: r.settings,
	}
	r.loggers[t] = l
	return l
}

// Len returns the number of cached loggers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.loggers)
}

func typeName(t reflect.Type) string {
	switch {
	case t == nil:
		return "<nil>"
	case t.Name() == "":
		return t.String()
	case t.PkgPath() == "":
		return t.Name()
	default:
		return t.PkgPath() + "." + t.Name()
	}
}
