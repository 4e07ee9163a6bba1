package formatter

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// ErrUnknownFormatter is returned by New for names nobody registered.
var ErrUnknownFormatter = errors.New("unknown formatter")

// Constructor builds a formatter for a configuration name.
type Constructor func() Formatter

var (
	registryMu sync.RWMutex
	registry   = map[string]Constructor{
		"text":    func() Formatter { return NewTextFormatter(Config{}) },
		"default": func() Formatter { return NewTextFormatter(Config{}) },
		"json":    func() Formatter { return NewJSONFormatter(Config{}) },
		"message": func() Formatter { return NewMessageFormatter() },
	}
)

// Register makes a formatter available to configuration under name.
// Registering an existing name replaces it.
func Register(name string, ctor Constructor) {
	if ctor == nil {
		panic("formatter: Register called with nil constructor for " + name)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(name)] = ctor
}

// New returns a fresh formatter for name. Names are case-insensitive.
func New(name string) (Formatter, error) {
	registryMu.RLock()
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormatter, name)
	}
	return ctor(), nil
}

// Names returns the registered formatter names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(maps.Keys(registry))
}
