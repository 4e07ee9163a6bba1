package handler

import (
	"errors"
	"fmt"
	"sync"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/formatter"
)

// ErrNilFormatter is returned when a nil formatter is assigned to a handler.
var ErrNilFormatter = errors.New("formatter must not be nil")

// Handler defines the contract for log sinks
type Handler interface {
	// Write formats the entry with the handler's own formatter, attempts
	// delivery and reports whether it succeeded. Write must not panic.
	Write(entry core.Entry) bool

	// Formatter returns the formatter currently owned by the handler.
	// It is never nil.
	Formatter() formatter.Formatter

	// SetFormatter replaces the formatter. A nil formatter is rejected
	// with ErrNilFormatter and leaves the handler unchanged.
	SetFormatter(f formatter.Formatter) error
}

// Base carries the formatter slot shared by every built-in handler.
// Custom handlers can embed it to satisfy the Formatter half of the
// Handler interface. The zero value uses formatter.Default.
type Base struct {
	mu sync.RWMutex
	f  formatter.Formatter
}

// Formatter returns the handler's formatter, installing the default on
// first use.
func (b *Base) Formatter() formatter.Formatter {
	b.mu.RLock()
	f := b.f
	b.mu.RUnlock()
	if f != nil {
		return f
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.f == nil {
		b.f = formatter.Default()
	}
	return b.f
}

// SetFormatter replaces the formatter; nil is rejected.
func (b *Base) SetFormatter(f formatter.Formatter) error {
	if f == nil {
		return ErrNilFormatter
	}
	b.mu.Lock()
	b.f = f
	b.mu.Unlock()
	return nil
}

// Render formats entry with the handler's formatter. A formatter that
// panics is reported as an error instead of unwinding into the caller.
func (b *Base) Render(entry core.Entry) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("formatter panic: %v", r)
		}
	}()
	return b.Formatter().Format(entry), nil
}

// initBase sets f when it is non-nil; used by constructors taking an
// optional formatter from their config.
func (b *Base) initBase(f formatter.Formatter) {
	if f != nil {
		b.f = f
	}
}
