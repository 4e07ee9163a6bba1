package settings

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/philipp01105/logcore/handler"
)

var (
	// ErrNilHandler is returned when a nil handler is added to a HandlerList.
	ErrNilHandler = errors.New("handler must not be nil")
	// ErrUncomparableHandler is returned for handlers that cannot be
	// matched by Remove or Contains, such as struct values holding a slice.
	ErrUncomparableHandler = errors.New("handler type is not comparable")
)

// HandlerList is the ordered, concurrency-safe set of handlers entries are
// dispatched to. Mutations copy the backing slice, so a Snapshot taken by
// a dispatching goroutine is never modified underneath it.
type HandlerList struct {
	mu    sync.RWMutex
	items []handler.Handler
}

func newHandlerList(hs ...handler.Handler) *HandlerList {
	return &HandlerList{items: slices.Clone(hs)}
}

// Add appends h. A nil handler is rejected and the list is left unchanged.
func (l *HandlerList) Add(h handler.Handler) error {
	if err := check(h); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	next := make([]handler.Handler, len(l.items), len(l.items)+1)
	copy(next, l.items)
	l.items = append(next, h)
	return nil
}

// Insert places h at index i, clamped to the list bounds.
func (l *HandlerList) Insert(i int, h handler.Handler) error {
	if err := check(h); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	i = max(0, min(i, len(l.items)))
	l.items = slices.Insert(slices.Clone(l.items), i, h)
	return nil
}

// Remove deletes the first occurrence of h and reports whether it was found.
func (l *HandlerList) Remove(h handler.Handler) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := slices.IndexFunc(l.items, func(item handler.Handler) bool { return same(item, h) })
	if i < 0 {
		return false
	}
	l.items = slices.Delete(slices.Clone(l.items), i, i+1)
	return true
}

// Replace swaps the whole list. If any handler is nil nothing changes.
func (l *HandlerList) Replace(hs ...handler.Handler) error {
	for _, h := range hs {
		if err := check(h); err != nil {
			return err
		}
	}
	l.mu.Lock()
	l.items = slices.Clone(hs)
	l.mu.Unlock()
	return nil
}

// Clear removes every handler.
func (l *HandlerList) Clear() {
	l.mu.Lock()
	l.items = nil
	l.mu.Unlock()
}

// Contains reports whether h is in the list.
func (l *HandlerList) Contains(h handler.Handler) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.ContainsFunc(l.items, func(item handler.Handler) bool { return same(item, h) })
}

// Len returns the number of handlers.
func (l *HandlerList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Snapshot returns the current handlers in dispatch order. The returned
// slice must not be modified.
func (l *HandlerList) Snapshot() []handler.Handler {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items
}

func check(h handler.Handler) error {
	if isNil(h) {
		return ErrNilHandler
	}
	if !reflect.TypeOf(h).Comparable() {
		return fmt.Errorf("%w: %T", ErrUncomparableHandler, h)
	}
	return nil
}

// same reports whether a and b are the same handler. Values whose dynamic
// types differ or cannot be compared never match.
func same(a, b handler.Handler) (eq bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	// a comparable struct may still hold an interface field with an
	// uncomparable value
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// isNil catches both a nil interface and a typed nil pointer.
func isNil(h handler.Handler) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
