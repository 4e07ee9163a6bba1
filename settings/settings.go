package settings

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/formatter"
	"github.com/philipp01105/logcore/handler"
)

// DefaultSeverity is the threshold used when nothing else is configured.
const DefaultSeverity = core.Error

var (
	// ErrNilFormatter is returned by SetFormatter(nil).
	ErrNilFormatter = handler.ErrNilFormatter
	// ErrInvalidSeverity is returned by SetSeverity for undefined values.
	ErrInvalidSeverity = errors.New("invalid severity")
)

// DeliveryFailure describes one handler that did not deliver an entry.
type DeliveryFailure struct {
	Handler handler.Handler
	Entry   core.Entry
	// Panic holds the recovered value when the handler panicked
	Panic any
}

// FailureFunc observes delivery failures. It runs on the logging
// goroutine and must not block.
type FailureFunc func(DeliveryFailure)

// Settings decides what gets logged and where: a severity threshold, the
// ordered handler list and the formatter handed to handlers that do not
// bring their own. All methods are safe for concurrent use.
type Settings struct {
	severity  atomic.Int32
	mu        sync.RWMutex
	formatter formatter.Formatter
	handlers  *HandlerList
	stats     *handler.Stats
	onFailure atomic.Pointer[FailureFunc]
}

// New returns settings with the built-in defaults: threshold Error, the
// text formatter and a single trace handler.
func New() *Settings {
	s := newEmpty()
	_ = s.handlers.Add(handler.NewTraceHandlerWithFormatter(nil, s.Formatter()))
	return s
}

func newEmpty() *Settings {
	s := &Settings{
		formatter: formatter.Default(),
		handlers:  newHandlerList(),
		stats:     handler.NewStats(),
	}
	s.severity.Store(int32(DefaultSeverity))
	return s
}

// Severity returns the current threshold.
func (s *Settings) Severity() core.Severity {
	return core.Severity(s.severity.Load())
}

// SetSeverity changes the threshold. Undefined severities are rejected.
func (s *Settings) SetSeverity(sev core.Severity) error {
	if !sev.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSeverity, int(sev))
	}
	s.severity.Store(int32(sev))
	return nil
}

// Enabled reports whether an entry of severity sev passes the threshold.
func (s *Settings) Enabled(sev core.Severity) bool {
	return sev.Enabled(s.Severity())
}

// Formatter returns the default formatter. It is never nil.
func (s *Settings) Formatter() formatter.Formatter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.formatter
}

// SetFormatter replaces the default formatter; nil is rejected and the
// previous formatter is kept.
func (s *Settings) SetFormatter(f formatter.Formatter) error {
	if f == nil {
		return ErrNilFormatter
	}
	s.mu.Lock()
	s.formatter = f
	s.mu.Unlock()
	return nil
}

// Handlers returns the live handler list. Mutations are visible to the
// next dispatch.
func (s *Settings) Handlers() *HandlerList {
	return s.handlers
}

// OnDeliveryFailure installs fn as the failure observer; nil removes it.
func (s *Settings) OnDeliveryFailure(fn FailureFunc) {
	if fn == nil {
		s.onFailure.Store(nil)
		return
	}
	s.onFailure.Store(&fn)
}

// ReportDelivery records the outcome of one handler call. panicValue is
// non-nil when the handler panicked.
func (s *Settings) ReportDelivery(h handler.Handler, entry core.Entry, ok bool, panicValue any) {
	switch {
	case panicValue != nil:
		s.stats.IncrementPanicked()
		s.stats.IncrementFailed()
	case ok:
		s.stats.IncrementDelivered()
		return
	default:
		s.stats.IncrementFailed()
	}

	if fn := s.onFailure.Load(); fn != nil {
		callFailure(*fn, DeliveryFailure{Handler: h, Entry: entry, Panic: panicValue})
	}
}

func callFailure(fn FailureFunc, f DeliveryFailure) {
	defer func() { _ = recover() }()
	fn(f)
}

// Stats returns dispatch counters across all handlers.
func (s *Settings) Stats() handler.Snapshot {
	return s.stats.GetSnapshot()
}

// ResetStats zeroes the dispatch counters.
func (s *Settings) ResetStats() {
	s.stats.Reset()
}

// Close closes every handler that holds resources.
func (s *Settings) Close() error {
	var errs []error
	for _, h := range s.handlers.Snapshot() {
		if c, ok := h.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
