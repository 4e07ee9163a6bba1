package handler

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/formatter"
)

// ConsoleHandler writes log entries to stdout/stderr or any io.Writer.
//
// In async mode Write only enqueues the entry; a background goroutine
// performs the actual I/O in FIFO order. A full queue is resolved by the
// per-severity OverflowPolicy, so a slow terminal never stalls the
// dispatch loop of the caller for longer than BlockTimeout.
type ConsoleHandler struct {
	Base
	writer         io.Writer
	mu             sync.Mutex // serializes writer access
	async          bool
	queue          chan core.Entry
	wg             sync.WaitGroup
	sendMu         sync.RWMutex // guards closed against in-flight enqueues
	closed         bool
	done           chan struct{}
	overflowPolicy map[core.Severity]OverflowPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration
	stats          *Stats
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Async enables asynchronous logging (default: false)
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-severity overflow behavior (default: DefaultSeverityPolicy)
	OverflowPolicy map[core.Severity]OverflowPolicy
	// BlockTimeout is the timeout for blocking overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultSeverityPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer:         cfg.Writer,
		async:          cfg.Async,
		done:           make(chan struct{}),
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		stats:          NewStats(),
	}
	h.initBase(cfg.Formatter)

	if h.async {
		h.queue = make(chan core.Entry, cfg.BufferSize)
		h.wg.Add(1)
		go h.process()
	}

	return h
}

// Write implements Handler
func (h *ConsoleHandler) Write(entry core.Entry) bool {
	if !h.async {
		return h.write(entry)
	}

	h.sendMu.RLock()
	defer h.sendMu.RUnlock()
	if h.closed {
		return h.write(entry)
	}
	return h.enqueue(entry)
}

// enqueue applies the overflow policy for the entry's severity.
// The caller holds sendMu for reading.
func (h *ConsoleHandler) enqueue(entry core.Entry) bool {
	policy, ok := h.overflowPolicy[entry.Severity]
	if !ok {
		policy = DropNewest
	}

	switch policy {
	case Block:
		select {
		case h.queue <- entry:
			return true
		default:
		}
		timer := time.NewTimer(h.blockTimeout)
		defer timer.Stop()
		select {
		case h.queue <- entry:
			return true
		case <-timer.C:
			// Timeout - fall back to synchronous write
			h.stats.IncrementBlocked()
			return h.write(entry)
		}

	case DropOldest:
		select {
		case h.queue <- entry:
			return true
		default:
		}
		select {
		case <-h.queue: // Remove oldest
			h.stats.IncrementDropped(entry.Severity)
		default:
		}
		select {
		case h.queue <- entry:
			return true
		default:
			// Still full, drop this one
			h.stats.IncrementDropped(entry.Severity)
			return false
		}

	default:
		select {
		case h.queue <- entry:
			return true
		default:
			h.stats.IncrementDropped(entry.Severity)
			return false
		}
	}
}

// write formats and writes an entry
func (h *ConsoleHandler) write(entry core.Entry) bool {
	line, err := h.Render(entry)
	if err != nil {
		h.stats.IncrementFailed()
		return false
	}

	h.mu.Lock()
	_, err = io.WriteString(h.writer, line+"\n")
	h.mu.Unlock()

	if err != nil {
		h.stats.IncrementFailed()
		return false
	}
	h.stats.IncrementDelivered()
	return true
}

// process handles async log processing
func (h *ConsoleHandler) process() {
	defer h.wg.Done()

	for {
		select {
		case entry := <-h.queue:
			h.write(entry)
		case <-h.done:
			// Drain remaining entries with timeout
			deadline := time.After(h.drainTimeout)
			for {
				select {
				case entry := <-h.queue:
					h.write(entry)
				case <-deadline:
					return
				default:
					return
				}
			}
		}
	}
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close drains the async queue and stops the background goroutine. It is
// safe to call more than once; later Writes are delivered synchronously.
func (h *ConsoleHandler) Close() error {
	if !h.async {
		return nil
	}

	h.sendMu.Lock()
	if h.closed {
		h.sendMu.Unlock()
		return nil
	}
	h.closed = true
	h.sendMu.Unlock()

	close(h.done)
	h.wg.Wait()
	return nil
}
