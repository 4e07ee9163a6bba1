package handler

import (
	"sync/atomic"

	"github.com/philipp01105/logcore/core"
)

// OverflowPolicy defines how to handle full async queues
type OverflowPolicy int

const (
	// DropNewest drops the newest log entry when queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest drops the oldest log entry when queue is full
	DropOldest
	// Block blocks the caller until space is available (with timeout)
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// DefaultSeverityPolicy returns the default severity-based overflow policies
func DefaultSeverityPolicy() map[core.Severity]OverflowPolicy {
	return map[core.Severity]OverflowPolicy{
		core.Debug:    DropNewest,
		core.Info:     DropNewest,
		core.Warn:     DropNewest,
		core.Error:    Block,
		core.Critical: Block,
	}
}

// Stats tracks delivery statistics. All methods are safe for concurrent use.
type Stats struct {
	delivered atomic.Uint64
	failed    atomic.Uint64
	panicked  atomic.Uint64
	dropped   [len(core.Severities)]atomic.Uint64
	blocked   atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDelivered counts one successfully delivered entry
func (s *Stats) IncrementDelivered() {
	s.delivered.Add(1)
}

// IncrementFailed counts one entry a handler reported as not delivered
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// IncrementPanicked counts one handler call that panicked
func (s *Stats) IncrementPanicked() {
	s.panicked.Add(1)
}

// IncrementDropped counts one entry discarded by an overflow policy
func (s *Stats) IncrementDropped(severity core.Severity) {
	if !severity.Valid() {
		severity = core.Critical
	}
	s.dropped[severity].Add(1)
}

// IncrementBlocked counts one time a caller blocked on a full queue
func (s *Stats) IncrementBlocked() {
	s.blocked.Add(1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.delivered.Store(0)
	s.failed.Store(0)
	s.panicked.Store(0)
	s.blocked.Store(0)
	for i := range s.dropped {
		s.dropped[i].Store(0)
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Delivered uint64
	Failed    uint64
	Panicked  uint64
	Dropped   map[core.Severity]uint64
	Blocked   uint64
}

// TotalDropped sums dropped entries across all severities
func (s Snapshot) TotalDropped() uint64 {
	var total uint64
	for _, n := range s.Dropped {
		total += n
	}
	return total
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	dropped := make(map[core.Severity]uint64, len(core.Severities))
	for _, sev := range core.Severities {
		dropped[sev] = s.dropped[sev].Load()
	}
	return Snapshot{
		Delivered: s.delivered.Load(),
		Failed:    s.failed.Load(),
		Panicked:  s.panicked.Load(),
		Dropped:   dropped,
		Blocked:   s.blocked.Load(),
	}
}
