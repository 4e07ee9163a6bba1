package logger

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/philipp01105/logcore/core"
)

// Profiler times a scoped operation and logs START, progress and FINISH
// markers through its parent logger. A profiler is meant for use by one
// goroutine; Close is safe to call from any number of them.
type Profiler struct {
	identifier string
	uid        uuid.UUID
	parent     *Logger
	severity   core.Severity
	start      time.Time

	mu       sync.Mutex
	disposed bool
	elapsed  time.Duration
}

// ProfilerStart starts a profiler that logs its markers at Debug.
func (l *Logger) ProfilerStart(identifier string) *Profiler {
	return l.ProfilerStartAt(core.Debug, identifier)
}

// ProfilerStartAt starts a profiler that logs its markers at sev.
func (l *Logger) ProfilerStartAt(sev core.Severity, identifier string) *Profiler {
	p := &Profiler{
		identifier: identifier,
		uid:        uuid.New(),
		parent:     l,
		severity:   sev,
		start:      time.Now(),
	}
	l.logMessage(sev, identifier+" START")
	return p
}

// Profile runs fn inside a profiler and closes it on every exit path.
// A panic in fn is re-raised after the FINISH marker is logged.
func (l *Logger) Profile(identifier string, fn func(p *Profiler) error) error {
	p := l.ProfilerStart(identifier)
	defer p.Close()
	return fn(p)
}

// Identifier returns the label used in every marker
func (p *Profiler) Identifier() string { return p.identifier }

// UID returns the unique id of this profiler run
func (p *Profiler) UID() uuid.UUID { return p.uid }

// Parent returns the logger the profiler writes through
func (p *Profiler) Parent() *Logger { return p.parent }

// StartTime returns when the profiler was started
func (p *Profiler) StartTime() time.Time { return p.start }

// Severity returns the severity of the START and FINISH markers
func (p *Profiler) Severity() core.Severity { return p.severity }

// IsDisposed reports whether Close has been called
func (p *Profiler) IsDisposed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.disposed
}

// Elapsed returns the time since start, frozen once the profiler is closed.
func (p *Profiler) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disposed {
		return p.elapsed
	}
	return time.Since(p.start)
}

// TotalMemory returns the bytes of heap currently allocated by the process.
func (p *Profiler) TotalMemory() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

// Log logs a progress message at sev
func (p *Profiler) Log(sev core.Severity, template string, args ...any) {
	p.log(sev, template, args)
}

// Debug logs a progress message at Debug
func (p *Profiler) Debug(template string, args ...any) {
	p.log(core.Debug, template, args)
}

// Info logs a progress message at Info
func (p *Profiler) Info(template string, args ...any) {
	p.log(core.Info, template, args)
}

// Warn logs a progress message at Warn
func (p *Profiler) Warn(template string, args ...any) {
	p.log(core.Warn, template, args)
}

// Error logs a progress message at Error
func (p *Profiler) Error(template string, args ...any) {
	p.log(core.Error, template, args)
}

// Critical logs a progress message at Critical
func (p *Profiler) Critical(template string, args ...any) {
	p.log(core.Critical, template, args)
}

func (p *Profiler) log(sev core.Severity, template string, args []any) {
	if p.IsDisposed() || !p.parent.Enabled(sev) {
		return
	}
	msg := formatMessage(template, args)
	p.parent.logMessage(sev, p.marker(p.Elapsed(), msg))
}

// Close stops the timer and logs the FINISH marker. Only the first call
// has any effect. It always returns nil.
func (p *Profiler) Close() error {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return nil
	}
	p.disposed = true
	p.elapsed = time.Since(p.start)
	elapsed := p.elapsed
	p.mu.Unlock()

	p.parent.logMessage(p.severity, p.marker(elapsed, "FINISH"))
	return nil
}

func (p *Profiler) marker(elapsed time.Duration, msg string) string {
	return fmt.Sprintf("[%.3fs] %s %s", elapsed.Seconds(), p.identifier, msg)
}
