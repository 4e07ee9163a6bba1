package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/logcore/core"
)

// Formatter turns a log entry into its display text. Implementations must
// be pure and total: no side effects, and no panics for any entry value.
type Formatter interface {
	// Format renders a single entry without a trailing newline
	Format(entry core.Entry) string
}

// FormatterFunc adapts an ordinary function to the Formatter interface.
type FormatterFunc func(entry core.Entry) string

// Format calls f(entry)
func (f FormatterFunc) Format(entry core.Entry) string {
	return f(entry)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for RFC3339)
	TimestampFormat string
	// UTC converts timestamps to UTC before rendering
	UTC bool
}

// Default returns the formatter used when nothing else is configured.
func Default() Formatter {
	return NewTextFormatter(Config{})
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
