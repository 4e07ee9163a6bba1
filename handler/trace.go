package handler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/formatter"
)

// TraceHandler writes every entry as one line to a diagnostic stream.
// It is the zero-configuration default and always reports success, even
// when the underlying writer fails.
type TraceHandler struct {
	Base
	mu     sync.Mutex
	writer io.Writer
}

// NewTraceHandler creates a handler writing to w (os.Stderr when nil).
func NewTraceHandler(w io.Writer) *TraceHandler {
	if w == nil {
		w = os.Stderr
	}
	return &TraceHandler{writer: w}
}

// NewTraceHandlerWithFormatter is NewTraceHandler with an explicit formatter.
func NewTraceHandlerWithFormatter(w io.Writer, f formatter.Formatter) *TraceHandler {
	h := NewTraceHandler(w)
	h.initBase(f)
	return h
}

// Write implements Handler
func (h *TraceHandler) Write(entry core.Entry) bool {
	line, err := h.Render(entry)
	if err != nil {
		return true
	}

	h.mu.Lock()
	_, _ = io.WriteString(h.writer, line+"\n")
	h.mu.Unlock()
	return true
}
