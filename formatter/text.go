package formatter

import (
	"bytes"
	"time"

	"github.com/philipp01105/logcore/core"
)

// TextFormatter renders entries as a single human-readable line:
//
//	2026-01-15T12:00:00Z [ERROR] app.Service: connection refused
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry core.Entry) string {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)
	return buf.String()
}

// pre-formatted severity strings to avoid multiple WriteString calls
var severityBrackets = [...]string{
	core.Debug:    " [DEBUG] ",
	core.Info:     " [INFO] ",
	core.Warn:     " [WARN] ",
	core.Error:    " [ERROR] ",
	core.Critical: " [CRITICAL] ",
}

func (f *TextFormatter) formatToBuffer(entry core.Entry, buf *bytes.Buffer) {
	ts := entry.Date
	if f.UTC {
		ts = ts.UTC()
	}
	buf.Write(ts.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if entry.Severity.Valid() {
		buf.WriteString(severityBrackets[entry.Severity])
	} else {
		buf.WriteString(" [")
		buf.WriteString(entry.Severity.String())
		buf.WriteString("] ")
	}

	if entry.TypeName != "" {
		buf.WriteString(entry.TypeName)
		buf.WriteString(": ")
	}

	buf.WriteString(entry.Message)
}
