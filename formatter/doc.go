// Package formatter defines how log entries are rendered into text.
//
// A Formatter is a pure function from core.Entry to string. Every handler
// owns exactly one formatter and calls it before delivery; the formatter
// itself never performs I/O.
//
// Two implementations ship with the package. TextFormatter, the default,
// produces "<timestamp> [SEVERITY] <type>: <message>". JSONFormatter
// produces one JSON object per entry. Both use a pooled bytes.Buffer
// and Go's Append-style functions to keep per-call allocations to the
// returned string.
//
// Configuration refers to formatters by name. New resolves a name
// ("text", "default" or "json" out of the box) and Register adds
// application-specific ones.
package formatter
