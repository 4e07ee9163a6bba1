package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownSeverity is returned by ParseSeverity for unrecognized names.
var ErrUnknownSeverity = errors.New("unknown severity")

// Severity represents the importance of a log entry. Values are ordered
// ascending, so a larger value is more severe.
type Severity int8

const (
	// Debug for detailed diagnostic information
	Debug Severity = iota
	// Info for general informational messages
	Info
	// Warn for conditions that deserve attention
	Warn
	// Error for failures of a single operation (default threshold)
	Error
	// Critical for failures that endanger the whole process
	Critical
)

// Severities lists every defined severity in ascending order.
var Severities = [...]Severity{Debug, Info, Warn, Error, Critical}

var severityNames = [...]string{
	Debug:    "DEBUG",
	Info:     "INFO",
	Warn:     "WARN",
	Error:    "ERROR",
	Critical: "CRITICAL",
}

// String returns the upper-case name of the severity
func (s Severity) String() string {
	if s.Valid() {
		return severityNames[s]
	}
	return "Severity(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s is one of the defined severities.
func (s Severity) Valid() bool {
	return s >= Debug && s <= Critical
}

// Enabled reports whether an entry of severity s passes the given threshold.
func (s Severity) Enabled(threshold Severity) bool {
	return s >= threshold
}

// ParseSeverity converts a case-insensitive name into a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "WARN", "WARNING":
		return Warn, nil
	case "ERROR":
		return Error, nil
	case "CRITICAL", "FATAL":
		return Critical, nil
	default:
		return Error, fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeverity, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so severities can be
// decoded straight from configuration files and environment variables.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
