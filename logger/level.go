package logger

import "github.com/philipp01105/logcore/core"

// Severity re-exports core.Severity so callers need a single import
type Severity = core.Severity

const (
	DebugSeverity    = core.Debug
	InfoSeverity     = core.Info
	WarnSeverity     = core.Warn
	ErrorSeverity    = core.Error
	CriticalSeverity = core.Critical
)

// ParseSeverity converts a name to a Severity. Unknown names map to
// ErrorSeverity, the threshold used when nothing is configured.
func ParseSeverity(s string) Severity {
	sev, _ := core.ParseSeverity(s)
	return sev
}
