package core

import (
	"time"
)

// Entry is a single log event. It is built once per log call and handed
// to every handler by value, so a handler cannot change what its siblings
// receive.
type Entry struct {
	Severity Severity
	TypeName string
	Message  string
	Date     time.Time
}

// NewEntry builds an entry stamped with the current time.
func NewEntry(severity Severity, typeName, message string) Entry {
	return Entry{
		Severity: severity,
		TypeName: typeName,
		Message:  message,
		Date:     time.Now(),
	}
}

// IsZero reports whether the entry carries no data at all.
func (e Entry) IsZero() bool {
	return e.TypeName == "" && e.Message == "" && e.Date.IsZero()
}
