package formatter

import "github.com/philipp01105/logcore/core"

// MessageFormatter renders only the entry message. It suits handlers that
// forward into another logging library which adds its own timestamp and
// level.
type MessageFormatter struct{}

// NewMessageFormatter creates a new message-only formatter
func NewMessageFormatter() *MessageFormatter {
	return &MessageFormatter{}
}

// Format returns entry.Message unchanged
func (MessageFormatter) Format(entry core.Entry) string {
	return entry.Message
}
