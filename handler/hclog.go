package handler

import (
	"github.com/hashicorp/go-hclog"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/formatter"
)

// HclogHandler forwards entries to an hclog.Logger.
type HclogHandler struct {
	Base
	logger hclog.Logger
}

// NewHclogHandler wraps l (hclog.NewNullLogger when nil).
func NewHclogHandler(l hclog.Logger) *HclogHandler {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	h := &HclogHandler{logger: l}
	h.initBase(formatter.NewMessageFormatter())
	return h
}

func hclogLevel(s core.Severity) hclog.Level {
	switch s {
	case core.Debug:
		return hclog.Debug
	case core.Info:
		return hclog.Info
	case core.Warn:
		return hclog.Warn
	default:
		return hclog.Error
	}
}

// Write implements Handler
func (h *HclogHandler) Write(entry core.Entry) (ok bool) {
	msg, err := h.Render(entry)
	if err != nil {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	h.logger.Log(hclogLevel(entry.Severity), msg,
		"type", entry.TypeName,
		"severity", entry.Severity.String(),
	)
	return true
}
