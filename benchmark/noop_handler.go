package benchmark

import (
	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/handler"
	"github.com/philipp01105/logcore/settings"
)

// noopHandler accepts every entry without formatting it, isolating the
// cost of gating and dispatch.
type noopHandler struct {
	handler.Base
}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Write(e core.Entry) bool {
	_ = len(e.Message)
	return true
}

// newSettings returns settings with threshold sev dispatching to hs.
func newSettings(sev core.Severity, hs ...handler.Handler) *settings.Settings {
	s := settings.New()
	if err := s.Handlers().Replace(hs...); err != nil {
		panic(err)
	}
	if err := s.SetSeverity(sev); err != nil {
		panic(err)
	}
	return s
}
