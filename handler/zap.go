package handler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/formatter"
)

// ZapHandler forwards entries to a zap.Logger. zap adds its own timestamp
// and level, so the default formatter passes the message through as is.
type ZapHandler struct {
	Base
	logger *zap.Logger
}

// NewZapHandler wraps l (zap.NewNop when nil).
func NewZapHandler(l *zap.Logger) *ZapHandler {
	if l == nil {
		l = zap.NewNop()
	}
	h := &ZapHandler{logger: l}
	h.initBase(formatter.NewMessageFormatter())
	return h
}

// zapLevel maps a severity onto zap. Critical stays at Error because
// zap's DPanic and Fatal levels have side effects.
func zapLevel(s core.Severity) zapcore.Level {
	switch s {
	case core.Debug:
		return zapcore.DebugLevel
	case core.Info:
		return zapcore.InfoLevel
	case core.Warn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Write implements Handler
func (h *ZapHandler) Write(entry core.Entry) (ok bool) {
	msg, err := h.Render(entry)
	if err != nil {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	ce := h.logger.Check(zapLevel(entry.Severity), msg)
	if ce == nil {
		return true
	}
	ce.Time = entry.Date
	ce.Write(
		zap.String("type", entry.TypeName),
		zap.Stringer("severity", entry.Severity),
	)
	return true
}

// Close flushes buffered zap output
func (h *ZapHandler) Close() error {
	return h.logger.Sync()
}
