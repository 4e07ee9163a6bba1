package handler

import (
	"errors"
	"io"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/formatter"
)

// ErrFilenameRequired is returned by NewFileHandler when no path is given.
var ErrFilenameRequired = errors.New("filename is required")

// FileHandler appends log entries to a file. Rotation, retention and
// compression of old files are delegated to lumberjack.
type FileHandler struct {
	Base
	mu     sync.Mutex
	out    io.WriteCloser
	closed bool
	stats  *Stats
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// MaxSizeMB is the size in megabytes that triggers rotation (default: 100)
	MaxSizeMB int
	// MaxBackups is the maximum number of old log files to retain (0 = keep all)
	MaxBackups int
	// MaxAgeDays is the maximum age of old files in days (0 = no age limit)
	MaxAgeDays int
	// Compress gzips rotated files
	Compress bool
	// LocalTime uses local time in backup file names instead of UTC
	LocalTime bool
}

// NewFileHandler creates a new file handler. The file is opened lazily on
// the first write.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, ErrFilenameRequired
	}

	h := &FileHandler{
		out: &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  cfg.LocalTime,
		},
		stats: NewStats(),
	}
	h.initBase(cfg.Formatter)
	return h, nil
}

// Write implements Handler
func (h *FileHandler) Write(entry core.Entry) bool {
	line, err := h.Render(entry)
	if err != nil {
		h.stats.IncrementFailed()
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		h.stats.IncrementFailed()
		return false
	}
	if _, err := io.WriteString(h.out, line+"\n"); err != nil {
		h.stats.IncrementFailed()
		return false
	}
	h.stats.IncrementDelivered()
	return true
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the underlying file. Writes after Close report failure.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	return h.out.Close()
}
