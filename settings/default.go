package settings

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNilSettings is returned by SetDefault(nil).
var ErrNilSettings = errors.New("settings must not be nil")

var (
	defaultMu       sync.RWMutex
	defaultSettings *Settings
)

// Default returns the process-wide settings, loading them from the
// environment on first use. A load failure is reported on stderr and the
// built-in defaults are used instead.
func Default() *Settings {
	defaultMu.RLock()
	s := defaultSettings
	defaultMu.RUnlock()
	if s != nil {
		return s
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	return loadDefaultLocked()
}

// loadDefaultLocked must be called with defaultMu held for writing.
func loadDefaultLocked() *Settings {
	if defaultSettings == nil {
		loaded, err := LoadFromEnv()
		if err != nil {
			fmt.Fprintf(diagnostics, "logcore: %v, using defaults\n", err)
			loaded = New()
		}
		defaultSettings = loaded
	}
	return defaultSettings
}

// SetDefault installs s as the process-wide settings and returns the
// previous ones so tests can restore them.
func SetDefault(s *Settings) (*Settings, error) {
	if s == nil {
		return nil, ErrNilSettings
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := loadDefaultLocked()
	defaultSettings = s
	return prev, nil
}

// ResetDefault drops the process-wide settings; the next Default call
// loads them again.
func ResetDefault() {
	defaultMu.Lock()
	defaultSettings = nil
	defaultMu.Unlock()
}
