package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/handler"
)

// writeConfig stores a configuration that sends every entry to a file
// using the bare message formatter, and returns both paths.
func writeConfig(t *testing.T, severity string) (configPath, logPath string) {
	t.Helper()
	dir := t.TempDir()
	logPath = filepath.Join(dir, "out.log")
	configPath = filepath.Join(dir, "logging.yaml")
	raw := fmt.Sprintf("severity: %s\nhandlers:\n  - kind: file\n    formatter: message\n    attributes:\n      path: %q\n", severity, logPath)
	require.NoError(t, os.WriteFile(configPath, []byte(raw), 0o600))
	return configPath, logPath
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
}

func execute(args ...string) (stdout, stderr string, err error) {
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute("version")
	require.NoError(t, err)
	assert.Equal(t, "dev, Go Version: "+runtime.Version()+"\n", out)
	assert.Equal(t, "1.0.0 (2026-01-01), Go Version: go1", versionString("1.0.0", "2026-01-01", "go1"))
}

func TestValidate(t *testing.T) {
	configPath, _ := writeConfig(t, "warn")

	testCases := map[string]struct {
		args          []string
		expectedError error
		expectedOut   []string
		expectedErr   string
	}{
		"valid configuration": {
			args: []string{"validate", configPath},
			expectedOut: []string{
				"is valid",
				"severity:  warn",
				"formatter: TextFormatter",
				"handler 0: FileHandler (formatter MessageFormatter)",
			},
		},
		"path from global flag": {
			args:        []string{"-c", configPath, "validate"},
			expectedOut: []string{"is valid"},
		},
		"missing file": {
			args:          []string{"validate", filepath.Join(t.TempDir(), "missing.yaml")},
			expectedError: errConfigNotFound,
			expectedErr:   "configuration file not found",
		},
		"no arguments prints usage": {
			args:        []string{"validate"},
			expectedOut: []string{"Usage:"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			out, errOut, err := execute(tc.args...)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			for _, want := range tc.expectedOut {
				assert.Contains(t, out, want)
			}
			assert.Contains(t, errOut, tc.expectedErr)
		})
	}
}

func TestValidate_CustomWithoutType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	require.NoError(t, os.WriteFile(path, []byte("handlers:\n  - kind: custom\n"), 0o600))

	_, errOut, err := execute("validate", path)
	assert.ErrorIs(t, err, handler.ErrCustomTypeRequired)
	assert.Contains(t, errOut, "custom handler type must be specified")
}

func TestEmit(t *testing.T) {
	configPath, logPath := writeConfig(t, "info")

	_, errOut, err := execute("emit", "-c", configPath, "--severity", "warn", "disk {0} is {1}% full", "sda", "91")
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Equal(t, []string{"disk sda is 91% full"}, readLines(t, logPath))
}

func TestEmit_BelowThreshold(t *testing.T) {
	configPath, logPath := writeConfig(t, "error")

	_, errOut, err := execute("emit", "-c", configPath, "-s", "debug", "hidden")
	require.NoError(t, err)
	assert.Contains(t, errOut, "entry dropped: DEBUG is below the threshold ERROR")

	raw, _ := os.ReadFile(logPath)
	assert.Empty(t, raw)
}

func TestEmit_UnknownSeverity(t *testing.T) {
	configPath, _ := writeConfig(t, "info")

	_, errOut, err := execute("emit", "-c", configPath, "-s", "loud", "x")
	assert.ErrorIs(t, err, core.ErrUnknownSeverity)
	assert.Contains(t, errOut, "unknown severity")
}

func TestProfile(t *testing.T) {
	configPath, logPath := writeConfig(t, "debug")

	_, _, err := execute("profile", "-c", configPath, "--id", "job", "--", os.Args[0], "-test.run=^$")
	require.NoError(t, err)

	lines := readLines(t, logPath)
	require.Len(t, lines, 3)
	assert.Equal(t, "job START", lines[0])
	assert.Contains(t, lines[1], "job exited with status 0")
	assert.Regexp(t, `^\[\d+\.\d{3}s\] job FINISH$`, lines[2])
}

func TestProfile_CommandFails(t *testing.T) {
	configPath, logPath := writeConfig(t, "debug")

	_, errOut, err := execute("profile", "-c", configPath, "--", filepath.Join(t.TempDir(), "no-such-binary"))
	require.Error(t, err)
	assert.Contains(t, errOut, "profile ")

	lines := readLines(t, logPath)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "no-such-binary START")
	assert.Contains(t, lines[1], "failed:")
	assert.Contains(t, lines[2], "FINISH")
}
