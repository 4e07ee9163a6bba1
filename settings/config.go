package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/formatter"
	"github.com/philipp01105/logcore/handler"
)

// ErrConfig wraps every failure to build settings from a configuration.
var ErrConfig = errors.New("invalid logging configuration")

// diagnostics receives messages about configuration that was ignored.
var diagnostics io.Writer = os.Stderr

// Config is the decoded form of a logging configuration section.
type Config struct {
	// Severity is the threshold name (default: error)
	Severity string `yaml:"severity" json:"severity"`
	// Formatter is the default formatter name (default: text)
	Formatter string `yaml:"formatter" json:"formatter"`
	// Handlers are built in declaration order, which is dispatch order
	Handlers []HandlerConfig `yaml:"handlers" json:"handlers"`
}

// HandlerConfig declares one handler. In YAML a bare kind name such as
// "- trace" is shorthand for "- kind: trace".
type HandlerConfig struct {
	Kind       string            `yaml:"kind" json:"kind"`
	Type       string            `yaml:"type,omitempty" json:"type,omitempty"`
	Assembly   string            `yaml:"assembly,omitempty" json:"assembly,omitempty"`
	Formatter  string            `yaml:"formatter,omitempty" json:"formatter,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// UnmarshalYAML accepts both the mapping form and the bare kind name.
func (hc *HandlerConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*hc = HandlerConfig{Kind: node.Value}
		return nil
	}
	type plain HandlerConfig
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*hc = HandlerConfig(p)
	return nil
}

// document accepts the section either at the top level or nested under a
// "logging" key.
type document struct {
	Logging *Config `yaml:"logging"`
	Config  `yaml:",inline"`
}

// Parse decodes a YAML configuration section. It reports false when raw
// is empty or cannot be decoded.
func Parse(raw []byte) (*Config, bool) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, false
	}
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		fmt.Fprintf(diagnostics, "logcore: ignoring unparsable configuration: %v\n", err)
		return nil, false
	}
	if doc.Logging != nil {
		return doc.Logging, true
	}
	return &doc.Config, true
}

// FromConfig builds settings from a YAML section. Empty or unparsable input
// yields the defaults; invalid declarations fail with ErrConfig.
func FromConfig(raw []byte) (*Settings, error) {
	cfg, ok := Parse(raw)
	if !ok {
		return New(), nil
	}
	return cfg.Build()
}

// Build turns the configuration into settings. An unknown severity name
// falls back to DefaultSeverity; a section without handlers gets the
// default trace handler.
func (c *Config) Build() (*Settings, error) {
	s := newEmpty()

	if c.Severity != "" {
		sev, err := core.ParseSeverity(c.Severity)
		if err != nil {
			fmt.Fprintf(diagnostics, "logcore: %v, using %s\n", err, DefaultSeverity)
		}
		_ = s.SetSeverity(sev)
	}

	if c.Formatter != "" {
		f, err := formatter.New(c.Formatter)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		_ = s.SetFormatter(f)
	}

	for i, hc := range c.Handlers {
		h, err := hc.build(s.Formatter())
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("%w: handlers[%d]: %w", ErrConfig, i, err)
		}
		if err := s.handlers.Add(h); err != nil {
			if c, ok := h.(io.Closer); ok {
				_ = c.Close()
			}
			_ = s.Close()
			return nil, fmt.Errorf("%w: handlers[%d]: %w", ErrConfig, i, err)
		}
	}

	if s.handlers.Len() == 0 {
		_ = s.handlers.Add(handler.NewTraceHandlerWithFormatter(nil, s.Formatter()))
	}
	return s, nil
}

func (hc HandlerConfig) build(sectionFormatter formatter.Formatter) (handler.Handler, error) {
	h, err := handler.New(handler.Declaration{
		Kind:       hc.Kind,
		Type:       hc.Type,
		Assembly:   hc.Assembly,
		Attributes: hc.Attributes,
	})
	if err != nil {
		return nil, err
	}

	f := sectionFormatter
	if hc.Formatter != "" {
		if f, err = formatter.New(hc.Formatter); err != nil {
			if c, ok := h.(io.Closer); ok {
				_ = c.Close()
			}
			return nil, err
		}
	}
	if hc.Formatter != "" || !ownsFormatter(h) {
		_ = h.SetFormatter(f)
	}
	return h, nil
}

// ownsFormatter reports whether a handler picked a formatter of its own
// at construction, which a section-wide formatter must not override.
func ownsFormatter(h handler.Handler) bool {
	switch h.(type) {
	case *handler.ZapHandler, *handler.HclogHandler:
		return true
	}
	return false
}

// Load reads a YAML configuration file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return FromConfig(raw)
}

// EnvConfig lists the environment variables LoadFromEnv honors.
type EnvConfig struct {
	ConfigPath string `env:"LOGCORE_CONFIG"`
	Severity   string `env:"LOGCORE_SEVERITY"`
}

// LoadFromEnv loads LOGCORE_CONFIG (when set) and applies the
// LOGCORE_SEVERITY override on top of it.
func LoadFromEnv() (*Settings, error) {
	var vars EnvConfig
	if err := env.Parse(&vars); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	var override core.Severity
	if vars.Severity != "" {
		sev, err := core.ParseSeverity(vars.Severity)
		if err != nil {
			return nil, fmt.Errorf("%w: LOGCORE_SEVERITY: %w", ErrConfig, err)
		}
		override = sev
	}

	s := New()
	if vars.ConfigPath != "" {
		loaded, err := Load(vars.ConfigPath)
		if err != nil {
			return nil, err
		}
		s = loaded
	}

	if vars.Severity != "" {
		_ = s.SetSeverity(override)
	}
	return s, nil
}
