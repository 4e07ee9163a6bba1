package handler

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
	"go.uber.org/zap"

	"github.com/philipp01105/logcore/core"
)

// KindCustom is the declaration kind resolved through RegisterCustom.
const KindCustom = "custom"

var (
	// ErrCustomTypeRequired is returned for a custom declaration without a type.
	ErrCustomTypeRequired = errors.New("custom handler type must be specified")
	// ErrUnknownKind is returned for a declaration kind nobody registered.
	ErrUnknownKind = errors.New("unknown handler kind")
	// ErrUnknownType is returned for a custom type nobody registered.
	ErrUnknownType = errors.New("unknown custom handler type")
	// ErrInvalidAttribute is returned when an attribute value cannot be parsed.
	ErrInvalidAttribute = errors.New("invalid handler attribute")
)

// Declaration describes one handler in a configuration source.
type Declaration struct {
	// Kind names a registered handler kind, e.g. "console" or "custom"
	Kind string
	// Type names the registered custom type when Kind is "custom"
	Type string
	// Assembly optionally qualifies Type, usually with the import path of
	// the package that registers it
	Assembly string
	// Attributes carries handler-specific settings such as a path
	Attributes map[string]string
}

// QualifiedType returns the name a custom declaration is resolved by:
// "<Assembly>.<Type>" when Assembly is set, Type otherwise.
func (d Declaration) QualifiedType() string {
	if d.Assembly == "" {
		return d.Type
	}
	return d.Assembly + "." + d.Type
}

// Attr returns the attribute value for key, or def when it is absent.
func (d Declaration) Attr(key, def string) string {
	if v, ok := d.Attributes[key]; ok {
		return v
	}
	return def
}

// Int parses the attribute key as an integer.
func (d Declaration) Int(key string, def int) (int, error) {
	v, ok := d.Attributes[key]
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q", ErrInvalidAttribute, key, v)
	}
	return n, nil
}

// Bool parses the attribute key as a boolean.
func (d Declaration) Bool(key string, def bool) (bool, error) {
	v, ok := d.Attributes[key]
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q", ErrInvalidAttribute, key, v)
	}
	return b, nil
}

// Factory builds a handler from its declaration.
type Factory func(decl Declaration) (Handler, error)

var (
	factoryMu sync.RWMutex
	kinds     = map[string]Factory{}
	customs   = map[string]Factory{}
)

func init() {
	Register("trace", newTraceFromDecl)
	Register("memory", newMemoryFromDecl)
	Register("console", newConsoleFromDecl)
	Register("file", newFileFromDecl)
	Register("mail", newMailFromDecl)
	Register("zap", newZapFromDecl)
	Register("hclog", newHclogFromDecl)
}

// Register makes a handler kind available to configuration. Registering
// an existing kind replaces it; "custom" is reserved.
func Register(kind string, f Factory) {
	kind = strings.ToLower(kind)
	if f == nil || kind == KindCustom {
		panic("handler: invalid registration for kind " + kind)
	}
	factoryMu.Lock()
	defer factoryMu.Unlock()
	kinds[kind] = f
}

// RegisterCustom makes a custom handler type available under typeName,
// matched exactly against Declaration.Type.
func RegisterCustom(typeName string, f Factory) {
	if f == nil || typeName == "" {
		panic("handler: invalid custom registration for type " + typeName)
	}
	factoryMu.Lock()
	defer factoryMu.Unlock()
	customs[typeName] = f
}

// Kinds returns the registered kinds, including "custom", sorted.
func Kinds() []string {
	factoryMu.RLock()
	out := slices.Collect(maps.Keys(kinds))
	factoryMu.RUnlock()
	out = append(out, KindCustom)
	slices.Sort(out)
	return out
}

// New builds the handler a declaration describes.
func New(decl Declaration) (Handler, error) {
	kind := strings.ToLower(strings.TrimSpace(decl.Kind))

	factoryMu.RLock()
	var f Factory
	var ok bool
	if kind == KindCustom {
		if decl.Type == "" {
			factoryMu.RUnlock()
			return nil, ErrCustomTypeRequired
		}
		f, ok = customs[decl.QualifiedType()]
	} else {
		f, ok = kinds[kind]
	}
	factoryMu.RUnlock()

	if !ok {
		if kind == KindCustom {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, decl.QualifiedType())
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, decl.Kind)
	}

	h, err := f(decl)
	if err != nil {
		return nil, fmt.Errorf("handler %q: %w", kindLabel(decl), err)
	}
	if isNil(h) {
		return nil, fmt.Errorf("handler %q: factory returned nil", kindLabel(decl))
	}
	return h, nil
}

// isNil catches both a nil interface and a typed nil pointer.
func isNil(h Handler) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func kindLabel(decl Declaration) string {
	if decl.Type != "" {
		return decl.Kind + "/" + decl.QualifiedType()
	}
	return decl.Kind
}

func target(decl Declaration, def io.Writer) (io.Writer, error) {
	switch strings.ToLower(decl.Attr("target", "")) {
	case "":
		return def, nil
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, fmt.Errorf("%w: target=%q", ErrInvalidAttribute, decl.Attr("target", ""))
	}
}

func newTraceFromDecl(decl Declaration) (Handler, error) {
	w, err := target(decl, os.Stderr)
	if err != nil {
		return nil, err
	}
	return NewTraceHandler(w), nil
}

func newMemoryFromDecl(decl Declaration) (Handler, error) {
	limit, err := decl.Int("limit", 0)
	if err != nil {
		return nil, err
	}
	return NewMemoryHandler(limit), nil
}

func newConsoleFromDecl(decl Declaration) (Handler, error) {
	w, err := target(decl, os.Stdout)
	if err != nil {
		return nil, err
	}
	async, err := decl.Bool("async", false)
	if err != nil {
		return nil, err
	}
	size, err := decl.Int("buffer_size", 0)
	if err != nil {
		return nil, err
	}
	return NewConsoleHandler(ConsoleConfig{Writer: w, Async: async, BufferSize: size}), nil
}

func newFileFromDecl(decl Declaration) (Handler, error) {
	cfg := FileConfig{Filename: decl.Attr("path", "")}
	var err error
	if cfg.MaxSizeMB, err = decl.Int("max_size_mb", 0); err != nil {
		return nil, err
	}
	if cfg.MaxBackups, err = decl.Int("max_backups", 0); err != nil {
		return nil, err
	}
	if cfg.MaxAgeDays, err = decl.Int("max_age_days", 0); err != nil {
		return nil, err
	}
	if cfg.Compress, err = decl.Bool("compress", false); err != nil {
		return nil, err
	}
	return NewFileHandler(cfg)
}

func newMailFromDecl(decl Declaration) (Handler, error) {
	cfg := MailConfig{
		Host:     decl.Attr("host", ""),
		Username: decl.Attr("username", ""),
		Password: decl.Attr("password", ""),
		From:     decl.Attr("from", ""),
		Subject:  decl.Attr("subject", ""),
	}
	for _, to := range strings.Split(decl.Attr("to", ""), ",") {
		if to = strings.TrimSpace(to); to != "" {
			cfg.To = append(cfg.To, to)
		}
	}
	var err error
	if cfg.Port, err = decl.Int("port", 25); err != nil {
		return nil, err
	}
	if name := decl.Attr("min_severity", ""); name != "" {
		if cfg.MinSeverity, err = core.ParseSeverity(name); err != nil {
			return nil, fmt.Errorf("%w: min_severity: %w", ErrInvalidAttribute, err)
		}
	}
	return NewMailHandler(cfg)
}

func newZapFromDecl(decl Declaration) (Handler, error) {
	var (
		l   *zap.Logger
		err error
	)
	switch preset := strings.ToLower(decl.Attr("preset", "production")); preset {
	case "production":
		l, err = zap.NewProduction()
	case "development":
		l, err = zap.NewDevelopment()
	case "nop":
		l = zap.NewNop()
	default:
		return nil, fmt.Errorf("%w: preset=%q", ErrInvalidAttribute, preset)
	}
	if err != nil {
		return nil, err
	}
	return NewZapHandler(l), nil
}

func newHclogFromDecl(decl Declaration) (Handler, error) {
	w, err := target(decl, os.Stderr)
	if err != nil {
		return nil, err
	}
	jsonFormat, err := decl.Bool("json", false)
	if err != nil {
		return nil, err
	}
	return NewHclogHandler(hclog.New(&hclog.LoggerOptions{
		Name:       decl.Attr("name", "logcore"),
		Level:      hclog.LevelFromString(decl.Attr("level", "trace")),
		JSONFormat: jsonFormat,
		Output:     w,
	})), nil
}
