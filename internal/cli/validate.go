package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/philipp01105/logcore/settings"
)

const (
	validateCmdShort = "check that a logging configuration builds"
	validateCmdLong  = `Build every handler a logging configuration declares and report
	the resulting threshold, default formatter and handler order.

	The command exits with status 1 when the configuration cannot be built,
	for example when a custom handler declaration has no type.`
	validateCmdExample = `# Validate a configuration file
	logcore validate logging.yaml

	# Validate the file passed with the global flag
	logcore -c logging.yaml validate`
)

var errConfigNotFound = errors.New("configuration file not found")

func validateCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "validate [path]",
		Short:   heredoc.Doc(validateCmdShort),
		Long:    heredoc.Doc(validateCmdLong),
		Example: heredoc.Doc(validateCmdExample),

		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := root.configPath
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return handleError(cmd, errNoArguments)
			}
			if err := validate(cmd.OutOrStdout(), path); err != nil {
				return handleError(cmd, err)
			}
			return nil
		},
	}
}

func validate(out io.Writer, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", errConfigNotFound, path)
		}
		return err
	}

	s, err := settings.Load(path)
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Fprintf(out, "configuration %s is valid\n", path)
	fmt.Fprintf(out, "severity:  %s\n", strings.ToLower(s.Severity().String()))
	fmt.Fprintf(out, "formatter: %s\n", typeLabel(s.Formatter()))
	for i, h := range s.Handlers().Snapshot() {
		fmt.Fprintf(out, "handler %d: %s (formatter %s)\n", i, typeLabel(h), typeLabel(h.Formatter()))
	}
	return nil
}

// typeLabel renders a value by its bare type name, e.g. "TraceHandler"
func typeLabel(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
