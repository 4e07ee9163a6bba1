package cli

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/settings"
)

const (
	appName  = "logcore"
	appShort = "logcore inspects and exercises logging configurations"

	configFlagName      = "config"
	configShortFlagName = "c"
	configFlagUsage     = `path of the YAML logging configuration
	(default: the file named by LOGCORE_CONFIG)`
)

var (
	// Version is injected at build time via -ldflags.
	Version = "dev"
	// BuildDate is injected at build time via -ldflags.
	BuildDate = ""

	errNoArguments = errors.New("no arguments provided")

	allSeverities = func() []string {
		names := make([]string, 0, len(core.Severities))
		for _, s := range core.Severities {
			names = append(names, strings.ToLower(s.String()))
		}
		return names
	}()
)

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	configPath string
}

func (f *rootFlags) addFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&f.configPath, configFlagName, configShortFlagName, "", heredoc.Doc(configFlagUsage))
}

// load returns the settings named by --config, or the ones described by
// the environment when the flag is empty.
func (f *rootFlags) load() (*settings.Settings, error) {
	if f.configPath == "" {
		return settings.LoadFromEnv()
	}
	return settings.Load(f.configPath)
}

// NewRootCmd constructs the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	flags.addFlags(cmd)
	cmd.AddCommand(
		validateCmd(flags),
		emitCmd(flags),
		profileCmd(flags),
		versionCmd(),
	)
	return cmd
}

// handleError prints err the way the command expects and returns the
// error that decides the exit code. Missing arguments only print usage.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errNoArguments):
		_ = cmd.Usage()
		return nil
	case errors.Is(err, core.ErrUnknownSeverity):
		cmd.PrintErrln(err)
		_ = cmd.Usage()
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the " + appName + " version",

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, BuildDate, runtime.Version()))
		},
	}
}

func versionString(version, buildDate, runtimeVersion string) string {
	out := version
	if buildDate != "" {
		out += " (" + buildDate + ")"
	}
	return out + ", Go Version: " + runtimeVersion
}
