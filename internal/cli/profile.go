package cli

import (
	"fmt"
	"os/exec"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/logger"
)

const (
	profileCmdShort = "time a command and log START and FINISH markers"
	profileCmdLong  = `Run a command under a profiler. The START marker is logged before
	the command starts and the FINISH marker, carrying the elapsed time,
	once it exits. The exit status of the command is logged in between.

	The output streams of the command are passed through unchanged.`
	profileCmdExample = `# Time a backup job and log the markers at info
	logcore profile -c logging.yaml --id backup --severity info -- tar czf /tmp/b.tgz /srv`

	idFlagName = "id"
)

// Profiled is the subject type of entries sent by the profile command.
type Profiled struct{}

func profileCmd(root *rootFlags) *cobra.Command {
	var (
		id       string
		severity string
	)

	cmd := &cobra.Command{
		Use:     "profile [flags] -- command [args...]",
		Short:   heredoc.Doc(profileCmdShort),
		Long:    heredoc.Doc(profileCmdLong),
		Example: heredoc.Doc(profileCmdExample),

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return handleError(cmd, errNoArguments)
			}

			sev, err := core.ParseSeverity(severity)
			if err != nil {
				return handleError(cmd, err)
			}

			s, err := root.load()
			if err != nil {
				return handleError(cmd, err)
			}
			defer s.Close()

			if id == "" {
				id = args[0]
			}

			log := logger.NewRegistry(s).GetLogger(Profiled{})
			p := log.ProfilerStartAt(sev, id)
			defer p.Close()

			run := exec.CommandContext(cmd.Context(), args[0], args[1:]...)
			run.Stdin = cmd.InOrStdin()
			run.Stdout = cmd.OutOrStdout()
			run.Stderr = cmd.ErrOrStderr()

			if err := run.Run(); err != nil {
				p.Error("failed: {0}", err)
				return handleError(cmd, fmt.Errorf("profile %s: %w", id, err))
			}
			p.Log(sev, "exited with status {0}", run.ProcessState.ExitCode())
			return nil
		},
	}

	cmd.Flags().StringVar(&id, idFlagName, "", "identifier of the profiler (default: the command name)")
	cmd.Flags().StringVarP(&severity, severityFlagName, severityShortFlagName, "debug", "severity of the profiler markers")
	return cmd
}
