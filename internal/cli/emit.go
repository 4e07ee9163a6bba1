package cli

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/logger"
)

const (
	emitCmdShort = "send one entry through a logging configuration"
	emitCmdLong  = `Build the configured handlers and dispatch a single entry to them.
	The template uses indexed placeholders; every argument after the
	template fills the placeholder with the same index.

	Entries below the configured threshold are dropped, exactly as they
	would be inside an application.`
	emitCmdExample = `# Send a warning through the configuration in logging.yaml
	logcore emit -c logging.yaml --severity warn "disk {0} is {1}% full" /dev/sda1 91`

	severityFlagName      = "severity"
	severityShortFlagName = "s"
)

// Emitter is the subject type of entries sent by the emit command.
type Emitter struct{}

func emitCmd(root *rootFlags) *cobra.Command {
	var severity string

	cmd := &cobra.Command{
		Use:     "emit template [args...]",
		Short:   heredoc.Doc(emitCmdShort),
		Long:    heredoc.Doc(emitCmdLong),
		Example: heredoc.Doc(emitCmdExample),

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

			log := logger.NewRegistry(s).GetLogger(Emitter{})
			if !log.Enabled(sev) {
				cmd.PrintErrf("entry dropped: %s is below the threshold %s\n", sev, s.Severity())
				return nil
			}

			values := make([]any, 0, len(args)-1)
			for _, a := range args[1:] {
				values = append(values, a)
			}
			log.Log(sev, args[0], values...)

			if snap := s.Stats(); snap.Failed > 0 {
				cmd.PrintErrf("%d of %d handlers failed to deliver the entry\n", snap.Failed, snap.Failed+snap.Delivered)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&severity, severityFlagName, severityShortFlagName, "info",
		"severity of the entry (possible values: "+strings.Join(allSeverities, ", ")+")")
	return cmd
}
