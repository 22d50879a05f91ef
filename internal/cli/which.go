package cli

import (
	"fmt"

	"github.com/chazuruo/soon/internal/config"
	"github.com/spf13/cobra"
)

// NewWhichCommand creates the which command.
func NewWhichCommand(s *Session) *cobra.Command {
	return &cobra.Command{
		Use:   "which",
		Short: "Show the detected shell",
		Long: `Show the shell soon resolved from --shell, the config file or $SHELL,
and the history file it reads for that shell.

Unlike other commands, which succeeds when the shell is unknown.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoShell: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhich(s)
		},
	}
}

func runWhich(s *Session) error {
	out := s.svc.Which(s.shell)

	if s.format != config.FormatText {
		return writeStructured(s.env.Stdout, s.format, out)
	}

	w := s.env.Stdout
	st := newStyles(w)
	fmt.Fprintln(w, st.shell.Render("🕵️ Current shell: "+out.Shell))
	if out.HistoryPath != "" {
		fmt.Fprintln(w, st.muted.Render("history: "+out.HistoryPath))
	}
	return nil
}
