package cli

import (
	"fmt"

	"github.com/chazuruo/soon/internal/config"
	"github.com/spf13/cobra"
)

// NewNowCommand creates the now command.
func NewNowCommand(s *Session) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Suggest the next command",
		Long: `Suggest the command you are most likely to run next.

The suggestion comes from commands you ran right after entering a directory
with the same name as the current one. When there are none, your most used
command overall (excluding cd) is suggested instead.

Exits with status 1 when history cannot be loaded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(s)
		},
	}
}

func runNow(s *Session) error {
	out, err := s.svc.Now(s.shell, s.env.Cwd)
	if err != nil {
		return err
	}

	if s.format != config.FormatText {
		return writeStructured(s.env.Stdout, s.format, out)
	}

	w := s.env.Stdout
	st := newStyles(w)
	if out.Suggestion == nil {
		fmt.Fprintln(w, st.notice.Render("No suggestion found."))
		return nil
	}

	fmt.Fprintln(w, st.title.Render("🔮 You might run next:"))
	fmt.Fprintln(w, st.suggestion.Render("👉 "+out.Suggestion.Command))
	return nil
}
