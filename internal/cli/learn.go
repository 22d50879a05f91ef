package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLearnCommand creates the learn command.
func NewLearnCommand(s *Session) *cobra.Command {
	return &cobra.Command{
		Use:   "learn",
		Short: "Train on your history (not yet available)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := newStyles(s.env.Stdout)
			fmt.Fprintln(s.env.Stdout, st.notice.Render("🧠 [soon learn] feature under development..."))
			return nil
		},
	}
}
