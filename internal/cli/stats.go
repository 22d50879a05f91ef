package cli

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/chazuruo/soon/internal/config"
)

// StatsOptions contains the options for the stats command.
type StatsOptions struct {
	Top int
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(s *Session) *cobra.Command {
	opts := &StatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show your most used commands",
		Long: `Show the most used commands in your shell history.

Every command counts, cd included. Commands with the same count are listed in
the order they first appear in history.

Examples:
  soon stats              # top 10
  soon stats --top 25     # top 25
  soon stats --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(s, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Top, "top", "n", 0, "number of commands to show (default from config, 10)")

	return cmd
}

func runStats(s *Session, opts *StatsOptions) error {
	n := opts.Top
	if n <= 0 {
		n = s.cfg.Top
	}

	out, err := s.svc.Stats(s.shell, n)
	if err != nil {
		return err
	}

	if s.format != config.FormatText {
		return writeStructured(s.env.Stdout, s.format, out)
	}

	w := s.env.Stdout
	st := newStyles(w)
	fmt.Fprintln(w, st.header.Render(fmt.Sprintf("📊 Top %d most used commands", out.Top)))
	fmt.Fprintln(w)

	tbl := table.New("#", "Command", "Usage Count").
		WithWriter(w).
		WithWidthFunc(runewidth.StringWidth)
	for i, e := range out.Commands {
		tbl.AddRow(i+1, truncateCommand(e.Command), e.Count)
	}
	tbl.Print()

	return nil
}
