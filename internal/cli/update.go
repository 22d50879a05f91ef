package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazuruo/soon/internal/config"
	"github.com/chazuruo/soon/internal/upgrade"
)

// UpdateOptions contains the options for the update command.
type UpdateOptions struct {
	CheckOnly bool
	Pre       bool
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(s *Session) *cobra.Command {
	opts := &UpdateOptions{}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Check for a newer release",
		Long: `Check GitHub releases for a newer version of soon.

The repository is taken from [update].repository in the config file.
Nothing is downloaded; when a newer release exists its URL is printed.

Exit codes:
  0 - Success (update available or already up-to-date)
  1 - Generic error
  2 - Network error
  5 - Already on latest version (with --check-only)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd.Context(), s, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.CheckOnly, "check-only", false,
		"exit with status 5 when already on the latest version")
	cmd.Flags().BoolVar(&opts.Pre, "pre", false,
		"include pre-releases")

	return cmd
}

func runUpdate(ctx context.Context, s *Session, opts *UpdateOptions) error {
	checker, err := upgrade.NewChecker(s.cfg.Update.Repository, s.cfg.Update.IncludePrerelease || opts.Pre, s.logger)
	if err != nil {
		return err
	}
	if s.env.UpdateBaseURL != "" {
		checker.BaseURL = s.env.UpdateBaseURL
	}
	if s.env.HTTPClient != nil {
		checker.SetHTTPClient(s.env.HTTPClient)
	}

	w := s.env.Stdout
	text := s.format == config.FormatText
	if text {
		fmt.Fprintln(w, "Checking for updates...")
	}

	res, err := checker.Check(ctx, s.build.Version)
	if err != nil {
		return err
	}

	if !text {
		if err := writeStructured(w, s.format, res); err != nil {
			return err
		}
	} else if res.UpdateAvailable {
		st := newStyles(w)
		fmt.Fprintln(w, st.suggestion.Render(fmt.Sprintf("Update available: %s -> %s", res.Current, res.Latest)))
		if res.URL != "" {
			fmt.Fprintf(w, "Release: %s\n", res.URL)
		}
	} else {
		fmt.Fprintf(w, "Already on latest version: %s\n", res.Current)
	}

	if !res.UpdateAvailable && opts.CheckOnly {
		return upgrade.NewError(upgrade.ExitAlreadyLatest, "Already on latest version", nil)
	}
	return nil
}
