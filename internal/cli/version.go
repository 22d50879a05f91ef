package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/chazuruo/soon/internal/config"
)

// VersionInfo contains version information for the binary.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	Go      string `json:"go_version" yaml:"go_version"`
}

// VersionOptions contains the options for the version command.
type VersionOptions struct {
	Short bool
}

// NewVersionCommand creates the version command.
func NewVersionCommand(s *Session) *cobra.Command {
	opts := &VersionOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long: `Display the soon version information.

Shows version, commit hash, build date, and Go version.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(s, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Short, "short", false, "print only the version number")

	return cmd
}

func runVersion(s *Session, opts *VersionOptions) error {
	info := VersionInfo{
		Version: s.build.Version,
		Commit:  s.build.Commit,
		Date:    s.build.Date,
		Go:      runtime.Version(),
	}

	w := s.env.Stdout
	if s.format != config.FormatText {
		return writeStructured(w, s.format, info)
	}

	if opts.Short {
		fmt.Fprintln(w, info.Version)
		return nil
	}

	fmt.Fprintf(w, "soon version %s\n", info.Version)
	fmt.Fprintf(w, "commit: %s\n", info.Commit)
	fmt.Fprintf(w, "built at: %s\n", info.Date)
	fmt.Fprintf(w, "go version: %s\n", info.Go)

	return nil
}
