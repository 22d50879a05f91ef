package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazuruo/soon/internal/config"
)

// ConfigInitOptions contains the options for the config init command.
type ConfigInitOptions struct {
	Force bool
}

// NewConfigCommand creates the config command and its subcommands.
func NewConfigCommand(s *Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Show or create the configuration file",
		Annotations: map[string]string{annotationNoShell: "true"},
	}

	cmd.AddCommand(newConfigShowCommand(s))
	cmd.AddCommand(newConfigInitCommand(s))

	return cmd
}

func newConfigShowCommand(s *Session) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration soon is using: the config file merged over the
defaults, with SOON_* environment overrides applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(s)
		},
	}
}

func runConfigShow(s *Session) error {
	w := s.env.Stdout
	if s.format != config.FormatText {
		return writeStructured(w, s.format, s.cfg)
	}

	if s.configPath != "" {
		fmt.Fprintf(w, "# %s\n", s.configPath)
	} else {
		fmt.Fprintln(w, "# defaults (no config file)")
	}
	return config.Encode(w, s.cfg)
}

func newConfigInitCommand(s *Session) *cobra.Command {
	opts := &ConfigInitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a configuration file with default values to --config or
~/.config/soon/config.toml. An existing file is kept unless --force is given.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationConfigOptional: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(s, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite an existing config file")

	return cmd
}

func runConfigInit(s *Session, opts *ConfigInitOptions) error {
	path := s.opts.ConfigPath
	if path == "" {
		path = config.DefaultPath(s.configEnv())
	}
	if path == "" {
		return fmt.Errorf("cannot determine config location; pass --config")
	}

	if err := config.Write(path, config.DefaultConfig(), opts.Force); err != nil {
		return err
	}

	fmt.Fprintf(s.env.Stdout, "Wrote config to %s\n", path)
	return nil
}
