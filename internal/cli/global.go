// Package cli defines the cobra command tree for soon.
package cli

import (
	"github.com/spf13/cobra"
)

// GlobalOptions holds the flags shared by every command.
type GlobalOptions struct {
	// Shell overrides shell detection. Passed through verbatim.
	Shell string

	// ConfigPath is an explicit config file. Empty means the default location.
	ConfigPath string

	// Format is the output format. Empty means the configured default.
	Format string

	// Verbose enables debug logging on stderr.
	Verbose bool
}

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command, opts *GlobalOptions) {
	cmd.PersistentFlags().StringVar(&opts.Shell, "shell", "",
		"shell whose history to read (bash, zsh, fish); overrides detection")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "",
		"config file path (default ~/.config/soon/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "",
		"output format (text, json, yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false,
		"write debug logs to stderr")
}
