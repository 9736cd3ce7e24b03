package main

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/swcrawl/internal/app"
)

// errNoTerminal is returned when the TUI is started without a terminal.
var errNoTerminal = errors.New("the interactive browser needs a terminal; use `swcrawl films` or `swcrawl characters` instead")

// options holds the persistent flags.
type options struct {
	configPath string
	prefsPath  string
	logFormat  string
}

func (o *options) app(cmd *cobra.Command) app.Options {
	return app.Options{
		ConfigPath: o.configPath,
		PrefsPath:  o.prefsPath,
		LogFormat:  o.logFormat,
		LogOutput:  cmd.ErrOrStderr(),
	}
}

// isTerminal reports whether stdout is an interactive terminal.
var isTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "swcrawl",
		Short:         "Browse movie characters and their combined height",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNoTerminal
			}
			return app.Run(cmd.Context(), opts.app(cmd))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file path (default ~/.config/swcrawl/config.toml)")
	flags.StringVar(&opts.prefsPath, "prefs", "", "Preferences file path (default ~/.config/swcrawl/prefs.toml)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format for headless commands: text, json or logfmt")

	rootCmd.AddCommand(newFilmsCommand(opts))
	rootCmd.AddCommand(newCharactersCommand(opts))

	return rootCmd
}
