package cmd

import (
	"github.com/spf13/cobra"

	"machine-bootstrap/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath holds the path to the optional configuration YAML file, passed
// via `--config` / `-c`. Empty means the built-in defaults (plus
// bootstrap.yaml if one happens to sit in the working directory).
var configPath string

// rootCmd is the base command for the CLI tool `machine-bootstrap`.
var rootCmd = &cobra.Command{
	Use:   "machine-bootstrap",
	Short: "Workstation provisioning tool",

	// PersistentPreRun runs before any subcommand; it initializes the logger
	// based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute registers global flags and starts command execution. It's the entry
// point for the CLI when invoked by the user.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (optional)")

	// Errors are ignored here with `_ =` since Cobra prints them itself; the
	// subcommands exit non-zero on any fatal condition.
	_ = rootCmd.Execute()
}
