package logger

import (
	"github.com/fatih/color" // fatih/color provides the colored Printf-style functions
)

// Colorized printing functions for the different log levels.
// These are package-level variables holding functions that behave like
// fmt.Printf, but with text colored appropriately for the log level.

// Info logs informational messages in green to standard output.
// This includes skip notices for packages that are already installed.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red to standard error.
// Fatal diagnostics (unsupported platform, failed installs) go through this
// before the process exits non-zero.
var Error = func() func(format string, a ...any) {
	c := color.New(color.FgRed)
	return func(format string, a ...any) {
		_, _ = c.Fprintf(color.Error, format, a...)
	}
}()

// Debug logs debug messages in cyan when enabled via Init.
// It defaults to a no-op so packages can log safely before Init runs
// (tests exercise internal packages without going through the CLI).
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging. Wired to the --debug flag by the
// root command's PersistentPreRun hook.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
