// Package report prints user facing messages
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tempus/internal/osutil"
)

// Error prints err to the terminal.
func Error(err error) {
	pterm.Error.Println(err)
}

// Warning prints a recoverable problem to the terminal.
func Warning(format string, a ...any) {
	pterm.Warning.Printfln(format, a...)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(osutil.ExitError.Code())
}
