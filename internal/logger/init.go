package logger

import (
	"io"
	"os"

	"github.com/pterm/pterm"
)

// InitPterm sends all diagnostic output to stderr so stdout only carries results.
func InitPterm() {
	RedirectTo(os.Stderr)
}

// RedirectTo points every prefix printer at w. The interactive view uses it to
// move diagnostics into a log file while tview owns the terminal.
func RedirectTo(w io.Writer) {
	if w == nil {
		w = io.Discard
	}

	pterm.Info.Writer = w
	pterm.Success.Writer = w
	pterm.Warning.Writer = w
	pterm.Error.Writer = w
	pterm.Debug.Writer = w
}

// OpenFile redirects logging into path, appending. The returned function
// restores stderr and closes the file.
func OpenFile(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}

	RedirectTo(f)

	return func() {
		RedirectTo(os.Stderr)
		_ = f.Close()
	}, nil
}
