package output

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

const (
	defaultWidth = 80
	maxRuleWidth = 60
)

// terminalWidth honours COLUMNS first, then asks the terminal.
func terminalWidth() int {
	if raw, ok := os.LookupEnv("COLUMNS"); ok {
		if width, err := strconv.Atoi(raw); err == nil && width > 0 {
			return width
		}
	}

	if width, ok := systemTerminalWidth(); ok {
		return width
	}

	return defaultWidth
}

// colorEnabled reports whether w is a terminal that should receive ANSI colors.
func colorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
