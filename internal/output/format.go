// Package output renders solver results for the command line.
package output

import (
	"os"
	"strings"
	"sync/atomic"
)

// EnvOutput overrides the default output format.
const EnvOutput = "WORDSMITH_OUTPUT"

// Supported formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatHTML  = "html"
)

// Formats lists every format DisplayResponse accepts.
var Formats = []string{FormatText, FormatTable, FormatJSON, FormatYAML, FormatHTML}

var machineMode atomic.Bool

// DefaultFormat returns the preferred output format unless WORDSMITH_OUTPUT is set to a supported value.
// The result is also recorded with SetFormat.
func DefaultFormat(preferred string, allowed []string) string {
	format := preferred

	if env := strings.ToLower(strings.TrimSpace(os.Getenv(EnvOutput))); env != "" {
		for _, option := range allowed {
			if env == option {
				format = env

				break
			}
		}
	}

	SetFormat(format)

	return format
}

// SetFormat records the active format so progress output can stay out of
// machine-readable streams.
func SetFormat(format string) {
	switch strings.ToLower(format) {
	case FormatJSON, FormatYAML, FormatHTML:
		machineMode.Store(true)
	default:
		machineMode.Store(false)
	}
}

// IsMachineMode reports whether the active format is meant for other programs.
func IsMachineMode() bool {
	return machineMode.Load()
}

// IsSupported reports whether format is one of Formats.
func IsSupported(format string) bool {
	for _, f := range Formats {
		if strings.EqualFold(f, format) {
			return true
		}
	}

	return false
}
