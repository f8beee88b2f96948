// Package version exposes build metadata stamped in with -ldflags.
package version

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Overridden at build time with -ldflags "-X github.com/kedare/wordsmith/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
	BuildUser = "unknown"
	BuildHost = "unknown"
	BuildArch = ""
)

// Info contains metadata about the compiled binary.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	BuildUser string `json:"build_user" yaml:"build_user"`
	BuildHost string `json:"build_host" yaml:"build_host"`
	BuildArch string `json:"arch" yaml:"arch"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// Get returns build metadata with blank values replaced by defaults.
func Get() Info {
	arch := strings.TrimSpace(BuildArch)
	if arch == "" {
		arch = runtime.GOOS + "/" + runtime.GOARCH
	}

	return Info{
		Version:   orDefault(Version, "dev"),
		Commit:    orDefault(Commit, "unknown"),
		BuildDate: orDefault(BuildDate, "unknown"),
		BuildUser: orDefault(BuildUser, "unknown"),
		BuildHost: orDefault(BuildHost, "unknown"),
		BuildArch: arch,
		GoVersion: runtime.Version(),
	}
}

// UserAgent identifies this binary to a remote solver.
func (i Info) UserAgent() string {
	return fmt.Sprintf("wordsmith/%s (%s)", strings.TrimSpace(i.Version), i.BuildArch)
}

// RelativeTime describes how long ago the binary was built, or "" when the
// build date is missing or not RFC 3339.
func (i Info) RelativeTime() string {
	return i.relativeTo(time.Now())
}

func (i Info) relativeTo(now time.Time) string {
	built, err := time.Parse(time.RFC3339, i.BuildDate)
	if err != nil {
		return ""
	}

	age := now.Sub(built)
	switch {
	case age < 0:
		return ""
	case age < time.Hour:
		return "just now"
	case age < 24*time.Hour:
		return plural(int(age/time.Hour), "hour") + " ago"
	default:
		return plural(int(age/(24*time.Hour)), "day") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}

	return fmt.Sprintf("%d %ss", n, unit)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}
