package tui

import (
	"github.com/gdamore/tcell/v2"
)

// Styles holds the color scheme for the TUI.
type Styles struct {
	BgColor     tcell.Color
	FgColor     tcell.Color
	BorderColor tcell.Color

	StatusOK      tcell.Color
	StatusWarning tcell.Color
	StatusError   tcell.Color
	StatusInfo    tcell.Color

	HighScore   tcell.Color
	MediumScore tcell.Color
	LowScore    tcell.Color

	GroupHeader tcell.Color
	Notice      tcell.Color
	Copied      tcell.Color

	TitleFg tcell.Color
}

// DefaultStyles returns the default dark color scheme.
func DefaultStyles() *Styles {
	return &Styles{
		BgColor:     tcell.ColorBlack,
		FgColor:     tcell.ColorWhite,
		BorderColor: tcell.ColorDarkCyan,

		StatusOK:      tcell.ColorGreen,
		StatusWarning: tcell.ColorYellow,
		StatusError:   tcell.ColorRed,
		StatusInfo:    tcell.ColorDodgerBlue,

		HighScore:   tcell.ColorGreen,
		MediumScore: tcell.ColorYellow,
		LowScore:    tcell.ColorWhite,

		GroupHeader: tcell.ColorAqua,
		Notice:      tcell.ColorGray,
		Copied:      tcell.ColorGreen,

		TitleFg: tcell.ColorAqua,
	}
}

// ScoreColor returns the color for a score badge class.
func (s *Styles) ScoreColor(class string) tcell.Color {
	switch class {
	case "high-score":
		return s.HighScore
	case "medium-score":
		return s.MediumScore
	default:
		return s.LowScore
	}
}

// ColorName converts tcell.Color to a tview color tag name.
func ColorName(color tcell.Color) string {
	switch color {
	case tcell.ColorGreen:
		return "green"
	case tcell.ColorRed:
		return "red"
	case tcell.ColorYellow:
		return "yellow"
	case tcell.ColorDodgerBlue:
		return "dodgerblue"
	case tcell.ColorGray:
		return "gray"
	case tcell.ColorAqua:
		return "aqua"
	case tcell.ColorDarkCyan:
		return "darkcyan"
	default:
		return "white"
	}
}
