package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

const helpPage = "help"

// newHelpView lists the key bindings in a scrollable box. Esc or ? calls onClose.
func newHelpView(styles *Styles, entries []HelpEntry, onClose func()) *tview.TextView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetText(renderHelp(styles, entries))

	tv.SetBorder(true).
		SetTitle(" Keyboard Shortcuts ").
		SetBorderColor(styles.BorderColor).
		SetBackgroundColor(styles.BgColor)

	tv.SetInputCapture(func(evt *tcell.EventKey) *tcell.EventKey {
		if evt.Key() == tcell.KeyEscape || (evt.Key() == tcell.KeyRune && evt.Rune() == '?') {
			onClose()

			return nil
		}

		return evt
	})

	return tv
}

func renderHelp(styles *Styles, entries []HelpEntry) string {
	width := 0
	for _, e := range entries {
		width = max(width, runewidth.StringWidth(e.Key))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s::b]wordsmith - Keyboard Shortcuts[-::-]\n\n", ColorName(styles.TitleFg))

	b.WriteString("[yellow]Query[-]\n")
	b.WriteString("  [white]Tab[-]       Next control\n")
	b.WriteString("  [white]Enter[-]     Find words from the letters field\n")
	b.WriteString("  [white]↑/↓[-]       Recent letters in the letters field\n\n")

	b.WriteString("[yellow]Results[-]\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "  [white]%s[-]  %s\n", runewidth.FillRight(tview.Escape(e.Key), width), e.Description)
	}

	b.WriteString("\n[gray]Press Esc to close this help screen[-]\n")

	return b.String()
}
