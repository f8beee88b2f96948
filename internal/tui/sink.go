package tui

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/kedare/wordsmith/internal/view"
)

// ApplyStatus shows or hides the loading line, the error line and the results
// panel, and enables the submit button. The controller holds its lock while
// calling, so widget work is queued.
func (a *App) ApplyStatus(s view.State) {
	a.queue(func() { a.applyStatus(s) })
}

// ApplyResults redraws the whole results panel.
func (a *App) ApplyResults(s view.State) {
	root := a.renderer.Render(s)

	a.queue(func() {
		a.results.apply(root)
		a.showResults(s.ResultsVisible())
		a.form.setHistory(a.historyLetters())
	})
}

// ApplyGroup redraws one group.
func (a *App) ApplyGroup(s view.State, index int) {
	node := a.renderer.RenderGroup(s, index)

	a.queue(func() { a.results.applyGroup(node) })
}

func (a *App) applyStatus(s view.State) {
	a.form.setSubmitting(s.SubmitEnabled())

	if s.LoadingVisible() {
		a.loading.start(fmt.Sprintf("Finding words in %q", a.form.letters.GetText()))
		a.body.ResizeItem(a.loading, 1, 0)
	} else {
		a.loading.stop()
		a.body.ResizeItem(a.loading, 0, 0)
	}

	if s.ErrorVisible() {
		a.errorText.SetText(fmt.Sprintf("[%s::b]✗ %s[-::-]  [gray](Esc to dismiss)[-]",
			ColorName(a.styles.StatusError), tview.Escape(s.Error)))
		a.body.ResizeItem(a.errorText, 1, 0)
	} else {
		a.errorText.SetText("")
		a.body.ResizeItem(a.errorText, 0, 0)
	}

	a.showResults(s.ResultsVisible())
	a.updateStatusBar(s)
}

func (a *App) showResults(visible bool) {
	if visible {
		a.body.ResizeItem(a.results, 0, 1)

		return
	}

	a.body.ResizeItem(a.results, 0, 0)
	if a.results.tree.HasFocus() {
		a.SetFocus(a.form.letters)
	}
}
