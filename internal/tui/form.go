package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/kedare/wordsmith/internal/api"
	"github.com/kedare/wordsmith/internal/form"
	"github.com/kedare/wordsmith/internal/solver"
)

// Labels of the query controls.
const (
	labelLetters    = "Letters"
	labelGroupBy    = "Group by"
	labelSortGroups = "Sort groups"
	labelSortWithin = "Sort within groups"
	labelView       = "View"
	labelMinLength  = "Min length"
	labelMaxLength  = "Max length"
	labelStartsWith = "Starts with"
	labelEndsWith   = "Ends with"

	validMark = " ✓"

	submitLabel  = "Find words"
	solvingLabel = "Solving…"
)

var viewOptions = []api.Option{
	{Value: string(api.ViewGrouped), Label: "Grouped"},
	{Value: string(api.ViewFlat), Label: "Flat"},
}

// choice is a drop-down whose labels map onto wire values.
type choice struct {
	*tview.DropDown
	values []string
}

func newChoice(label string, options []api.Option, current string) *choice {
	c := &choice{DropDown: tview.NewDropDown().SetLabel(label)}
	c.setOptions(options, current)

	return c
}

func (c *choice) setOptions(options []api.Option, current string) {
	if len(options) == 0 {
		return
	}

	labels := make([]string, len(options))
	c.values = make([]string, len(options))
	selected := 0

	for i, opt := range options {
		labels[i] = opt.Label
		c.values[i] = opt.Value
		if opt.Value == current {
			selected = i
		}
	}

	c.SetOptions(labels, nil)
	c.SetCurrentOption(selected)
}

func (c *choice) value() string {
	idx, _ := c.GetCurrentOption()
	if idx < 0 || idx >= len(c.values) {
		return ""
	}

	return c.values[idx]
}

// queryForm holds the controls feeding a query. Text controls are normalized
// on every change.
type queryForm struct {
	*tview.Form

	letters    *tview.InputField
	minLength  *tview.InputField
	maxLength  *tview.InputField
	startsWith *tview.InputField
	endsWith   *tview.InputField

	groupBy    *choice
	sortGroups *choice
	sortWithin *choice
	viewType   *choice

	submit *tview.Button

	history []string
	histPos int
}

func newQueryForm(styles *Styles, defaults form.Defaults, onSubmit func()) *queryForm {
	grouping := solver.GroupingOptions()
	sorting := solver.SortingOptions()

	f := &queryForm{
		Form:    tview.NewForm(),
		histPos: -1,

		letters:    tview.NewInputField().SetLabel(labelLetters).SetFieldWidth(api.MaxLetters + 2).SetPlaceholder("e.g. tacs"),
		minLength:  tview.NewInputField().SetLabel(labelMinLength).SetFieldWidth(4),
		maxLength:  tview.NewInputField().SetLabel(labelMaxLength).SetFieldWidth(4),
		startsWith: tview.NewInputField().SetLabel(labelStartsWith).SetFieldWidth(3),
		endsWith:   tview.NewInputField().SetLabel(labelEndsWith).SetFieldWidth(3),

		groupBy:    newChoice(labelGroupBy, grouping.Options, string(defaults.GroupBy)),
		sortGroups: newChoice(labelSortGroups, sorting.GroupSort, string(defaults.SortGroups)),
		sortWithin: newChoice(labelSortWithin, sorting.WithinGroupSort, string(defaults.SortWithinGroups)),
		viewType:   newChoice(labelView, viewOptions, string(defaults.ViewType)),
	}

	f.normalizeWith(f.letters, form.NormalizeLetters)
	f.normalizeWith(f.startsWith, form.NormalizeAffix)
	f.normalizeWith(f.endsWith, form.NormalizeAffix)

	digits := func(text string, last rune) bool {
		return tview.InputFieldInteger(text, last) && last != '-' && len(text) <= 2
	}
	f.minLength.SetAcceptanceFunc(digits)
	f.maxLength.SetAcceptanceFunc(digits)

	f.letters.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			onSubmit()
		}
	})
	f.letters.SetInputCapture(f.browseHistory)

	f.AddFormItem(f.letters).
		AddFormItem(f.groupBy).
		AddFormItem(f.sortGroups).
		AddFormItem(f.sortWithin).
		AddFormItem(f.viewType).
		AddFormItem(f.minLength).
		AddFormItem(f.maxLength).
		AddFormItem(f.startsWith).
		AddFormItem(f.endsWith).
		AddButton(submitLabel, onSubmit)

	f.submit = f.GetButton(0)
	f.SetHorizontal(true).SetItemPadding(2)
	f.SetBorder(true).SetTitle(" Query ").SetBorderColor(styles.BorderColor)

	return f
}

// normalizeWith rewrites the field through fn on every edit and marks its label
// once it holds a usable value.
func (f *queryForm) normalizeWith(field *tview.InputField, fn func(string) string) {
	label := field.GetLabel()

	field.SetChangedFunc(func(text string) {
		clean := fn(text)
		if clean != text {
			field.SetText(clean)

			return
		}

		if form.ValidityOf(clean) == form.ValidityValid {
			field.SetLabel(label + validMark)
		} else {
			field.SetLabel(label)
		}
	})
}

// state snapshots the controls.
func (f *queryForm) state() form.State {
	return form.State{
		Letters:          f.letters.GetText(),
		GroupBy:          api.GroupBy(f.groupBy.value()),
		SortGroups:       api.GroupOrder(f.sortGroups.value()),
		SortWithinGroups: api.WordOrder(f.sortWithin.value()),
		ViewType:         api.ViewType(f.viewType.value()),
		MinLength:        f.minLength.GetText(),
		MaxLength:        f.maxLength.GetText(),
		StartsWith:       f.startsWith.GetText(),
		EndsWith:         f.endsWith.GetText(),
	}
}

// setSubmitting reflects whether a submit is accepted.
func (f *queryForm) setSubmitting(enabled bool) {
	f.submit.SetDisabled(!enabled)
	if enabled {
		f.submit.SetLabel(submitLabel)
	} else {
		f.submit.SetLabel(solvingLabel)
	}
}

// clear empties the text controls and leaves the option controls alone.
func (f *queryForm) clear() {
	for _, field := range []*tview.InputField{f.letters, f.minLength, f.maxLength, f.startsWith, f.endsWith} {
		field.SetText("")
	}
	f.histPos = -1
}

// applyOptions swaps in option catalogues advertised by the solver.
func (f *queryForm) applyOptions(grouping *api.GroupingOptions, sorting *api.SortingOptions) {
	if grouping != nil {
		f.groupBy.setOptions(grouping.Options, f.groupBy.value())
	}

	if sorting != nil {
		f.sortGroups.setOptions(sorting.GroupSort, f.sortGroups.value())
		f.sortWithin.setOptions(sorting.WithinGroupSort, f.sortWithin.value())
	}
}

// setHistory replaces the letter sets Up/Down cycle through, most recent first.
func (f *queryForm) setHistory(letters []string) {
	f.history = letters
	f.histPos = -1
}

func (f *queryForm) browseHistory(evt *tcell.EventKey) *tcell.EventKey {
	if len(f.history) == 0 {
		return evt
	}

	switch evt.Key() {
	case tcell.KeyUp:
		if f.histPos < len(f.history)-1 {
			f.histPos++
		}
	case tcell.KeyDown:
		if f.histPos <= 0 {
			f.histPos = -1
			f.letters.SetText("")

			return nil
		}
		f.histPos--
	default:
		return evt
	}

	f.letters.SetText(f.history[f.histPos])

	return nil
}
