package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/sync/errgroup"

	"github.com/kedare/wordsmith/internal/api"
	"github.com/kedare/wordsmith/internal/clipboard"
	"github.com/kedare/wordsmith/internal/form"
	"github.com/kedare/wordsmith/internal/logger"
	"github.com/kedare/wordsmith/internal/view"
)

const (
	mainPage      = "main"
	flashDuration = 3 * time.Second
	optionsWait   = 5 * time.Second
)

// OptionSource advertises the grouping and sorting catalogues.
type OptionSource interface {
	GroupingOptions(ctx context.Context) (*api.GroupingOptions, error)
	SortingOptions(ctx context.Context) (*api.SortingOptions, error)
}

// History records submitted letters and lists the most recent ones.
type History interface {
	Record(letters string) error
	Letters(limit int) ([]string, error)
}

// Config holds the TUI configuration.
type Config struct {
	Solver       view.Solver
	Options      OptionSource
	History      History
	HistoryLimit int
	Defaults     form.Defaults
	CopyAck      time.Duration
	Clipboard    []clipboard.Option
	// Endpoint is shown in the header.
	Endpoint string
}

// App is the interactive word finder.
type App struct {
	*tview.Application
	config   *Config
	styles   *Styles
	keys     *KeyActions
	ctx      context.Context
	cancel   context.CancelFunc
	queue    func(func())
	ctrl     *view.Controller
	acks     *view.CopyAcks
	renderer view.Renderer

	pages     *tview.Pages
	body      *tview.Flex
	header    *tview.TextView
	errorText *tview.TextView
	statusBar *tview.TextView
	flash     *tview.TextView
	loading   *loadingIndicator
	form      *queryForm
	results   *resultsPanel

	flashMx  sync.Mutex
	flashGen uint64
}

// NewApp creates the TUI application.
func NewApp(config *Config) *App {
	a := &App{Application: tview.NewApplication()}
	a.init(config, func(f func()) { a.QueueUpdateDraw(f) })

	return a
}

func (a *App) init(config *Config, queue func(func())) {
	if config.CopyAck <= 0 {
		config.CopyAck = view.CopyAckDuration
	}

	if config.Defaults == (form.Defaults{}) {
		config.Defaults = form.StandardDefaults()
	}

	a.config = config
	a.styles = DefaultStyles()
	a.keys = NewKeyActions()
	a.ctx, a.cancel = context.WithCancel(context.Background())
	a.queue = queue
	a.acks = view.NewCopyAcks(config.CopyAck)
	a.renderer = view.Renderer{Acks: a.acks}

	opts := []view.ControllerOption{
		view.WithCopier(clipboard.New(a.acks, config.Clipboard...)),
		view.WithMode(config.Defaults.ViewType),
	}
	if config.History != nil {
		opts = append(opts, view.WithRecorder(config.History))
	}
	a.ctrl = view.NewController(a.ctx, config.Solver, a, opts...)

	a.acks.OnChange(func(id string, copied bool) {
		a.queue(func() { a.copyChanged(id, copied) })
	})

	a.setupKeys()
	a.buildUI()
}

func (a *App) setupKeys() {
	a.keys.Add(tcell.KeyCtrlS, KeyAction{
		Label:       "^S",
		Description: "Find words",
		Action: func(*tcell.EventKey) *tcell.EventKey {
			a.submit()
			return nil
		},
		Visible: true,
	})
	a.keys.Add(tcell.KeyCtrlR, KeyAction{
		Label:       "^R",
		Description: "Switch between query and results",
		Action: func(*tcell.EventKey) *tcell.EventKey {
			a.switchFocus()
			return nil
		},
		Visible: true,
	})
	a.keys.Add(tcell.KeyEscape, KeyAction{
		Label:       "Esc",
		Description: "Dismiss error, back to query, clear query",
		Action: func(*tcell.EventKey) *tcell.EventKey {
			a.escape()
			return nil
		},
	})
	a.keys.AddRune('c', KeyAction{
		Label:       "c",
		Description: "Copy word or group",
		Action: func(*tcell.EventKey) *tcell.EventKey {
			a.copySelected()
			return nil
		},
		Visible: true,
	})
	a.keys.AddRune(' ', KeyAction{
		Label:       "Space",
		Description: "Expand or collapse group",
		Action: func(*tcell.EventKey) *tcell.EventKey {
			a.toggleSelected()
			return nil
		},
		Visible: true,
	})
	a.keys.AddRune('g', KeyAction{
		Label:       "g",
		Description: "Grouped view",
		Action: func(*tcell.EventKey) *tcell.EventKey {
			a.ctrl.Dispatch(view.SelectMode{Mode: api.ViewGrouped})
			return nil
		},
		Visible: true,
	})
	a.keys.AddRune('f', KeyAction{
		Label:       "f",
		Description: "Flat view",
		Action: func(*tcell.EventKey) *tcell.EventKey {
			a.ctrl.Dispatch(view.SelectMode{Mode: api.ViewFlat})
			return nil
		},
		Visible: true,
	})
	a.keys.AddRune('?', KeyAction{
		Label:       "?",
		Description: "Help",
		Action: func(*tcell.EventKey) *tcell.EventKey {
			a.showHelp()
			return nil
		},
		Visible: true,
	})
	a.keys.Add(tcell.KeyCtrlC, KeyAction{
		Label:       "^C",
		Description: "Quit",
		Action: func(*tcell.EventKey) *tcell.EventKey {
			a.Stop()
			return nil
		},
		Visible: true,
	})
}

func (a *App) buildUI() {
	a.header = tview.NewTextView().SetDynamicColors(true)
	header := fmt.Sprintf("[%s::b]wordsmith[-::-]", ColorName(a.styles.TitleFg))
	if a.config.Endpoint != "" {
		header += " [gray]" + tview.Escape(a.config.Endpoint) + "[-]"
	}
	a.header.SetText(header)

	a.form = newQueryForm(a.styles, a.config.Defaults, a.submit)
	a.loading = newLoadingIndicator(a.queue)
	a.errorText = tview.NewTextView().SetDynamicColors(true)
	a.results = newResultsPanel(a.styles, a.renderer)

	a.results.tree.SetSelectedFunc(func(node *tview.TreeNode) {
		if e, ok := node.GetReference().(*entry); ok && e.kind == view.KindGroupHeader {
			a.ctrl.Dispatch(view.ToggleGroup{Index: e.group})

			return
		}
		a.copySelected()
	})

	a.statusBar = tview.NewTextView().SetDynamicColors(true)
	a.flash = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)

	a.body = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.header, 1, 0, false).
		AddItem(a.form, 5, 0, true).
		AddItem(a.loading, 0, 0, false).
		AddItem(a.errorText, 0, 0, false).
		AddItem(a.results, 0, 0, false).
		AddItem(a.statusBar, 1, 0, false).
		AddItem(a.flash, 1, 0, false)

	a.pages = tview.NewPages().AddPage(mainPage, a.body, true, true)

	a.SetRoot(a.pages, true).SetFocus(a.form.letters)
	a.SetInputCapture(a.handleKeys)
	a.updateStatusBar(a.ctrl.State())
}

// handleKeys routes control keys everywhere and character keys only while the
// results tree has focus, so typing in the query stays untouched.
func (a *App) handleKeys(evt *tcell.EventKey) *tcell.EventKey {
	if name, _ := a.pages.GetFrontPage(); name == helpPage {
		return evt
	}

	if evt.Key() == tcell.KeyRune && !a.results.tree.HasFocus() {
		return evt
	}

	return a.keys.Handle(evt)
}

// Run starts the TUI and blocks until it quits.
func (a *App) Run() error {
	go a.loadOptions()
	go a.refreshHistory()

	defer a.shutdown()

	return a.Application.Run()
}

// Stop quits the TUI.
func (a *App) Stop() {
	a.cancel()
	a.Application.Stop()
}

func (a *App) shutdown() {
	a.cancel()
	a.acks.Stop()
	a.loading.stop()
	a.ctrl.Wait()
}

func (a *App) submit() {
	a.ctrl.Dispatch(view.Submit{Form: a.form.state()})
}

func (a *App) escape() {
	if a.ctrl.State().Error != "" {
		a.ctrl.Dispatch(view.DismissError{})

		return
	}

	if a.results.tree.HasFocus() {
		a.SetFocus(a.form.letters)

		return
	}

	a.form.clear()
	a.SetFocus(a.form.letters)
}

func (a *App) switchFocus() {
	if a.results.tree.HasFocus() {
		a.SetFocus(a.form.letters)

		return
	}

	a.focusResults()
}

// focusResults moves focus to the results tree, or to the query when no
// results are shown.
func (a *App) focusResults() {
	if !a.ctrl.State().ResultsVisible() {
		a.SetFocus(a.form.letters)

		return
	}

	a.SetFocus(a.results.tree)
}

func (a *App) copySelected() {
	e := a.results.selected()
	if e == nil {
		return
	}

	a.ctrl.Dispatch(view.Copy{ControlID: e.copyID, Text: e.payload})
}

func (a *App) toggleSelected() {
	e := a.results.selected()
	if e == nil || e.kind != view.KindGroupHeader {
		return
	}

	a.ctrl.Dispatch(view.ToggleGroup{Index: e.group})
}

func (a *App) showHelp() {
	help := newHelpView(a.styles, a.keys.Help(), func() {
		a.pages.RemovePage(helpPage)
		a.focusResults()
	})

	a.pages.AddPage(helpPage, help, true, true)
	a.SetFocus(help)
}

func (a *App) copyChanged(id string, copied bool) {
	a.results.refreshCopy(id)

	if !copied {
		return
	}

	if node, ok := a.results.copies[id]; ok {
		if e, ok := node.GetReference().(*entry); ok {
			a.Flash(fmt.Sprintf("Copied %s", e.payload), false)
		}
	}
}

// loadOptions replaces the built-in option catalogues with the server's.
func (a *App) loadOptions() {
	if a.config.Options == nil {
		return
	}

	ctx, cancel := context.WithTimeout(a.ctx, optionsWait)
	defer cancel()

	var (
		grouping *api.GroupingOptions
		sorting  *api.SortingOptions
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		grouping, err = a.config.Options.GroupingOptions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sorting, err = a.config.Options.SortingOptions(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Log.Warnf("Using built-in query options: %v", err)
		a.Flash("Server options unavailable, using built-in ones", true)

		return
	}

	logger.Log.Debugf("Loaded %d grouping options from the server", len(grouping.Options))

	a.queue(func() { a.form.applyOptions(grouping, sorting) })
}

func (a *App) refreshHistory() {
	if letters := a.historyLetters(); letters != nil {
		a.queue(func() { a.form.setHistory(letters) })
	}
}

// historyLetters returns the most recent letter sets, or nil.
func (a *App) historyLetters() []string {
	if a.config.History == nil {
		return nil
	}

	limit := a.config.HistoryLimit
	if limit <= 0 {
		limit = 20
	}

	letters, err := a.config.History.Letters(limit)
	if err != nil {
		logger.Log.Warnf("Failed to load history: %v", err)

		return nil
	}

	return letters
}

func (a *App) updateStatusBar(s view.State) {
	var state string

	switch s.Status {
	case view.StatusLoading:
		state = fmt.Sprintf("[%s]solving #%d[-]", ColorName(a.styles.StatusWarning), s.Seq)
	case view.StatusSuccess:
		state = fmt.Sprintf("[%s]%s[-]", ColorName(a.styles.StatusOK), view.Plural(s.Response.TotalWords, "word"))
	case view.StatusFailure:
		state = fmt.Sprintf("[%s]failed[-]", ColorName(a.styles.StatusError))
	default:
		state = "[gray]ready[-]"
	}

	a.statusBar.SetText(" " + state + "  " + strings.Join(a.keys.Hints(), " "))
}

// Flash displays a temporary message.
func (a *App) Flash(message string, isError bool) {
	a.flashMx.Lock()
	a.flashGen++
	gen := a.flashGen
	a.flashMx.Unlock()

	color := a.styles.StatusOK
	if isError {
		color = a.styles.StatusError
	}

	a.queue(func() {
		a.flash.SetText(fmt.Sprintf("[%s::b] %s ", ColorName(color), tview.Escape(message)))
	})

	go func() {
		select {
		case <-a.ctx.Done():
			return
		case <-time.After(flashDuration):
		}

		a.flashMx.Lock()
		current := a.flashGen == gen
		a.flashMx.Unlock()

		if current {
			a.queue(func() { a.flash.SetText("") })
		}
	}()
}
