package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"

	"github.com/kedare/wordsmith/internal/view"
)

// entry is the reference attached to every selectable tree node.
type entry struct {
	kind    view.Kind
	group   int
	base    string
	copyID  string
	payload string
}

// resultsPanel draws a view.Node results tree with tview widgets.
type resultsPanel struct {
	*tview.Flex
	styles   *Styles
	renderer view.Renderer

	summary *tview.TextView
	banner  *tview.TextView
	toggle  *tview.TextView
	tree    *tview.TreeView
	root    *tview.TreeNode

	groups map[int]*tview.TreeNode
	copies map[string]*tview.TreeNode
}

func newResultsPanel(styles *Styles, renderer view.Renderer) *resultsPanel {
	p := &resultsPanel{
		Flex:     tview.NewFlex().SetDirection(tview.FlexRow),
		styles:   styles,
		renderer: renderer,
		summary:  tview.NewTextView().SetDynamicColors(true),
		banner:   tview.NewTextView().SetDynamicColors(true),
		toggle:   tview.NewTextView().SetDynamicColors(true),
		tree:     tview.NewTreeView(),
		root:     tview.NewTreeNode("results").SetSelectable(false),
		groups:   make(map[int]*tview.TreeNode),
		copies:   make(map[string]*tview.TreeNode),
	}

	p.banner.SetTextColor(styles.StatusWarning)
	p.tree.SetRoot(p.root).SetTopLevel(1).SetGraphicsColor(styles.BorderColor)

	p.AddItem(p.summary, 1, 0, false).
		AddItem(p.banner, 0, 0, false).
		AddItem(p.toggle, 0, 0, false).
		AddItem(p.tree, 0, 1, true)
	p.SetBorder(true).SetTitle(" Results ").SetBorderColor(styles.BorderColor)

	return p
}

// apply replaces everything shown with root. A nil root empties the panel.
func (p *resultsPanel) apply(root *view.Node) {
	p.groups = make(map[int]*tview.TreeNode)
	p.copies = make(map[string]*tview.TreeNode)
	p.root.ClearChildren()
	p.summary.SetText("")
	p.show(p.banner, "")
	p.show(p.toggle, "")

	if root == nil {
		p.tree.SetCurrentNode(nil)

		return
	}

	for _, child := range root.Children {
		switch child.Kind {
		case view.KindSummary:
			p.summary.SetText(fmt.Sprintf("[%s::b]%s[-::-]", ColorName(p.styles.TitleFg), tview.Escape(child.Text)))
		case view.KindBanner:
			p.show(p.banner, tview.Escape(child.Text))
		case view.KindToggle:
			p.show(p.toggle, p.toggleText(child))
		case view.KindNotice:
			p.root.AddChild(tview.NewTreeNode(child.Text).SetSelectable(false).SetColor(p.styles.Notice))
		case view.KindList:
			for _, row := range p.rows(child.Children) {
				p.root.AddChild(row)
			}
		case view.KindGroups:
			for _, g := range child.Children {
				p.root.AddChild(p.group(g))
			}
		}
	}

	p.tree.SetCurrentNode(p.firstSelectable())
}

// applyGroup redraws one group in place, leaving every other node untouched.
func (p *resultsPanel) applyGroup(g *view.Node) {
	if g == nil {
		return
	}

	index, err := strconv.Atoi(g.Attr(view.AttrIndex))
	if err != nil {
		return
	}

	existing, ok := p.groups[index]
	if !ok {
		return
	}

	current := p.tree.GetCurrentNode()
	wasInside := false
	for _, child := range existing.GetChildren() {
		if child == current {
			wasInside = true
		}
		if e, ok := child.GetReference().(*entry); ok {
			delete(p.copies, e.copyID)
		}
	}

	fresh := p.group(g)
	existing.SetText(fresh.GetText()).
		SetReference(fresh.GetReference()).
		SetChildren(fresh.GetChildren()).
		SetExpanded(fresh.IsExpanded())
	p.groups[index] = existing
	if e, ok := existing.GetReference().(*entry); ok {
		p.copies[e.copyID] = existing
	}

	if wasInside && !existing.IsExpanded() {
		p.tree.SetCurrentNode(existing)
	}
}

// refreshCopy redraws the label of one copy control.
func (p *resultsPanel) refreshCopy(id string) {
	node, ok := p.copies[id]
	if !ok {
		return
	}

	if e, ok := node.GetReference().(*entry); ok {
		node.SetText(p.withCopy(e))
	}
}

// selected returns the entry under the cursor, or nil.
func (p *resultsPanel) selected() *entry {
	node := p.tree.GetCurrentNode()
	if node == nil {
		return nil
	}

	e, _ := node.GetReference().(*entry)

	return e
}

func (p *resultsPanel) show(tv *tview.TextView, text string) {
	tv.SetText(text)

	height := 0
	if text != "" {
		height = 1
	}
	p.ResizeItem(tv, height, 0)
}

func (p *resultsPanel) toggleText(toggle *view.Node) string {
	parts := []string{"View:"}
	for _, opt := range toggle.Children {
		if opt.Attr(view.AttrSelected) == "true" {
			parts = append(parts, fmt.Sprintf("[%s::r] %s [-::-]", ColorName(p.styles.TitleFg), opt.Text))
		} else {
			parts = append(parts, " "+opt.Text+" ")
		}
	}

	return strings.Join(parts, " ") + "  [gray](g/f to switch)[-]"
}

func (p *resultsPanel) group(g *view.Node) *tview.TreeNode {
	header := g.Child(view.KindGroupHeader)
	index, _ := strconv.Atoi(g.Attr(view.AttrIndex))
	control := header.CopyControl()

	e := &entry{
		kind:    view.KindGroupHeader,
		group:   index,
		base:    fmt.Sprintf("%s %s  %s · %s", header.Attr(view.AttrOpen), header.Text, header.Attr(view.AttrCount), header.Attr(view.AttrScore)),
		copyID:  control.ID,
		payload: control.Attr(view.AttrCopy),
	}

	node := tview.NewTreeNode(p.withCopy(e)).
		SetReference(e).
		SetColor(p.styles.GroupHeader).
		SetSelectable(true)

	body := g.Child(view.KindGroupBody)
	node.SetExpanded(body != nil)
	if body != nil {
		node.SetChildren(p.rows(body.Children))
	}

	p.groups[index] = node
	p.copies[control.ID] = node

	return node
}

func (p *resultsPanel) rows(rows []*view.Node) []*tview.TreeNode {
	rankWidth, wordWidth, lengthWidth := 0, 0, 0
	for _, row := range rows {
		rankWidth = max(rankWidth, runewidth.StringWidth(row.Child(view.KindRank).Text))
		wordWidth = max(wordWidth, runewidth.StringWidth(row.Child(view.KindWord).Text))
		lengthWidth = max(lengthWidth, runewidth.StringWidth(row.Child(view.KindLength).Text))
	}

	nodes := make([]*tview.TreeNode, 0, len(rows))
	for _, row := range rows {
		badge := row.Child(view.KindBadge)
		control := row.CopyControl()

		e := &entry{
			kind:  view.KindRow,
			group: -1,
			base: fmt.Sprintf("%s  %s  %s  %s",
				runewidth.FillLeft(row.Child(view.KindRank).Text, rankWidth),
				runewidth.FillRight(row.Child(view.KindWord).Text, wordWidth),
				runewidth.FillRight(row.Child(view.KindLength).Text, lengthWidth),
				runewidth.FillLeft(badge.Text, len("99 pts")),
			),
			copyID:  control.ID,
			payload: control.Attr(view.AttrCopy),
		}

		node := tview.NewTreeNode(p.withCopy(e)).
			SetReference(e).
			SetColor(p.styles.ScoreColor(badge.Class)).
			SetSelectable(true)

		p.copies[control.ID] = node
		nodes = append(nodes, node)
	}

	return nodes
}

func (p *resultsPanel) withCopy(e *entry) string {
	control := p.renderer.RenderCopyControl(e.copyID, e.payload)

	mark := "⧉"
	if control.Text == view.CopiedLabel {
		mark = "✓"
	}

	return fmt.Sprintf("%s  %s %s", e.base, mark, control.Text)
}

func (p *resultsPanel) firstSelectable() *tview.TreeNode {
	for _, child := range p.root.GetChildren() {
		if _, ok := child.GetReference().(*entry); ok {
			return child
		}
	}

	return nil
}
