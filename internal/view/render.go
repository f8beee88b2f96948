package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kedare/wordsmith/internal/api"
)

// Copy control labels.
const (
	CopyLabel   = "copy"
	CopiedLabel = "copied"
)

// Collapse indicators shown in group headers.
const (
	IndicatorOpen   = "▼"
	IndicatorClosed = "▶"
)

// GroupSeparator joins the words of a group for the copy-group action.
const GroupSeparator = ", "

// Renderer builds element trees from a State. Acks may be nil.
type Renderer struct {
	Acks *CopyAcks
}

// Render builds the full results tree, or nil when there is no response to show.
func (r Renderer) Render(s State) *Node {
	resp := s.Response
	if resp == nil {
		return nil
	}

	root := newNode(KindResults).withID("results").
		set(AttrMode, string(s.EffectiveMode())).
		add(summaryNode(resp))

	if resp.HasFilterSummary() {
		root.add(newNode(KindBanner).withID("filter-summary").withText(resp.FiltersApplied))
	}

	if s.ToggleVisible() {
		root.add(toggleNode(s.EffectiveMode()))
	}

	if resp.TotalWords == 0 {
		return root.add(noticeNode(resp))
	}

	if s.EffectiveMode() == api.ViewGrouped {
		return root.add(r.groups(resp, s.Seq, s.Collapse))
	}

	return root.add(r.flat(resp, s.Seq))
}

// RenderGroup builds the subtree of group index alone, for scoped re-rendering.
func (r Renderer) RenderGroup(s State, index int) *Node {
	groups := s.Response.Groups()
	if index < 0 || index >= len(groups) {
		return nil
	}

	return r.group(groups[index], s.Seq, index, s.Collapse.IsOpen(index))
}

// RenderCopyControl rebuilds a copy button for its current acknowledgement state.
func (r Renderer) RenderCopyControl(id, payload string) *Node {
	copied := r.Acks.IsCopied(id)

	n := newNode(KindCopy).withID(id).set(AttrCopy, payload)
	if copied {
		return n.withText(CopiedLabel).withClass("copied").set(AttrState, CopiedLabel)
	}

	return n.withText(CopyLabel).set(AttrState, CopyLabel)
}

func (r Renderer) flat(resp *api.SolveResponse, seq uint64) *Node {
	list := newNode(KindList).withID("word-list")

	for i, w := range resp.AllWords() {
		list.add(r.row(w, seq, i+1, fmt.Sprintf("word-%d", i)))
	}

	return list
}

func (r Renderer) groups(resp *api.SolveResponse, seq uint64, collapse Collapse) *Node {
	container := newNode(KindGroups).withID("groups")

	for i, g := range resp.Groups() {
		container.add(r.group(g, seq, i, collapse.IsOpen(i)))
	}

	return container
}

func (r Renderer) group(g api.Group, seq uint64, index int, open bool) *Node {
	id := fmt.Sprintf("group-%d", index)
	indicator := IndicatorClosed
	if open {
		indicator = IndicatorOpen
	}

	header := newNode(KindGroupHeader).withID(id+"-header").withText(g.Name).
		set(AttrCount, Plural(g.Count, "word")).
		set(AttrScore, fmt.Sprintf("%d pts", g.TotalScore)).
		set(AttrOpen, indicator).
		add(r.RenderCopyControl(copyID(seq, id), strings.Join(g.WordList(), GroupSeparator)))

	node := newNode(KindGroup).withID(id).
		set(AttrIndex, strconv.Itoa(index)).
		set(AttrOpen, strconv.FormatBool(open)).
		add(header)

	if !open {
		return node
	}

	body := newNode(KindGroupBody).withID(id + "-body")
	for i, w := range g.Words {
		body.add(r.row(w, seq, i+1, fmt.Sprintf("%s-word-%d", id, i)))
	}

	return node.add(body)
}

func (r Renderer) row(w api.WordResult, seq uint64, rank int, id string) *Node {
	upper := strings.ToUpper(w.Word)

	return newNode(KindRow).withID(id).
		set(AttrRank, strconv.Itoa(rank)).
		set(AttrWord, upper).
		set(AttrScore, strconv.Itoa(w.Score)).
		set(AttrLength, strconv.Itoa(w.Length)).
		add(
			newNode(KindRank).withText(fmt.Sprintf("#%d", rank)),
			newNode(KindWord).withText(upper),
			newNode(KindLength).withText(Plural(w.Length, "letter")),
			newNode(KindBadge).withText(fmt.Sprintf("%d pts", w.Score)).withClass(ScoreClass(w.Score)),
			r.RenderCopyControl(copyID(seq, id), w.Word),
		)
}

// copyID scopes a copy control to the response it was rendered from, so an
// acknowledgement never carries over to the same position in a later response.
func copyID(seq uint64, id string) string {
	return fmt.Sprintf("copy-%d-%s", seq, id)
}

func summaryNode(resp *api.SolveResponse) *Node {
	letters := strings.ToUpper(resp.Letters)
	count := Plural(resp.TotalWords, "word")

	return newNode(KindSummary).withID("summary").
		withText(fmt.Sprintf("%s: %s", letters, count)).
		set(AttrLetters, letters).
		set(AttrTotal, count)
}

func toggleNode(active api.ViewType) *Node {
	toggle := newNode(KindToggle).withID("view-toggle").set(AttrMode, string(active))

	for _, mode := range []api.ViewType{api.ViewGrouped, api.ViewFlat} {
		toggle.add(newNode(KindToggleOption).withID("view-"+string(mode)).
			withText(strings.ToUpper(string(mode[:1]))+string(mode[1:])).
			set(AttrMode, string(mode)).
			set(AttrSelected, strconv.FormatBool(mode == active)))
	}

	return toggle
}

func noticeNode(resp *api.SolveResponse) *Node {
	return newNode(KindNotice).withID("no-results").
		withText(fmt.Sprintf("No valid words found with the letters %q", strings.ToUpper(resp.Letters)))
}

// ScoreClass buckets a score for badge styling.
func ScoreClass(score int) string {
	switch {
	case score >= 10:
		return "high-score"
	case score >= 5:
		return "medium-score"
	default:
		return "low-score"
	}
}

// Plural formats n with a singular or plural noun.
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}

	return fmt.Sprintf("%d %ss", n, noun)
}
