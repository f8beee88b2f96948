package view

import (
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var tagByKind = map[Kind]atom.Atom{
	KindResults:      atom.Section,
	KindSummary:      atom.H3,
	KindBanner:       atom.Div,
	KindToggle:       atom.Div,
	KindToggleOption: atom.Button,
	KindNotice:       atom.P,
	KindList:         atom.Ol,
	KindGroups:       atom.Div,
	KindGroup:        atom.Div,
	KindGroupHeader:  atom.Div,
	KindGroupBody:    atom.Ul,
	KindRow:          atom.Li,
	KindCopy:         atom.Button,
}

// WriteHTML serialises the tree rooted at n as an HTML fragment.
func WriteHTML(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}

	return html.Render(w, toHTML(n))
}

// HTML returns the fragment WriteHTML would write.
func HTML(n *Node) (string, error) {
	var sb strings.Builder
	if err := WriteHTML(&sb, n); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func toHTML(n *Node) *html.Node {
	tag, ok := tagByKind[n.Kind]
	if !ok {
		tag = atom.Span
	}

	el := &html.Node{Type: html.ElementNode, DataAtom: tag, Data: tag.String()}

	if n.ID != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "id", Val: n.ID})
	}

	class := string(n.Kind)
	if n.Class != "" {
		class += " " + n.Class
	}
	el.Attr = append(el.Attr, html.Attribute{Key: "class", Val: class})

	if tag == atom.Button {
		el.Attr = append(el.Attr, html.Attribute{Key: "type", Val: "button"})
	}

	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		el.Attr = append(el.Attr, html.Attribute{Key: "data-" + k, Val: n.Attrs[k]})
	}

	if n.Kind == KindGroupHeader {
		indicator := &html.Node{Type: html.ElementNode, DataAtom: atom.Span, Data: "span",
			Attr: []html.Attribute{{Key: "class", Val: "toggle-indicator"}}}
		indicator.AppendChild(&html.Node{Type: html.TextNode, Data: n.Attr(AttrOpen)})
		el.AppendChild(indicator)

		name := &html.Node{Type: html.ElementNode, DataAtom: atom.Span, Data: "span",
			Attr: []html.Attribute{{Key: "class", Val: "group-name"}}}
		name.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
		el.AppendChild(name)

		stats := &html.Node{Type: html.ElementNode, DataAtom: atom.Span, Data: "span",
			Attr: []html.Attribute{{Key: "class", Val: "group-stats"}}}
		stats.AppendChild(&html.Node{Type: html.TextNode, Data: n.Attr(AttrCount) + " · " + n.Attr(AttrScore)})
		el.AppendChild(stats)
	} else if n.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}

	for _, c := range n.Children {
		el.AppendChild(toHTML(c))
	}

	return el
}
