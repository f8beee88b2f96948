package view

// Kind names the role of a Node in the result tree.
type Kind string

const (
	KindResults      Kind = "results"
	KindSummary      Kind = "summary"
	KindBanner       Kind = "filter-summary"
	KindToggle       Kind = "view-toggle"
	KindToggleOption Kind = "view-option"
	KindNotice       Kind = "notice"
	KindList         Kind = "word-list"
	KindGroups       Kind = "groups"
	KindGroup        Kind = "group"
	KindGroupHeader  Kind = "group-header"
	KindGroupBody    Kind = "group-body"
	KindRow          Kind = "word-item"
	KindRank         Kind = "rank"
	KindWord         Kind = "word-text"
	KindLength       Kind = "word-length"
	KindBadge        Kind = "score-badge"
	KindCopy         Kind = "copy-btn"
)

// Attribute keys set by the renderer.
const (
	AttrRank     = "rank"
	AttrWord     = "word"
	AttrScore    = "score"
	AttrLength   = "length"
	AttrCount    = "count"
	AttrIndex    = "index"
	AttrOpen     = "open"
	AttrCopy     = "copy"
	AttrState    = "state"
	AttrMode     = "mode"
	AttrSelected = "selected"
	AttrLetters  = "letters"
	AttrTotal    = "total"
)

// Node is one element of the rendered result tree. It carries data only; the
// TUI, the text printer and the HTML writer each decide how to draw it.
type Node struct {
	Kind     Kind
	ID       string
	Class    string
	Text     string
	Attrs    map[string]string
	Children []*Node
}

func newNode(kind Kind) *Node {
	return &Node{Kind: kind}
}

func (n *Node) withID(id string) *Node {
	n.ID = id
	return n
}

func (n *Node) withText(text string) *Node {
	n.Text = text
	return n
}

func (n *Node) withClass(class string) *Node {
	n.Class = class
	return n
}

func (n *Node) set(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}

	n.Attrs[key] = value

	return n
}

func (n *Node) add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}

	return n
}

// Attr returns the attribute key, or "".
func (n *Node) Attr(key string) string {
	if n == nil {
		return ""
	}

	return n.Attrs[key]
}

// Walk visits n and its descendants depth first until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}

	if !fn(n) {
		return false
	}

	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}

	return true
}

// Find returns the first node with the given ID.
func (n *Node) Find(id string) *Node {
	var found *Node

	n.Walk(func(x *Node) bool {
		if x.ID == id {
			found = x

			return false
		}

		return true
	})

	return found
}

// FindAll returns every node of kind in document order.
func (n *Node) FindAll(kind Kind) []*Node {
	var out []*Node

	n.Walk(func(x *Node) bool {
		if x.Kind == kind {
			out = append(out, x)
		}

		return true
	})

	return out
}

// Child returns the first direct child of kind.
func (n *Node) Child(kind Kind) *Node {
	if n == nil {
		return nil
	}

	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}

	return nil
}

// CopyControl returns the copy button of a row or group header, searching one level down for groups.
func (n *Node) CopyControl() *Node {
	if n == nil {
		return nil
	}

	if n.Kind == KindCopy {
		return n
	}

	if c := n.Child(KindCopy); c != nil {
		return c
	}

	if header := n.Child(KindGroupHeader); header != nil {
		return header.Child(KindCopy)
	}

	return nil
}
