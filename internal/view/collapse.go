package view

// Collapse maps a group index to its open flag. Indexes are stable for the
// lifetime of one response.
type Collapse []bool

// NewCollapse returns n groups, all open.
func NewCollapse(n int) Collapse {
	if n <= 0 {
		return nil
	}

	c := make(Collapse, n)
	for i := range c {
		c[i] = true
	}

	return c
}

// Len returns the number of tracked groups.
func (c Collapse) Len() int {
	return len(c)
}

// IsOpen reports whether group i is expanded. Unknown groups are closed.
func (c Collapse) IsOpen(i int) bool {
	if i < 0 || i >= len(c) {
		return false
	}

	return c[i]
}

// Toggle returns a copy with group i flipped. The receiver is left untouched,
// and ok is false when i does not name a group.
func (c Collapse) Toggle(i int) (next Collapse, ok bool) {
	if i < 0 || i >= len(c) {
		return c, false
	}

	next = make(Collapse, len(c))
	copy(next, c)
	next[i] = !next[i]

	return next, true
}
