// Package scroll decides when the entry list should scroll to the first
// search match and animates the viewport there.
package scroll

// Target locates an entry inside the rendered list, in lines.
type Target struct {
	Line   int
	Height int
}

// None is the target reported when no entry matches.
var None = Target{Line: -1}

// Found reports whether the target refers to an entry.
func (t Target) Found() bool {
	return t.Line >= 0
}

// Coordinator turns query changes into scroll requests. It must be fed the
// target from the render that reflects the query, after that render.
type Coordinator struct {
	query string
}

// NewCoordinator returns a coordinator whose last seen query is empty.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Observe records query and returns target with true when the query differs
// from the previous call and the target exists. Any other call, including a
// change to a query with no match, yields no scroll.
func (c *Coordinator) Observe(query string, target Target) (Target, bool) {
	if query == c.query {
		return None, false
	}
	c.query = query
	if !target.Found() {
		return None, false
	}
	return target, true
}

// Query returns the last observed query.
func (c *Coordinator) Query() string {
	return c.query
}

// CenterOffset returns the viewport Y offset that puts target in the middle
// of a viewport of the given height, clamped to the scrollable range. A
// target taller than the viewport is aligned to its top line.
func CenterOffset(target Target, viewportHeight, totalLines int) int {
	if !target.Found() {
		return 0
	}
	offset := target.Line
	if target.Height < viewportHeight {
		offset = target.Line - (viewportHeight-target.Height)/2
	}

	maxOffset := totalLines - viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
