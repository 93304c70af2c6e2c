package render

// Coverage tracks, per screen column, the rows still to be painted this
// frame. It doubles as the occlusion structure (painting is restricted to
// the remaining interval) and as the traversal termination oracle (the
// frame is done when every column has emptied).
//
// This way of tracking coverage cannot express true sector-over-sector
// stacking; each column empties monotonically top-down and bottom-up.
type Coverage struct {
	columns []Interval
	height  int
	emptied int
}

// NewCoverage returns coverage for a width x height frame, initially fully
// unpainted.
func NewCoverage(width, height int) *Coverage {
	c := &Coverage{
		columns: make([]Interval, width),
		height:  height,
	}
	c.Reset()
	return c
}

// Reset marks every column fully unpainted.
func (c *Coverage) Reset() {
	for i := range c.columns {
		c.columns[i] = Interval{L: 0, R: c.height}
	}
	c.emptied = 0
}

// Column returns the rows still unpainted at column x.
func (c *Coverage) Column(x int) Interval {
	if c.Full() {
		return Interval{}
	}
	return c.columns[x]
}

// Intersect replaces column x with its intersection against u.
func (c *Coverage) Intersect(x int, u Interval) {
	if c.Full() {
		return
	}
	prev := c.columns[x]
	c.columns[x] = prev.Intersect(u)
	if !prev.Empty() && c.columns[x].Empty() {
		c.emptied++
	}
}

// Full reports whether every column has been fully painted.
func (c *Coverage) Full() bool {
	return c.emptied == len(c.columns)
}
