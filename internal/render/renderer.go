package render

import (
	"sort"

	"mini-build/pkg/buildmap"
)

// Flat shading palette, 0x00RRGGBB.
const (
	ColorCeiling     = 0x3a3a46
	ColorWall        = 0xaaaaaa
	ColorFloor       = 0x54545e
	ColorTopFrame    = 0x8c8c96
	ColorBottomFrame = 0x787882
)

// DefaultMaxDepth bounds portal recursion on pathological maps. Traversal
// normally terminates when the frame is covered or the queue drains.
const DefaultMaxDepth = 32

// node is one pending traversal step: a sector to render through a
// horizontal screen interval proven visible by the portal that pushed it.
type node struct {
	sector int16
	clip   Interval
	depth  int
}

// Stats counts work done by the last Render call.
type Stats struct {
	// Sectors is the number of traversal nodes processed. The same
	// sector counts once per portal it was entered through.
	Sectors int

	// Walls is the number of walls that survived projection.
	Walls int
}

// Renderer paints first-person frames of a map. The zero value is not
// usable; construct with NewRenderer. A Renderer is not safe for
// concurrent use, but may be reused frame to frame: its coverage, stack
// and scratch buffers retain their capacity.
type Renderer struct {
	// MaxDepth caps how many portals deep traversal may go.
	MaxDepth int

	coverage *Coverage
	stack    []node
	walls    []projectedWall
	stats    Stats
}

// NewRenderer returns a renderer sized for the Width x Height framebuffer.
func NewRenderer() *Renderer {
	return &Renderer{
		MaxDepth: DefaultMaxDepth,
		coverage: NewCoverage(Width, Height),
	}
}

// Stats returns counters from the most recent Render call.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Render paints the frame seen by m.Player. Sectors are traversed
// depth-first from the player's sector along visible portals; each wall
// column is painted at most once, and traversal stops as soon as every
// column of the frame is covered.
func (r *Renderer) Render(m *buildmap.Map, f *Frame) {
	r.coverage.Reset()
	r.stack = r.stack[:0]
	r.stats = Stats{}

	if m.Player.Sector < 0 || int(m.Player.Sector) >= len(m.Sectors) {
		return
	}
	cam := viewTransform(&m.Player)
	r.stack = append(r.stack, node{sector: m.Player.Sector, clip: Interval{L: 0, R: Width}})

	for len(r.stack) > 0 && !r.coverage.Full() {
		n := r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
		r.stats.Sectors++

		r.walls = r.walls[:0]
		it := m.SectorWalls(n.sector)
		for {
			l, rw, ok := it.Next()
			if !ok {
				break
			}
			if pw, ok := projectWall(m, n.sector, l, rw, cam); ok {
				r.walls = append(r.walls, pw)
			}
		}
		r.stats.Walls += len(r.walls)

		// Paint nearer walls first so that they occlude farther
		// walls of the same sector through coverage; Build sectors
		// are not required to be convex. Stable keeps loop order on
		// ties.
		sort.SliceStable(r.walls, func(i, j int) bool {
			return r.walls[i].closest < r.walls[j].closest
		})

		for i := range r.walls {
			pw := &r.walls[i]
			if pw.next < 0 {
				r.renderSolid(f, pw, n.clip)
				continue
			}
			ext := r.renderPortal(f, pw, n.clip)
			ext = ext.Intersect(n.clip)
			if !ext.Empty() && n.depth < r.MaxDepth {
				r.stack = append(r.stack, node{sector: pw.next, clip: ext, depth: n.depth + 1})
			}
		}
	}
}

// paint fills the rows of span at column x that are still uncovered.
func (r *Renderer) paint(f *Frame, x int, span Interval, color uint32) {
	vis := r.coverage.Column(x).Intersect(span)
	for y := vis.L; y < vis.R; y++ {
		f[y][x] = color
	}
}

// renderSolid paints a wall with nothing behind it: ceiling band, wall
// band, floor band. Every touched column is fully covered afterwards.
func (r *Renderer) renderSolid(f *Frame, pw *projectedWall, clip Interval) {
	it := newColumnIter(pw, clip)
	for {
		c, ok := it.next()
		if !ok {
			break
		}
		r.paint(f, c.x, Interval{L: 0, R: c.top}, ColorCeiling)
		r.paint(f, c.x, Interval{L: c.top, R: c.bot}, ColorWall)
		r.paint(f, c.x, Interval{L: c.bot, R: Height}, ColorFloor)
		r.coverage.Intersect(c.x, Interval{})
	}
}

// renderPortal paints a wall that opens into another sector: ceiling,
// the frames above and below the opening where the far sector is lower or
// shallower, and floor. The opening itself is left to the far sector; its
// extent across all painted columns is returned so the caller can enqueue
// the far sector clipped to it.
func (r *Renderer) renderPortal(f *Frame, pw *projectedWall, clip Interval) Interval {
	ext := Interval{}
	it := newColumnIter(pw, clip)
	for {
		c, ok := it.next()
		if !ok {
			break
		}
		r.paint(f, c.x, Interval{L: 0, R: c.top}, ColorCeiling)
		if c.top < c.portalTop {
			r.paint(f, c.x, Interval{L: c.top, R: c.portalTop}, ColorTopFrame)
		}
		if c.portalBot < c.bot {
			r.paint(f, c.x, Interval{L: c.portalBot, R: c.bot}, ColorBottomFrame)
		}
		r.paint(f, c.x, Interval{L: c.bot, R: Height}, ColorFloor)

		hole := Interval{L: max(c.top, c.portalTop), R: min(c.bot, c.portalBot)}
		r.coverage.Intersect(c.x, hole)

		if ext.Empty() {
			ext = Interval{L: c.x, R: c.x + 1}
		} else {
			ext.R = c.x + 1
		}
	}
	return ext
}
