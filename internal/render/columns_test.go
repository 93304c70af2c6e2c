package render

import "testing"

func TestColumnIterInterpolation(t *testing.T) {
	pw := &projectedWall{
		xl: 0, xr: 9,
		topL: 0, topR: 100,
		botL: 200, botR: 100,
		portalTopL: 0, portalTopR: 100,
		portalBotL: 200, portalBotR: 100,
	}
	it := newColumnIter(pw, Interval{L: 0, R: Width})

	var cols []column
	for {
		c, ok := it.next()
		if !ok {
			break
		}
		cols = append(cols, c)
	}
	if len(cols) != 10 {
		t.Fatalf("yielded %d columns, want 10", len(cols))
	}
	if cols[0].x != 0 || cols[0].top != 0 || cols[0].bot != 200 {
		t.Errorf("first column = %+v, want x=0 top=0 bot=200", cols[0])
	}
	// The divisor is the inclusive width (10), so the right endpoint
	// interpolates to 9/10 of the span, not all the way.
	if cols[9].x != 9 || cols[9].top != 90 || cols[9].bot != 110 {
		t.Errorf("last column = %+v, want x=9 top=90 bot=110", cols[9])
	}
	// Midpoint.
	if cols[5].top != 50 || cols[5].bot != 150 {
		t.Errorf("mid column = %+v, want top=50 bot=150", cols[5])
	}
	// Enumeration index counts yielded columns from zero.
	for i, c := range cols {
		if c.i != i {
			t.Errorf("column %d has index %d", i, c.i)
		}
	}
}

func TestColumnIterClip(t *testing.T) {
	pw := &projectedWall{xl: 0, xr: 9, botL: Height, botR: Height}
	it := newColumnIter(pw, Interval{L: 3, R: 6})

	var xs []int
	for {
		c, ok := it.next()
		if !ok {
			break
		}
		xs = append(xs, c.x)
	}
	if len(xs) != 3 || xs[0] != 3 || xs[2] != 5 {
		t.Errorf("clipped columns = %v, want [3 4 5]", xs)
	}
}

func TestColumnIterEmptyClip(t *testing.T) {
	pw := &projectedWall{xl: 0, xr: 9}
	it := newColumnIter(pw, Interval{})
	if _, ok := it.next(); ok {
		t.Error("iterator yielded a column under an empty clip")
	}
}

func TestInterpolateClamps(t *testing.T) {
	// Values interpolate within [0, Height] even when the projected
	// edge leaves the frame.
	if got := interpolate(-500, -500, 0, 9, 4); got != 0 {
		t.Errorf("clamp low = %d, want 0", got)
	}
	if got := interpolate(500, 500, 0, 9, 4); got != Height {
		t.Errorf("clamp high = %d, want %d", got, Height)
	}
}

func TestColumnIterSingleColumn(t *testing.T) {
	pw := &projectedWall{xl: 5, xr: 5, topL: 10, topR: 90, botL: 20, botR: 180}
	it := newColumnIter(pw, Interval{L: 0, R: Width})
	c, ok := it.next()
	if !ok {
		t.Fatal("no column for a one-pixel wall")
	}
	if c.x != 5 || c.top != 10 || c.bot != 20 {
		t.Errorf("column = %+v, want x=5 top=10 bot=20", c)
	}
	if _, ok := it.next(); ok {
		t.Error("second column from a one-pixel wall")
	}
}

func BenchmarkColumnIter(b *testing.B) {
	pw := &projectedWall{
		xl: 0, xr: Width - 1,
		topL: 0, topR: 50,
		botL: Height, botR: 150,
		portalTopL: 10, portalTopR: 60,
		portalBotL: 190, portalBotR: 140,
	}
	clip := Interval{L: 0, R: Width}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := newColumnIter(pw, clip)
		for {
			if _, ok := it.next(); !ok {
				break
			}
		}
	}
}
