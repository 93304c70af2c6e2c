package render

// column is one vertical screen slice of a projected wall, with the four
// edge heights interpolated to that x position.
type column struct {
	// Index of the column within the wall, counting yielded columns
	// from 0.
	i int

	// Framebuffer column.
	x int

	top, bot             int
	portalTop, portalBot int
}

// columnIter walks the integer columns spanned by a projected wall,
// restricted to a horizontal clip interval, interpolating the edge heights
// per column.
type columnIter struct {
	pw   *projectedWall
	clip Interval
	x    int
	i    int
}

func newColumnIter(pw *projectedWall, clip Interval) columnIter {
	// Walls clipped against a near-eps depth can project far outside
	// the frame; start at the clip edge instead of walking dead
	// columns.
	x := pw.xl
	if x < clip.L {
		x = clip.L
	}
	return columnIter{pw: pw, clip: clip, x: x}
}

// next yields the next visible column. The x range is inclusive on both
// ends; columns outside the clip interval are skipped.
func (it *columnIter) next() (column, bool) {
	pw := it.pw
	xr := pw.xr
	if xr >= it.clip.R {
		xr = it.clip.R - 1
	}
	for ; it.x <= xr; it.x++ {
		if !it.clip.Contains(it.x) {
			continue
		}
		c := column{
			i:         it.i,
			x:         it.x,
			top:       interpolate(pw.topL, pw.topR, pw.xl, pw.xr, it.x),
			bot:       interpolate(pw.botL, pw.botR, pw.xl, pw.xr, it.x),
			portalTop: interpolate(pw.portalTopL, pw.portalTopR, pw.xl, pw.xr, it.x),
			portalBot: interpolate(pw.portalBotL, pw.portalBotR, pw.xl, pw.xr, it.x),
		}
		it.x++
		it.i++
		return c, true
	}
	return column{}, false
}

// interpolate computes the edge height at column x by integer linear
// interpolation across [xl, xr], clamped to the frame. The divisor is the
// inclusive width, which skews the last column slightly; the error is
// below one pixel.
func interpolate(yl, yr, xl, xr, x int) int {
	d := xr - xl + 1
	n := x - xl
	y := (yl*(d-n) + yr*n) / d
	if y < 0 {
		return 0
	}
	if y > Height {
		return Height
	}
	return y
}
