// Package player advances the player through the sector graph: the
// per-frame movement step with portal-crossing detection, and an input
// controller that ramps the raw key state into velocities.
package player

import (
	"math"

	"mini-build/pkg/buildmap"
)

// UpdateOpts are the per-frame movement velocities, in world units per
// frame (linear) and angle units per frame (rotation).
type UpdateOpts struct {
	Forwards int32
	Sideways int32
	Rotate   int16
}

// Update applies one movement step to m.Player: rotation, displacement
// along the view axes, and a portal-crossing scan over the current
// sector's walls. Crossing a portal re-homes the player to the far sector;
// there is no collision against solid walls.
func Update(m *buildmap.Map, opts UpdateOpts) {
	p := &m.Player
	if opts.Rotate != 0 {
		p.Angle = (p.Angle + buildmap.Angle(opts.Rotate)) & buildmap.AngleMask
	}

	sin, cos := math.Sincos(p.Angle.Radians())
	var dx, dy int32
	if opts.Forwards != 0 {
		f := float64(opts.Forwards)
		dx += int32(-sin * f)
		dy += int32(cos * f)
	}
	if opts.Sideways != 0 {
		s := float64(opts.Sideways)
		dx += int32(cos * s)
		dy += int32(sin * s)
	}

	// Scan the current sector's portals for a crossing of the movement
	// segment; the first hit wins.
	px, py := p.PosX, p.PosY
	tx, ty := px+dx, py+dy
	it := m.SectorWalls(p.Sector)
	for {
		l, r, ok := it.Next()
		if !ok {
			break
		}
		if !l.IsPortal() {
			continue
		}
		if segmentCrossesWall(l, r, px, py, tx, ty) {
			p.Sector = l.NextSector
			break
		}
	}

	p.PosX += dx
	p.PosY += dy
}

// segmentCrossesWall tests the movement segment (px,py)-(tx,ty) against
// the wall segment in numerator/denominator form, avoiding the division of
// a parametric intersection.
func segmentCrossesWall(l, r *buildmap.Wall, px, py, tx, ty int32) bool {
	lx, ly := l.X, l.Y
	rx, ry := r.X, r.Y
	num0 := (px-lx)*(ty-py) - (tx-px)*(py-ly)
	num1 := (rx-lx)*(py-ly) - (px-lx)*(ry-ly)
	den := (rx-lx)*(ty-py) - (tx-px)*(ry-ly)
	return abs32(num0) <= abs32(den) &&
		abs32(num1) <= abs32(den) &&
		sign32(num0) == sign32(den) &&
		sign32(num1) == sign32(den)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func sign32(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
