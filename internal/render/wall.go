package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"mini-build/pkg/buildmap"
)

// projectedWall is a wall quad pair mapped to framebuffer pixel space: the
// outer wall edges (top/bottom) plus the inner portal cutout edges. For
// solid walls the portal edges coincide with the outer ones.
type projectedWall struct {
	// Horizontal pixel extent, inclusive on both ends.
	xl, xr int

	// Edge heights at the left and right columns.
	topL, topR             int
	botL, botR             int
	portalTopL, portalTopR int
	portalBotL, portalBotR int

	// Sector behind the wall, or -1.
	next int16

	// Front-to-back sort key: squared camera-space distance of the
	// nearer top vertex, scaled to an integer.
	closest int64
}

// projectWall runs one wall pair through the camera transform, near-plane
// and frustum clipping, perspective divide and viewport transform. ok is
// false when the wall is fully behind the near plane or faces away from
// the viewer.
func projectWall(m *buildmap.Map, sector int16, l, r *buildmap.Wall, cam mgl64.Mat4) (pw projectedWall, ok bool) {
	s := &m.Sectors[sector]

	next := l.NextSector
	if int(next) >= len(m.Sectors) {
		next = -1
	}
	var dc, df float64
	if next >= 0 {
		n := &m.Sectors[next]
		dc = float64(n.CeilingZ - s.CeilingZ)
		df = float64(n.FloorZ - s.FloorZ)
	}

	lx, ly := float64(l.X), float64(l.Y)
	rx, ry := float64(r.X), float64(r.Y)
	ceil, floor := float64(s.CeilingZ), float64(s.FloorZ)

	tl := cam.Mul4x1(mgl64.Vec4{lx, ly, ceil, 1})
	tr := cam.Mul4x1(mgl64.Vec4{rx, ry, ceil, 1})
	ptl := cam.Mul4x1(mgl64.Vec4{lx, ly, ceil + dc, 1})
	ptr := cam.Mul4x1(mgl64.Vec4{rx, ry, ceil + dc, 1})
	pbl := cam.Mul4x1(mgl64.Vec4{lx, ly, floor + df, 1})
	pbr := cam.Mul4x1(mgl64.Vec4{rx, ry, floor + df, 1})
	bl := cam.Mul4x1(mgl64.Vec4{lx, ly, floor, 1})
	br := cam.Mul4x1(mgl64.Vec4{rx, ry, floor, 1})

	// Wholly behind the near plane.
	if tl.Y() < eps && tr.Y() < eps {
		return pw, false
	}

	clipNear(&tl, &tr)
	clipNear(&ptl, &ptr)
	clipNear(&pbl, &pbr)
	clipNear(&bl, &br)

	closest := math.Min(sqNorm3(tl), sqNorm3(tr))

	divide(&tl)
	divide(&tr)
	divide(&ptl)
	divide(&ptr)
	divide(&pbl)
	divide(&pbr)
	divide(&bl)
	divide(&br)

	clipSides(&tl, &tr)
	clipSides(&ptl, &ptr)
	clipSides(&pbl, &pbr)
	clipSides(&bl, &br)

	pw = projectedWall{
		xl:         viewportX(tl),
		xr:         viewportX(tr),
		topL:       viewportY(tl),
		topR:       viewportY(tr),
		botL:       viewportY(bl),
		botR:       viewportY(br),
		portalTopL: viewportY(ptl),
		portalTopR: viewportY(ptr),
		portalBotL: viewportY(pbl),
		portalBotR: viewportY(pbr),
		next:       next,
		closest:    int64(closest * 1e5),
	}
	// Degenerate or back-facing after the viewport transform.
	if pw.xl > pw.xr {
		return pw, false
	}
	return pw, true
}

// divide performs the perspective divide, collapsing x and z onto the
// normalized view plane at depth y.
func divide(v *mgl64.Vec4) {
	v[0] /= v[1]
	v[2] /= v[1]
}

func sqNorm3(v mgl64.Vec4) float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func viewportX(v mgl64.Vec4) int {
	return int((v[0] + 1) / 2 * Width)
}

func viewportY(v mgl64.Vec4) int {
	return int((v[2] + 1) / 2 * Height)
}
