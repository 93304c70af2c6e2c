package render

import "github.com/go-gl/mathgl/mgl64"

// eps keeps clipped vertices strictly inside the view volume so the
// perspective divide and viewport transform stay finite.
const eps = 1e-4

func lerp4(l, r mgl64.Vec4, t float64) mgl64.Vec4 {
	return l.Add(r.Sub(l).Mul(t))
}

// clipLow clips the segment (l, r) against comp >= c, replacing the
// endpoint on the violating side. comp selects the vector component.
func clipLow(l, r *mgl64.Vec4, comp int, c float64) {
	t := (c - l[comp]) / (r[comp] - l[comp])
	if t > 0 && t < 1 {
		clipped := lerp4(*l, *r, t)
		if l[comp] < c {
			*l = clipped
		} else {
			*r = clipped
		}
	}
}

// clipHigh clips the segment (l, r) against comp <= c.
func clipHigh(l, r *mgl64.Vec4, comp int, c float64) {
	t := (c - l[comp]) / (r[comp] - l[comp])
	if t > 0 && t < 1 {
		clipped := lerp4(*l, *r, t)
		if l[comp] > c {
			*l = clipped
		} else {
			*r = clipped
		}
	}
}

// clipNear clips a wall edge against the near plane y = eps in camera
// space, before the perspective divide.
func clipNear(l, r *mgl64.Vec4) {
	clipLow(l, r, 1, eps)
}

// clipSides clips a wall edge against the x = +-(1-eps) frustum planes in
// normalized space, after the perspective divide.
func clipSides(l, r *mgl64.Vec4) {
	clipLow(l, r, 0, eps-1)
	clipHigh(l, r, 0, 1-eps)
}
