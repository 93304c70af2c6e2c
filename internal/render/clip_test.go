package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestClipNearReplacesBehindEndpoint(t *testing.T) {
	l := mgl64.Vec4{-1, -1, -2, 1}
	r := mgl64.Vec4{1, 1, 2, 1}
	clipNear(&l, &r)

	// The left endpoint was behind y=eps and gets replaced by the
	// intersection; the right endpoint is untouched.
	if math.Abs(l.Y()-eps) > 1e-12 {
		t.Errorf("clipped y = %v, want %v", l.Y(), eps)
	}
	if got := r; got != (mgl64.Vec4{1, 1, 2, 1}) {
		t.Errorf("safe endpoint moved: %v", got)
	}
	// The clipped vertex stays on the segment: x == y == z/2 along it.
	if math.Abs(l.X()-l.Y()) > 1e-9 || math.Abs(l.Z()-2*l.Y()) > 1e-9 {
		t.Errorf("clipped vertex off the segment: %v", l)
	}
}

func TestClipNearKeepsInFrontSegment(t *testing.T) {
	l := mgl64.Vec4{0, 1, 0, 1}
	r := mgl64.Vec4{1, 2, 0, 1}
	wantL, wantR := l, r
	clipNear(&l, &r)
	if l != wantL || r != wantR {
		t.Errorf("in-front segment modified: %v %v", l, r)
	}
}

func TestClipSides(t *testing.T) {
	l := mgl64.Vec4{-2, 1, 0, 1}
	r := mgl64.Vec4{2, 1, 0, 1}
	clipSides(&l, &r)
	if math.Abs(l.X()-(eps-1)) > 1e-12 {
		t.Errorf("left x = %v, want %v", l.X(), eps-1)
	}
	if math.Abs(r.X()-(1-eps)) > 1e-12 {
		t.Errorf("right x = %v, want %v", r.X(), 1-eps)
	}
}

func TestClipOrientationAgnostic(t *testing.T) {
	// Same segment with endpoints swapped clips to the same set.
	l := mgl64.Vec4{0, -1, 0, 1}
	r := mgl64.Vec4{0, 1, 0, 1}
	clipNear(&l, &r)

	l2 := mgl64.Vec4{0, 1, 0, 1}
	r2 := mgl64.Vec4{0, -1, 0, 1}
	clipNear(&l2, &r2)

	if math.Abs(l.Y()-r2.Y()) > 1e-12 || math.Abs(r.Y()-l2.Y()) > 1e-12 {
		t.Errorf("clip depends on endpoint order: (%v, %v) vs (%v, %v)", l, r, l2, r2)
	}
}
