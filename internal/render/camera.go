package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"mini-build/pkg/buildmap"
)

// View-space normalization divisors. Build maps use very large world units
// horizontally and even larger ones vertically; dividing by these brings
// visible geometry into the [-1, 1] normalized cube. The x divisor is
// negated because +x in view space points to the player's left in the
// Build convention.
const (
	scaleX = 6000.0
	scaleY = 8000.0
	scaleZ = 60000.0
)

// viewTransform returns the world-to-normalized-camera transform for the
// player's point of view: the inverse of the player's translate*rotate,
// composed with the axis normalization.
func viewTransform(p *buildmap.Player) mgl64.Mat4 {
	t := mgl64.Translate3D(float64(p.PosX), float64(p.PosY), float64(p.PosZ))
	r := mgl64.HomogRotate3DZ(p.Angle.Radians())
	s := mgl64.Scale3D(-1/scaleX, 1/scaleY, 1/scaleZ)
	return s.Mul4(t.Mul4(r).Inv())
}
