package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"mini-build/pkg/buildmap"
)

// OverlayFlags selects which diagnostic layers Overlay.Render draws.
type OverlayFlags uint8

const (
	OverlayAxis OverlayFlags = 1 << iota
	OverlaySector
	OverlayPlayer

	OverlayAll = OverlayAxis | OverlaySector | OverlayPlayer
)

// Overlay colors.
const (
	colorAxis       = 0x111111
	colorSolidWall  = 0xff0000
	colorPortalWall = 0x00ff00
	colorPlayer     = 0x00ffff
)

const overlayClipEps = 0.001

// Overlay draws a top-down wireframe of the player's sector over a frame,
// for diagnostics. It shares the camera math of the 3D renderer but works
// in flat 2D homogeneous coordinates.
type Overlay struct {
	Flags OverlayFlags
}

// NewOverlay returns an overlay with all layers enabled.
func NewOverlay() *Overlay {
	return &Overlay{Flags: OverlayAll}
}

// Render draws the enabled layers on top of the frame contents.
func (o *Overlay) Render(m *buildmap.Map, f *Frame) {
	view := overlayView(&m.Player)
	clip := overlayClip()
	viewport := overlayViewport()

	if o.Flags&OverlayAxis != 0 {
		drawAxis(f)
	}
	if o.Flags&OverlaySector != 0 && m.Player.Sector >= 0 {
		it := m.SectorWalls(m.Player.Sector)
		for {
			l, r, ok := it.Next()
			if !ok {
				break
			}
			drawWall2D(f, l, r, view, clip, viewport)
		}
	}
	if o.Flags&OverlayPlayer != 0 {
		drawPlayer(f, &m.Player)
	}
}

// overlayView is the 2D inverse of the player's pose.
func overlayView(p *buildmap.Player) mgl64.Mat3 {
	t := mgl64.Translate2D(float64(p.PosX), float64(p.PosY))
	r := mgl64.HomogRotate2D(p.Angle.Radians())
	return t.Mul3(r).Inv()
}

// overlayClip scales world units down so nearby geometry lands in the
// [-1, 1] square.
func overlayClip() mgl64.Mat3 {
	const scale = 30000.0
	aspect := float64(Width) / float64(Height)
	return mgl64.Scale2D(1/scale, aspect/scale)
}

func overlayViewport() mgl64.Mat3 {
	w2 := float64(Width) / 2
	h2 := float64(Height) / 2
	return mgl64.Translate2D(w2, h2).Mul3(mgl64.Scale2D(w2, -h2))
}

func drawWall2D(f *Frame, l, r *buildmap.Wall, view, clip, viewport mgl64.Mat3) {
	le := clip.Mul3(view).Mul3x1(mgl64.Vec3{float64(l.X), float64(l.Y), 1})
	ri := clip.Mul3(view).Mul3x1(mgl64.Vec3{float64(r.X), float64(r.Y), 1})
	if outsideClip2D(le, ri, overlayClipEps) {
		return
	}
	clip2D(&le, &ri, overlayClipEps)
	le = viewport.Mul3x1(le)
	ri = viewport.Mul3x1(ri)

	c := uint32(colorSolidWall)
	if l.IsPortal() {
		c = colorPortalWall
	}
	drawLine(f, int(le.X()), int(le.Y()), int(ri.X()), int(ri.Y()), c)
}

// outsideClip2D reports whether the whole segment lies beyond one clip
// plane. Line-box intersection has false positives for segments crossing a
// corner region; those degrade to a clipped sliver, not a crash.
func outsideClip2D(l, r mgl64.Vec3, e float64) bool {
	return (l.Y() < e && r.Y() < e) ||
		(l.Y() > 1-e && r.Y() > 1-e) ||
		(l.X() > 1-e && r.X() > 1-e) ||
		(l.X() < e-1 && r.X() < e-1)
}

func clip2D(l, r *mgl64.Vec3, e float64) {
	clipLow3(l, r, 1, e)
	clipHigh3(l, r, 1, 1-e)
	clipLow3(l, r, 0, e-1)
	clipHigh3(l, r, 0, 1-e)
}

func lerp3(l, r mgl64.Vec3, t float64) mgl64.Vec3 {
	return l.Add(r.Sub(l).Mul(t))
}

func clipLow3(l, r *mgl64.Vec3, comp int, c float64) {
	t := (c - l[comp]) / (r[comp] - l[comp])
	if t > 0 && t < 1 {
		clipped := lerp3(*l, *r, t)
		if l[comp] < c {
			*l = clipped
		} else {
			*r = clipped
		}
	}
}

func clipHigh3(l, r *mgl64.Vec3, comp int, c float64) {
	t := (c - l[comp]) / (r[comp] - l[comp])
	if t > 0 && t < 1 {
		clipped := lerp3(*l, *r, t)
		if l[comp] > c {
			*l = clipped
		} else {
			*r = clipped
		}
	}
}

func drawAxis(f *Frame) {
	w2, h2 := Width/2, Height/2
	drawLine(f, 0, h2, Width-1, h2, colorAxis)
	drawLine(f, w2, 0, w2, Height-1, colorAxis)

	drawText(f, "-1, 0", 0, h2+10, colorAxis)
	drawText(f, "1, 0", Width-24, h2+10, colorAxis)
	drawText(f, "0, -1", w2+2, Height-4, colorAxis)
	drawText(f, "0, 1", w2+2, 10, colorAxis)
}

func drawPlayer(f *Frame, p *buildmap.Player) {
	w2, h2 := Width/2, Height/2

	// Marker plus look direction; the overlay view is player-relative,
	// so the player always sits at the center looking up.
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			f.Set(w2+dx, h2+dy, colorPlayer)
		}
	}
	drawLine(f, w2, h2, w2, h2-12, colorPlayer)

	drawText(f, fmt.Sprintf("x=%d", p.PosX), w2+6, h2+14, colorPlayer)
	drawText(f, fmt.Sprintf("y=%d", p.PosY), w2+6, h2+26, colorPlayer)
	drawText(f, fmt.Sprintf("z=%d", p.PosZ), w2+6, h2+38, colorPlayer)
}

// drawLine rasterizes a clipped segment with the classic integer Bresenham
// walk.
func drawLine(f *Frame, x0, y0, x1, y1 int, c uint32) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		f.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func drawText(f *Frame, s string, x, y int, c uint32) {
	d := font.Drawer{
		Dst:  frameImage{f},
		Src:  image.NewUniform(rgb(c)),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func rgb(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}

// frameImage adapts a Frame to draw.Image so the font rasterizer can
// write into it.
type frameImage struct {
	f *Frame
}

func (p frameImage) ColorModel() color.Model { return color.RGBAModel }

func (p frameImage) Bounds() image.Rectangle { return image.Rect(0, 0, Width, Height) }

func (p frameImage) At(x, y int) color.Color {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return color.RGBA{}
	}
	return rgb(p.f[y][x])
}

func (p frameImage) Set(x, y int, c color.Color) {
	r, g, b, _ := c.RGBA()
	p.f.Set(x, y, uint32(r>>8)<<16|uint32(g>>8)<<8|uint32(b>>8))
}
