package buildmap

import "math"

// AngleMask wraps Build angle units into their [0, 2047] range.
const AngleMask = 0x7ff

// Angle is a Build-engine orientation in 1/2048ths of a full turn. 0 points
// along +Y ("north") and 512 along +X ("east"). Values outside [0, 2047]
// behave as their masked counterparts.
type Angle int16

// Radians converts the angle to radians, mapping 0 to -pi/2 and 512 to 0.
func (a Angle) Radians() float64 {
	return float64(a&AngleMask)/float64(AngleMask)*(2*math.Pi) - math.Pi/2
}

// Player is the position, orientation and current sector of the viewpoint.
type Player struct {
	PosX int32
	PosY int32
	PosZ int32

	Angle Angle

	// Sector the player is currently inside, or -1.
	Sector int16
}

func decodePlayer(d *reader) Player {
	return Player{
		PosX:   d.i32(),
		PosY:   d.i32(),
		PosZ:   d.i32(),
		Angle:  Angle(d.i16()),
		Sector: d.i16(),
	}
}

func encodePlayer(e *writer, p *Player) {
	e.i32(p.PosX)
	e.i32(p.PosY)
	e.i32(p.PosZ)
	e.i16(int16(p.Angle))
	e.i16(p.Sector)
}
