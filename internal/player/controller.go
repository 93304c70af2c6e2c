package player

import "mini-build/pkg/buildmap"

// Controller tuning.
const (
	DefaultMaxSpeed = 32

	linearAccel = 6
	maxRotate   = 8
	rotateAccel = 2
	flyStep     = 500
)

// Input is the pressed-state of the movement controls for one frame.
type Input struct {
	Forwards  bool
	Backwards bool
	Left      bool
	Right     bool
	LookLeft  bool
	LookRight bool
	Up        bool
	Down      bool
	Crouch    bool
}

// Controller turns raw key state into smoothed per-frame velocities and
// keeps the player's eye height glued to the sector floor. Velocities ramp
// up while a key is held and decay back to zero when released.
type Controller struct {
	// MaxSpeed clamps the linear velocities, in world units per frame.
	MaxSpeed int32

	// Fly detaches the eye height from the floor; Up/Down then move
	// vertically between ceiling and floor.
	Fly bool

	eyeHeight int32
	opts      UpdateOpts
}

// NewController derives the standing eye height from the player's starting
// sector.
func NewController(m *buildmap.Map) *Controller {
	c := &Controller{MaxSpeed: DefaultMaxSpeed}
	if m.Player.Sector >= 0 && int(m.Player.Sector) < len(m.Sectors) {
		c.eyeHeight = m.Player.PosZ - m.Sectors[m.Player.Sector].FloorZ
	}
	return c
}

// Opts returns the velocities applied by the last Update.
func (c *Controller) Opts() UpdateOpts {
	return c.opts
}

// Update ramps the velocities from the input state, steps the player, and
// settles the eye height.
func (c *Controller) Update(m *buildmap.Map, in Input) {
	c.updateOpts(in)
	Update(m, c.opts)
	c.updateEyeHeight(m, in)
}

func (c *Controller) updateOpts(in Input) {
	o := &c.opts
	if in.LookLeft || in.LookRight {
		o.Rotate += rotateAccel
		if in.LookLeft {
			o.Rotate -= 2 * rotateAccel
		}
	} else {
		o.Rotate -= sign16(o.Rotate)
	}
	if in.Forwards || in.Backwards {
		o.Forwards += linearAccel
		if in.Backwards {
			o.Forwards -= 2 * linearAccel
		}
	} else {
		o.Forwards -= sign32(o.Forwards)
	}
	if in.Left || in.Right {
		o.Sideways += linearAccel
		if in.Left {
			o.Sideways -= 2 * linearAccel
		}
	} else {
		o.Sideways -= sign32(o.Sideways)
	}
	o.Forwards = clamp32(o.Forwards, -c.MaxSpeed, c.MaxSpeed)
	o.Sideways = clamp32(o.Sideways, -c.MaxSpeed, c.MaxSpeed)
	o.Rotate = clamp16(o.Rotate, -maxRotate, maxRotate)
}

func (c *Controller) updateEyeHeight(m *buildmap.Map, in Input) {
	if m.Player.Sector < 0 || int(m.Player.Sector) >= len(m.Sectors) {
		return
	}
	s := &m.Sectors[m.Player.Sector]
	p := &m.Player
	if c.Fly {
		if in.Up {
			p.PosZ -= flyStep
		}
		if in.Down {
			p.PosZ += flyStep
		}
		// z grows downward; stay between ceiling and floor.
		p.PosZ = clamp32(p.PosZ, s.CeilingZ, s.FloorZ)
		return
	}
	// eyeHeight is negative (z grows downward); crouching gives back
	// half of it.
	target := s.FloorZ + c.eyeHeight
	if in.Crouch {
		target -= c.eyeHeight / 2
	}
	p.PosZ += (target - p.PosZ) >> 1
}

func sign16(v int16) int16 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func clamp32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp16(v, lo, hi int16) int16 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
