package buildmap

import (
	"encoding/binary"
	"log"
)

// SpriteRecordSize is the on-disk size of one sprite record.
const SpriteRecordSize = 44

// Sprite stat bits (cstat).
const (
	SpriteStatBlocking uint16 = 1 << iota
	SpriteStatTranslucence
	SpriteStatXFlipped
	SpriteStatYFlipped
	spriteStatTypeLo // bits 4-5 hold the sprite type
	spriteStatTypeHi
	SpriteStatOneSided
	SpriteStatRealCentered
	SpriteStatBlockingHitscan
	SpriteStatTranslucenceReversing

	SpriteStatInvisible uint16 = 1 << 15

	spriteStatKnown = SpriteStatBlocking | SpriteStatTranslucence |
		SpriteStatXFlipped | SpriteStatYFlipped | spriteStatTypeLo |
		spriteStatTypeHi | SpriteStatOneSided | SpriteStatRealCentered |
		SpriteStatBlockingHitscan | SpriteStatTranslucenceReversing |
		SpriteStatInvisible
)

// SpriteType classifies how a sprite is oriented in the world.
type SpriteType uint16

const (
	SpriteFace  SpriteType = 0
	SpriteWall  SpriteType = 1
	SpriteFloor SpriteType = 2
)

func (t SpriteType) String() string {
	switch t {
	case SpriteFace:
		return "face"
	case SpriteWall:
		return "wall"
	case SpriteFloor:
		return "floor"
	}
	return "invalid"
}

// Sprite is a decoded sprite record. The renderer ignores sprites; they are
// decoded and kept so that maps survive a decode/encode round trip.
type Sprite struct {
	X int32
	Y int32
	Z int32

	CStat  uint16
	Picnum int16
	Shade  int8
	Pal    uint8

	// ClipDist is the size of the movement clipping square (face
	// sprites only).
	ClipDist uint8
	Filler   uint8

	XRepeat uint8
	YRepeat uint8
	XOffset uint8
	YOffset uint8

	SectNum int16
	StatNum int16
	Angle   int16
	Owner   int16
	XVel    int16
	YVel    int16
	ZVel    int16

	Lotag int16
	Hitag int16
	Extra int16
}

// Type returns the sprite orientation class from the cstat bits.
func (s *Sprite) Type() SpriteType {
	return SpriteType((s.CStat >> 4) & 0b11)
}

func decodeSprite(b []byte) Sprite {
	le := binary.LittleEndian
	s := Sprite{
		X:        int32(le.Uint32(b[0:])),
		Y:        int32(le.Uint32(b[4:])),
		Z:        int32(le.Uint32(b[8:])),
		CStat:    le.Uint16(b[12:]),
		Picnum:   int16(le.Uint16(b[14:])),
		Shade:    int8(b[16]),
		Pal:      b[17],
		ClipDist: b[18],
		Filler:   b[19],
		XRepeat:  b[20],
		YRepeat:  b[21],
		XOffset:  b[22],
		YOffset:  b[23],
		SectNum:  int16(le.Uint16(b[24:])),
		StatNum:  int16(le.Uint16(b[26:])),
		Angle:    int16(le.Uint16(b[28:])),
		Owner:    int16(le.Uint16(b[30:])),
		XVel:     int16(le.Uint16(b[32:])),
		YVel:     int16(le.Uint16(b[34:])),
		ZVel:     int16(le.Uint16(b[36:])),
		Lotag:    int16(le.Uint16(b[38:])),
		Hitag:    int16(le.Uint16(b[40:])),
		Extra:    int16(le.Uint16(b[42:])),
	}
	if bits := s.CStat &^ spriteStatKnown; bits != 0 {
		log.Printf("buildmap: sprite cstat has reserved bits %#x", bits)
	}
	return s
}

func encodeSprite(s *Sprite) []byte {
	le := binary.LittleEndian
	b := make([]byte, SpriteRecordSize)
	le.PutUint32(b[0:], uint32(s.X))
	le.PutUint32(b[4:], uint32(s.Y))
	le.PutUint32(b[8:], uint32(s.Z))
	le.PutUint16(b[12:], s.CStat)
	le.PutUint16(b[14:], uint16(s.Picnum))
	b[16] = byte(s.Shade)
	b[17] = s.Pal
	b[18] = s.ClipDist
	b[19] = s.Filler
	b[20] = s.XRepeat
	b[21] = s.YRepeat
	b[22] = s.XOffset
	b[23] = s.YOffset
	le.PutUint16(b[24:], uint16(s.SectNum))
	le.PutUint16(b[26:], uint16(s.StatNum))
	le.PutUint16(b[28:], uint16(s.Angle))
	le.PutUint16(b[30:], uint16(s.Owner))
	le.PutUint16(b[32:], uint16(s.XVel))
	le.PutUint16(b[34:], uint16(s.YVel))
	le.PutUint16(b[36:], uint16(s.ZVel))
	le.PutUint16(b[38:], uint16(s.Lotag))
	le.PutUint16(b[40:], uint16(s.Hitag))
	le.PutUint16(b[42:], uint16(s.Extra))
	return b
}
