package buildmap

import (
	"encoding/binary"
	"log"
)

// WallRecordSize is the on-disk size of one wall record.
const WallRecordSize = 32

// Wall stat bits (cstat).
const (
	WallStatBlocking uint16 = 1 << iota
	WallStatBottomsSwapped
	WallStatAlignPictureOnBottom
	WallStatXFlipped
	WallStatMasking
	WallStatOneWay
	WallStatBlockingHitscan
	WallStatTranslucence
	WallStatYFlipped
	WallStatTranslucenceReversing

	wallStatKnown = WallStatBlocking | WallStatBottomsSwapped |
		WallStatAlignPictureOnBottom | WallStatXFlipped | WallStatMasking |
		WallStatOneWay | WallStatBlockingHitscan | WallStatTranslucence |
		WallStatYFlipped | WallStatTranslucenceReversing
)

// Wall is one edge of a sector polygon. (X, Y) is the left endpoint; the
// right endpoint is the left endpoint of the wall at Point2. NextSector is
// the sector on the other side, or -1 for a solid wall.
type Wall struct {
	X int32
	Y int32

	// Point2 indexes the wall holding this wall's right endpoint,
	// closing the sector loop.
	Point2 int16

	// NextWall is the mirror wall in NextSector, or -1.
	NextWall int16

	// NextSector is the sector behind this wall, or -1 if the wall is
	// solid.
	NextSector int16

	CStat uint16

	Picnum     int16
	OverPicnum int16
	Shade      int8
	Pal        uint8
	XRepeat    uint8
	YRepeat    uint8
	XPanning   uint8
	YPanning   uint8

	Lotag int16
	Hitag int16
	Extra int16
}

// IsPortal reports whether another sector lies behind this wall.
func (w *Wall) IsPortal() bool {
	return w.NextSector >= 0
}

func decodeWall(b []byte) Wall {
	le := binary.LittleEndian
	w := Wall{
		X:          int32(le.Uint32(b[0:])),
		Y:          int32(le.Uint32(b[4:])),
		Point2:     int16(le.Uint16(b[8:])),
		NextWall:   int16(le.Uint16(b[10:])),
		NextSector: int16(le.Uint16(b[12:])),
		CStat:      le.Uint16(b[14:]),
		Picnum:     int16(le.Uint16(b[16:])),
		OverPicnum: int16(le.Uint16(b[18:])),
		Shade:      int8(b[20]),
		Pal:        b[21],
		XRepeat:    b[22],
		YRepeat:    b[23],
		XPanning:   b[24],
		YPanning:   b[25],
		Lotag:      int16(le.Uint16(b[26:])),
		Hitag:      int16(le.Uint16(b[28:])),
		Extra:      int16(le.Uint16(b[30:])),
	}
	if bits := w.CStat &^ wallStatKnown; bits != 0 {
		log.Printf("buildmap: wall cstat has reserved bits %#x", bits)
	}
	return w
}

func encodeWall(w *Wall) []byte {
	le := binary.LittleEndian
	b := make([]byte, WallRecordSize)
	le.PutUint32(b[0:], uint32(w.X))
	le.PutUint32(b[4:], uint32(w.Y))
	le.PutUint16(b[8:], uint16(w.Point2))
	le.PutUint16(b[10:], uint16(w.NextWall))
	le.PutUint16(b[12:], uint16(w.NextSector))
	le.PutUint16(b[14:], w.CStat)
	le.PutUint16(b[16:], uint16(w.Picnum))
	le.PutUint16(b[18:], uint16(w.OverPicnum))
	b[20] = byte(w.Shade)
	b[21] = w.Pal
	b[22] = w.XRepeat
	b[23] = w.YRepeat
	b[24] = w.XPanning
	b[25] = w.YPanning
	le.PutUint16(b[26:], uint16(w.Lotag))
	le.PutUint16(b[28:], uint16(w.Hitag))
	le.PutUint16(b[30:], uint16(w.Extra))
	return b
}
