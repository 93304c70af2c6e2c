package buildmap

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// Field offsets within the records are fixed by the MAP format; pin the
// load-bearing ones so a reordered struct field cannot slip through the
// symmetric encode/decode pair.

func TestSectorRecordLayout(t *testing.T) {
	s := Sector{
		WallFirst: 0x1122,
		WallCount: 0x3344,
		CeilingZ:  -4000,
		FloorZ:    256,
		Lotag:     0x0102,
		Extra:     -1,
	}
	b := encodeSector(&s)
	if len(b) != SectorRecordSize {
		t.Fatalf("len = %d, want %d", len(b), SectorRecordSize)
	}
	le := binary.LittleEndian
	if got := le.Uint16(b[0:]); got != 0x1122 {
		t.Errorf("wallptr bytes = %#x", got)
	}
	if got := int32(le.Uint32(b[4:])); got != -4000 {
		t.Errorf("ceiling_z bytes = %d", got)
	}
	if got := int32(le.Uint32(b[8:])); got != 256 {
		t.Errorf("floor_z bytes = %d", got)
	}
	if got := le.Uint16(b[34:]); got != 0x0102 {
		t.Errorf("lotag bytes = %#x", got)
	}
	if got := int16(le.Uint16(b[38:])); got != -1 {
		t.Errorf("extra bytes = %d", got)
	}
	if decodeSector(b) != s {
		t.Error("decode(encode(s)) != s")
	}
}

func TestWallRecordLayout(t *testing.T) {
	w := Wall{
		X:          -2048,
		Y:          1024,
		Point2:     7,
		NextWall:   -1,
		NextSector: 3,
		CStat:      WallStatBlocking | WallStatOneWay,
		Shade:      -5,
	}
	b := encodeWall(&w)
	if len(b) != WallRecordSize {
		t.Fatalf("len = %d, want %d", len(b), WallRecordSize)
	}
	le := binary.LittleEndian
	if got := int32(le.Uint32(b[0:])); got != -2048 {
		t.Errorf("x bytes = %d", got)
	}
	if got := int16(le.Uint16(b[8:])); got != 7 {
		t.Errorf("point2 bytes = %d", got)
	}
	if got := int16(le.Uint16(b[12:])); got != 3 {
		t.Errorf("next_sector bytes = %d", got)
	}
	if got := le.Uint16(b[14:]); got != (WallStatBlocking | WallStatOneWay) {
		t.Errorf("cstat bytes = %#x", got)
	}
	if got := int8(b[20]); got != -5 {
		t.Errorf("shade bytes = %d", got)
	}
	if decodeWall(b) != w {
		t.Error("decode(encode(w)) != w")
	}
}

func TestSpriteRecordLayout(t *testing.T) {
	s := Sprite{
		X:       10,
		Y:       -20,
		Z:       -30,
		CStat:   uint16(SpriteFloor) << 4,
		SectNum: 5,
		Angle:   1024,
		Extra:   -1,
	}
	b := encodeSprite(&s)
	if len(b) != SpriteRecordSize {
		t.Fatalf("len = %d, want %d", len(b), SpriteRecordSize)
	}
	le := binary.LittleEndian
	if got := int32(le.Uint32(b[8:])); got != -30 {
		t.Errorf("z bytes = %d", got)
	}
	if got := int16(le.Uint16(b[24:])); got != 5 {
		t.Errorf("sectnum bytes = %d", got)
	}
	if got := int16(le.Uint16(b[28:])); got != 1024 {
		t.Errorf("angle bytes = %d", got)
	}
	if decodeSprite(b) != s {
		t.Error("decode(encode(s)) != s")
	}
	if s.Type() != SpriteFloor {
		t.Errorf("type = %v, want floor", s.Type())
	}
}

func TestMapHeaderLayout(t *testing.T) {
	m := Map{
		Version: 7,
		Player: Player{
			PosX: 0x01020304, PosY: 0x05060708, PosZ: -1,
			Angle: 512, Sector: 1,
		},
		Sectors: []Sector{{WallFirst: 0, WallCount: 0}, {WallFirst: 0, WallCount: 0}},
	}
	raw := m.EncodeBytes()

	le := binary.LittleEndian
	if got := int32(le.Uint32(raw[0:])); got != 7 {
		t.Errorf("version bytes = %d", got)
	}
	if got := le.Uint32(raw[4:]); got != 0x01020304 {
		t.Errorf("pos_x bytes = %#x", got)
	}
	if got := int16(le.Uint16(raw[16:])); got != 512 {
		t.Errorf("angle bytes = %d", got)
	}
	if got := int16(le.Uint16(raw[18:])); got != 1 {
		t.Errorf("sector bytes = %d", got)
	}
	if got := le.Uint16(raw[20:]); got != 2 {
		t.Errorf("num_sectors bytes = %d", got)
	}
	wantLen := 20 + 2 + 2*SectorRecordSize + 2 + 2
	if len(raw) != wantLen {
		t.Errorf("encoded length = %d, want %d", len(raw), wantLen)
	}
	if !bytes.Equal(raw[22:22+SectorRecordSize], encodeSector(&m.Sectors[0])) {
		t.Error("first sector record misplaced")
	}
}
