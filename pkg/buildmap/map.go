// Package buildmap decodes and encodes Build-engine MAP files (versions 7,
// 8 and 9) into an in-memory world of sectors, walls and sprites suitable
// for rendering and movement queries.
package buildmap

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
)

// Supported MAP file versions. Versions 8 and 9 carry the same record
// layout as 7.
const (
	VersionMin = 7
	VersionMax = 9
)

// UnsupportedVersionError is returned when a MAP header declares a version
// outside [VersionMin, VersionMax].
type UnsupportedVersionError struct {
	Version int32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("buildmap: unsupported MAP file version: %d", e.Version)
}

// Map is a fully decoded MAP file: the player start state plus the sector,
// wall and sprite tables. Sectors and Walls are read-only during rendering;
// only Player mutates between frames.
type Map struct {
	// Version is the MAP file version (7, 8 or 9).
	Version int32

	// Player holds the position, orientation and current sector.
	Player Player

	Sectors []Sector
	Walls   []Wall
	Sprites []Sprite
}

// Decode reads a MAP file from r.
func Decode(r io.Reader) (*Map, error) {
	d := &reader{r: r}

	m := &Map{}
	m.Version = d.i32()
	if d.err == nil && (m.Version < VersionMin || m.Version > VersionMax) {
		return nil, &UnsupportedVersionError{Version: m.Version}
	}
	m.Player = decodePlayer(d)

	numSectors := int(d.u16())
	for i := 0; i < numSectors && d.err == nil; i++ {
		m.Sectors = append(m.Sectors, decodeSector(d.record(SectorRecordSize)))
	}
	numWalls := int(d.u16())
	for i := 0; i < numWalls && d.err == nil; i++ {
		m.Walls = append(m.Walls, decodeWall(d.record(WallRecordSize)))
	}
	numSprites := int(d.u16())
	for i := 0; i < numSprites && d.err == nil; i++ {
		m.Sprites = append(m.Sprites, decodeSprite(d.record(SpriteRecordSize)))
	}
	if d.err != nil {
		return nil, fmt.Errorf("buildmap: read: %w", d.err)
	}
	if err := m.normalize(); err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeBytes decodes a MAP file held in memory.
func DecodeBytes(b []byte) (*Map, error) {
	return Decode(bytes.NewReader(b))
}

// DecodeFile decodes the MAP file at path.
func DecodeFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("buildmap: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes the map back out in MAP file layout. Encoding a freshly
// decoded map reproduces the original bytes.
func (m *Map) Encode(w io.Writer) error {
	e := &writer{w: w}
	e.i32(m.Version)
	encodePlayer(e, &m.Player)
	e.u16(uint16(len(m.Sectors)))
	for i := range m.Sectors {
		e.raw(encodeSector(&m.Sectors[i]))
	}
	e.u16(uint16(len(m.Walls)))
	for i := range m.Walls {
		e.raw(encodeWall(&m.Walls[i]))
	}
	e.u16(uint16(len(m.Sprites)))
	for i := range m.Sprites {
		e.raw(encodeSprite(&m.Sprites[i]))
	}
	if e.err != nil {
		return fmt.Errorf("buildmap: write: %w", e.err)
	}
	return nil
}

// EncodeBytes returns the map in MAP file layout.
func (m *Map) EncodeBytes() []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes cannot fail.
	_ = m.Encode(&buf)
	return buf.Bytes()
}

// normalize bounds-checks the cross-references of the decoded tables.
// Broken wall links degrade to solid walls; a sector whose wall run leaves
// the wall table is a hard error.
func (m *Map) normalize() error {
	numSectors := int16(len(m.Sectors))
	numWalls := len(m.Walls)
	for i := range m.Sectors {
		s := &m.Sectors[i]
		if int(s.WallFirst)+int(s.WallCount) > numWalls {
			return fmt.Errorf("buildmap: sector %d: wall run [%d, %d) exceeds wall table of %d",
				i, s.WallFirst, int(s.WallFirst)+int(s.WallCount), numWalls)
		}
	}
	for i := range m.Walls {
		w := &m.Walls[i]
		if w.NextSector >= numSectors {
			log.Printf("buildmap: wall %d: next_sector %d out of range, treating as solid", i, w.NextSector)
			w.NextSector = -1
			w.NextWall = -1
		}
		if int(w.Point2) < 0 || int(w.Point2) >= numWalls {
			log.Printf("buildmap: wall %d: point2 %d out of range", i, w.Point2)
			w.Point2 = -1
		}
	}
	if m.Player.Sector >= numSectors {
		log.Printf("buildmap: player sector %d out of range", m.Player.Sector)
		m.Player.Sector = -1
	}
	for i := range m.Sprites {
		if m.Sprites[i].SectNum >= numSectors {
			m.Sprites[i].SectNum = -1
		}
	}
	return nil
}

// SectorWalls returns an iterator over the wall loop of the given sector,
// yielding one (left, right) pair per wall. The loop is followed through
// Point2 and yields exactly WallCount pairs for a well-formed sector.
func (m *Map) SectorWalls(sector int16) SectorWalls {
	if sector < 0 || int(sector) >= len(m.Sectors) {
		return SectorWalls{}
	}
	s := &m.Sectors[sector]
	return SectorWalls{
		walls:     m.Walls,
		first:     int(s.WallFirst),
		curr:      int(s.WallFirst),
		remaining: int(s.WallCount),
	}
}

// SectorWalls iterates the closed wall loop of a single sector.
type SectorWalls struct {
	walls     []Wall
	first     int
	curr      int
	remaining int
	done      bool
}

// Next returns the next (left, right) wall pair of the loop. The right wall
// is the one holding the left wall's second endpoint. A broken Point2 link
// closes the loop back onto the first wall.
func (it *SectorWalls) Next() (left, right *Wall, ok bool) {
	if it.done || it.remaining <= 0 || it.curr < 0 || it.curr >= len(it.walls) {
		return nil, nil, false
	}
	left = &it.walls[it.curr]
	next := int(left.Point2)
	if next < 0 || next >= len(it.walls) {
		next = it.first
	}
	right = &it.walls[next]
	it.remaining--
	if next == it.first {
		it.done = true
	} else {
		it.curr = next
	}
	return left, right, true
}

// Len reports how many pairs are still to be yielded.
func (it *SectorWalls) Len() int {
	if it.done {
		return 0
	}
	return it.remaining
}
