// Command map-info prints a summary of a MAP file: header, table sizes and
// per-sector wall/portal counts.
package main

import (
	"fmt"
	"log"
	"os"

	"mini-build/pkg/buildmap"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: map-info FILE.MAP")
		os.Exit(2)
	}

	m, err := buildmap.DecodeFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("version: %d\n", m.Version)
	fmt.Printf("player:  pos=(%d, %d, %d) angle=%d sector=%d\n",
		m.Player.PosX, m.Player.PosY, m.Player.PosZ, m.Player.Angle, m.Player.Sector)
	fmt.Printf("sectors: %d\n", len(m.Sectors))
	fmt.Printf("walls:   %d\n", len(m.Walls))
	fmt.Printf("sprites: %d\n", len(m.Sprites))

	for i := range m.Sectors {
		s := &m.Sectors[i]
		portals := 0
		it := m.SectorWalls(int16(i))
		for {
			l, _, ok := it.Next()
			if !ok {
				break
			}
			if l.IsPortal() {
				portals++
			}
		}
		fmt.Printf("  sector %3d: walls=%2d portals=%d ceiling_z=%d floor_z=%d\n",
			i, s.WallCount, portals, s.CeilingZ, s.FloorZ)
	}
}
