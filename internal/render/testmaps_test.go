package render

import "mini-build/pkg/buildmap"

// Test geometry. Wall loops wind clockwise (y up) so that interior-facing
// walls survive the back-face rejection of the projector.

// singleRoom is a square sector: walls at (+-1000, +-1000), ceiling -4000,
// floor 0, player at the center looking +Y (angle 512).
func singleRoom() *buildmap.Map {
	return &buildmap.Map{
		Version: 7,
		Player: buildmap.Player{
			PosX: 0, PosY: 0, PosZ: -1024,
			Angle:  512,
			Sector: 0,
		},
		Sectors: []buildmap.Sector{
			{WallFirst: 0, WallCount: 4, CeilingZ: -4000, FloorZ: 0},
		},
		Walls: []buildmap.Wall{
			{X: 1000, Y: 1000, Point2: 1, NextWall: -1, NextSector: -1},
			{X: -1000, Y: 1000, Point2: 2, NextWall: -1, NextSector: -1},
			{X: -1000, Y: -1000, Point2: 3, NextWall: -1, NextSector: -1},
			{X: 1000, Y: -1000, Point2: 0, NextWall: -1, NextSector: -1},
		},
	}
}

// twoRooms is singleRoom with its north wall opened into a second square
// sector at y in [1000, 3000]. The far sector's ceiling is lower and its
// floor higher, so the portal has both frames.
func twoRooms() *buildmap.Map {
	m := singleRoom()
	m.Walls[0].NextSector = 1
	m.Walls[0].NextWall = 6
	m.Sectors = append(m.Sectors, buildmap.Sector{
		WallFirst: 4, WallCount: 4, CeilingZ: -3000, FloorZ: -500,
	})
	m.Walls = append(m.Walls,
		buildmap.Wall{X: 1000, Y: 3000, Point2: 5, NextWall: -1, NextSector: -1},
		buildmap.Wall{X: -1000, Y: 3000, Point2: 6, NextWall: -1, NextSector: -1},
		buildmap.Wall{X: -1000, Y: 1000, Point2: 7, NextWall: 0, NextSector: 0},
		buildmap.Wall{X: 1000, Y: 1000, Point2: 4, NextWall: -1, NextSector: -1},
	)
	return m
}

// roomChain is n square sectors stacked along +Y, joined by portals.
// Sector k spans y in [2000k-1000, 2000k+1000]. When closed is true the
// first portal's far side has ceiling == floor at the near sector's floor,
// so the opening is sealed shut and sector 0 alone covers the frame.
func roomChain(n int, closed bool) *buildmap.Map {
	m := &buildmap.Map{
		Version: 7,
		Player: buildmap.Player{
			PosX: 0, PosY: 0, PosZ: -1024,
			Angle:  512,
			Sector: 0,
		},
	}
	for k := 0; k < n; k++ {
		base := int16(4 * k)
		yLo := int32(2000*k - 1000)
		yHi := int32(2000*k + 1000)

		ceiling, floor := int32(-4000), int32(0)
		if closed && k > 0 {
			ceiling, floor = 0, 0
		}
		m.Sectors = append(m.Sectors, buildmap.Sector{
			WallFirst: uint16(base), WallCount: 4,
			CeilingZ: ceiling, FloorZ: floor,
		})

		north := buildmap.Wall{X: 1000, Y: yHi, Point2: base + 1, NextWall: -1, NextSector: -1}
		west := buildmap.Wall{X: -1000, Y: yHi, Point2: base + 2, NextWall: -1, NextSector: -1}
		south := buildmap.Wall{X: -1000, Y: yLo, Point2: base + 3, NextWall: -1, NextSector: -1}
		east := buildmap.Wall{X: 1000, Y: yLo, Point2: base, NextWall: -1, NextSector: -1}
		if k+1 < n {
			north.NextSector = int16(k + 1)
			north.NextWall = base + 4 + 2
		}
		if k > 0 {
			south.NextSector = int16(k - 1)
			south.NextWall = base - 4
		}
		m.Walls = append(m.Walls, north, west, south, east)
	}
	return m
}

// countColors tallies how many pixels of the frame hold each color.
func countColors(f *Frame) map[uint32]int {
	counts := make(map[uint32]int)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			counts[f[y][x]]++
		}
	}
	return counts
}
