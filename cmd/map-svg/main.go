// Command map-svg renders the top-down sector layout of a MAP file as an
// SVG document, with the starting sector highlighted and the player start
// marked.
//
// Usage:
//
//	map-svg INPUT.MAP [OUTPUT.svg]
//
// With no output argument the SVG is written next to the input; "-" writes
// to stdout.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo"

	"mini-build/pkg/buildmap"
)

func main() {
	args := os.Args[1:]
	for _, a := range args {
		if a == "--help" || a == "-h" {
			usage()
			return
		}
	}
	if len(args) < 1 || len(args) > 2 {
		usage()
		os.Exit(2)
	}

	m, err := buildmap.DecodeFile(args[0])
	if err != nil {
		log.Fatal(err)
	}

	var out io.Writer
	switch {
	case len(args) == 2 && args[1] == "-":
		out = os.Stdout
	case len(args) == 2:
		out = mustCreate(args[1])
	default:
		path := strings.TrimSuffix(args[0], ".MAP")
		path = strings.TrimSuffix(path, ".map") + ".svg"
		out = mustCreate(path)
	}

	writeDocument(out, m)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: map-svg INPUT.MAP [OUTPUT.svg]")
}

func mustCreate(path string) io.Writer {
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	return f
}

func writeDocument(w io.Writer, m *buildmap.Map) {
	minX, minY, maxX, maxY := bounds(m)
	width := int(maxX - minX)
	height := int(maxY - minY)

	canvas := svg.New(w)
	canvas.Startview(width, height, 0, 0, width, height)
	for i := range m.Sectors {
		fill := "white"
		if m.Player.Sector == int16(i) {
			fill = "#ffaaaa"
		}
		canvas.Path(sectorPath(m, int16(i), minX, minY),
			fmt.Sprintf(`fill="%s" stroke="black" stroke-width="32"`, fill))
	}
	canvas.Circle(int(m.Player.PosX-minX), int(m.Player.PosY-minY), 512, `fill="red"`)
	canvas.End()
}

// sectorPath builds the SVG path data for one sector's wall loop.
func sectorPath(m *buildmap.Map, sector int16, minX, minY int32) string {
	var b strings.Builder
	it := m.SectorWalls(sector)
	first := true
	for {
		l, r, ok := it.Next()
		if !ok {
			break
		}
		if first {
			fmt.Fprintf(&b, "M%d,%d", l.X-minX, l.Y-minY)
			first = false
		}
		fmt.Fprintf(&b, " L%d,%d", r.X-minX, r.Y-minY)
	}
	b.WriteString(" Z")
	return b.String()
}

func bounds(m *buildmap.Map) (minX, minY, maxX, maxY int32) {
	minX, minY = int32(1<<31-1), int32(1<<31-1)
	maxX, maxY = int32(-1<<31), int32(-1<<31)
	for i := range m.Walls {
		w := &m.Walls[i]
		minX, maxX = min(minX, w.X), max(maxX, w.X)
		minY, maxY = min(minY, w.Y), max(maxY, w.Y)
	}
	return minX, minY, maxX, maxY
}
