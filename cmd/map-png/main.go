// Command map-png renders one first-person frame of a MAP file headlessly
// and writes it as a PNG, optionally overriding the viewpoint. Useful for
// eyeballing a map without a window, and for bug reports.
//
// Usage:
//
//	map-png [-o out.png] [-x N -y N -z N] [-angle N] [-sector N] [-overlay] FILE.MAP
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"mini-build/internal/render"
	"mini-build/pkg/buildmap"
)

func main() {
	out := flag.String("o", "", "output path (default: input with .png)")
	posX := flag.Int("x", 0, "override player x")
	posY := flag.Int("y", 0, "override player y")
	posZ := flag.Int("z", 0, "override player z")
	angle := flag.Int("angle", -1, "override player angle (0-2047)")
	sector := flag.Int("sector", -1, "override player sector")
	overlay := flag.Bool("overlay", false, "draw the top-down overlay")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] FILE.MAP\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	m, err := buildmap.DecodeFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	if setFlags["x"] {
		m.Player.PosX = int32(*posX)
	}
	if setFlags["y"] {
		m.Player.PosY = int32(*posY)
	}
	if setFlags["z"] {
		m.Player.PosZ = int32(*posZ)
	}
	if *angle >= 0 {
		m.Player.Angle = buildmap.Angle(*angle)
	}
	if *sector >= 0 {
		m.Player.Sector = int16(*sector)
	}

	f := render.NewFrame()
	render.NewRenderer().Render(m, f)
	if *overlay {
		render.NewOverlay().Render(m, f)
	}

	img := image.NewRGBA(image.Rect(0, 0, render.Width, render.Height))
	copy(img.Pix, f.RGBA(nil))

	path := *out
	if path == "" {
		path = strings.TrimSuffix(flag.Arg(0), ".MAP")
		path = strings.TrimSuffix(path, ".map") + ".png"
	}
	of, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer of.Close()
	if err := png.Encode(of, img); err != nil {
		log.Fatal(err)
	}
}
