// Command mini-build opens a Build-engine MAP file and walks it from a
// first-person viewpoint, software-rendered into a 320x200 framebuffer.
//
// Usage:
//
//	mini-build [-scale N] [-fps N] FILE.MAP
//
// Controls: W/S move, A/D strafe, Q/E or arrows turn, C crouch, F fly
// (space/shift up/down), 2 overlay, 3 first-person view, V profiling,
// Esc quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/xlab/closer"

	"mini-build/internal/config"
	"mini-build/internal/display"
	"mini-build/internal/game"
	"mini-build/pkg/buildmap"
)

func init() { runtime.LockOSThread() }

func main() {
	scale := flag.Int("scale", config.GetWindowScale(), "window upscale factor")
	fps := flag.Int("fps", config.GetFPSLimit(), "FPS cap, 0 for uncapped")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] FILE.MAP\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	config.SetWindowScale(*scale)
	config.SetFPSLimit(*fps)

	path := flag.Arg(0)
	m, err := buildmap.DecodeFile(path)
	if err != nil {
		closer.Fatalln(err)
	}

	w, err := display.New(path, config.GetWindowScale())
	if err != nil {
		closer.Fatalln(err)
	}
	closer.Bind(w.Destroy)

	game.NewSession(m, w).Run()
	closer.Close()
}
