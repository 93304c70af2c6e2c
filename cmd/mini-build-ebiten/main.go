// Command mini-build-ebiten is the Ebitengine-hosted variant of the demo,
// for platforms without a native GL window (including browsers via
// GOOS=js).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mini-build/internal/config"
	"mini-build/internal/player"
	"mini-build/internal/render"
	"mini-build/pkg/buildmap"
)

type demo struct {
	m          *buildmap.Map
	controller *player.Controller
	renderer   *render.Renderer
	overlay    *render.Overlay
	frame      *render.Frame
	pix        []byte
}

func (d *demo) Update() error {
	in := player.Input{
		Forwards:  ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backwards: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:      ebiten.IsKeyPressed(ebiten.KeyA),
		Right:     ebiten.IsKeyPressed(ebiten.KeyD),
		LookLeft:  ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		LookRight: ebiten.IsKeyPressed(ebiten.KeyE) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:        ebiten.IsKeyPressed(ebiten.KeySpace),
		Down:      ebiten.IsKeyPressed(ebiten.KeyShiftLeft),
		Crouch:    ebiten.IsKeyPressed(ebiten.KeyC),
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		d.controller.Fly = !d.controller.Fly
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		config.ToggleOverlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		config.ToggleFirstPerson()
	}
	d.controller.Update(d.m, in)
	return nil
}

func (d *demo) Draw(screen *ebiten.Image) {
	d.frame.Clear()
	if config.GetFirstPerson() {
		d.renderer.Render(d.m, d.frame)
	}
	if config.GetOverlay() {
		d.overlay.Render(d.m, d.frame)
	}
	d.pix = d.frame.RGBA(d.pix)
	screen.WritePixels(d.pix)
}

func (d *demo) Layout(_, _ int) (int, int) {
	return render.Width, render.Height
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s FILE.MAP\n", os.Args[0])
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

	d := &demo{
		m:          m,
		controller: player.NewController(m),
		renderer:   render.NewRenderer(),
		overlay:    render.NewOverlay(),
		frame:      render.NewFrame(),
	}
	ebiten.SetWindowSize(render.Width*config.GetWindowScale(), render.Height*config.GetWindowScale())
	ebiten.SetWindowTitle(flag.Arg(0))
	if err := ebiten.RunGame(d); err != nil {
		log.Fatal(err)
	}
}
