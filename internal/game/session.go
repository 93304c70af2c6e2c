// Package game wires input, movement, rendering and presentation into the
// interactive demo loop.
package game

import (
	"fmt"
	"time"

	"mini-build/internal/config"
	"mini-build/internal/display"
	"mini-build/internal/input"
	"mini-build/internal/player"
	"mini-build/internal/profiling"
	"mini-build/internal/render"
	"mini-build/pkg/buildmap"
)

// Session is one interactive run of a map.
type Session struct {
	Map        *buildmap.Map
	Window     *display.Window
	Input      *input.Manager
	Controller *player.Controller
	Renderer   *render.Renderer
	Overlay    *render.Overlay
	Frame      *render.Frame

	showProfiling bool
}

// NewSession builds the full demo pipeline around a decoded map.
func NewSession(m *buildmap.Map, w *display.Window) *Session {
	s := &Session{
		Map:        m,
		Window:     w,
		Input:      input.NewManager(),
		Controller: player.NewController(m),
		Renderer:   render.NewRenderer(),
		Overlay:    render.NewOverlay(),
		Frame:      render.NewFrame(),
	}
	w.Glfw().SetKeyCallback(s.Input.KeyCallback)
	return s
}

// Run loops until the window closes.
func (s *Session) Run() {
	limiter := NewFPSLimiter()
	frames := 0
	lastFPSCheckTime := time.Now()

	for !s.Window.ShouldClose() {
		profiling.ResetFrame()
		s.Input.BeginFrame()
		s.handleToggles()

		func() {
			defer profiling.Track("player.Update")()
			s.Controller.Update(s.Map, s.inputState())
		}()

		s.Renderer.MaxDepth = config.GetPortalDepth()
		s.Frame.Clear()
		if config.GetFirstPerson() {
			func() {
				defer profiling.Track("render.Render")()
				s.Renderer.Render(s.Map, s.Frame)
			}()
		}
		if config.GetOverlay() {
			func() {
				defer profiling.Track("render.Overlay")()
				s.Overlay.Render(s.Map, s.Frame)
			}()
		}

		func() {
			defer profiling.Track("display.Present")()
			s.Window.Present(s.Frame)
		}()

		frames++
		if time.Since(lastFPSCheckTime) >= time.Second {
			if s.showProfiling {
				st := s.Renderer.Stats()
				fmt.Printf("FPS: %d  sectors: %d  walls: %d  [%s]\n",
					frames, st.Sectors, st.Walls, profiling.TopN(3))
			}
			frames = 0
			lastFPSCheckTime = time.Now()
		}

		limiter.Wait()
	}
}

func (s *Session) handleToggles() {
	if s.Input.JustPressed(input.ActionQuit) {
		s.Window.Close()
	}
	if s.Input.JustPressed(input.ActionToggleFly) {
		s.Controller.Fly = !s.Controller.Fly
	}
	if s.Input.JustPressed(input.ActionToggleOverlay) {
		config.ToggleOverlay()
	}
	if s.Input.JustPressed(input.ActionToggleView) {
		config.ToggleFirstPerson()
	}
	if s.Input.JustPressed(input.ActionToggleProfiling) {
		s.showProfiling = !s.showProfiling
	}
}

func (s *Session) inputState() player.Input {
	return player.Input{
		Forwards:  s.Input.IsActive(input.ActionMoveForward),
		Backwards: s.Input.IsActive(input.ActionMoveBackward),
		Left:      s.Input.IsActive(input.ActionStrafeLeft),
		Right:     s.Input.IsActive(input.ActionStrafeRight),
		LookLeft:  s.Input.IsActive(input.ActionTurnLeft),
		LookRight: s.Input.IsActive(input.ActionTurnRight),
		Up:        s.Input.IsActive(input.ActionFlyUp),
		Down:      s.Input.IsActive(input.ActionFlyDown),
		Crouch:    s.Input.IsActive(input.ActionCrouch),
	}
}
