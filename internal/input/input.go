// Package input maps physical GLFW keys to logical demo actions with
// per-frame edge detection.
package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical demo action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight
	ActionFlyUp
	ActionFlyDown
	ActionCrouch
	ActionToggleFly
	ActionToggleOverlay
	ActionToggleView
	ActionToggleProfiling
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// Manager tracks keyboard state and maps physical keys to logical actions
type Manager struct {
	mu sync.RWMutex

	// One key can map to multiple actions
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool
	prevState    [ActionCount]bool
	justPressed  [ActionCount]bool
}

// NewManager creates a Manager with the default key bindings
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyUp, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyDown, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionStrafeLeft)
	m.BindKey(glfw.KeyD, ActionStrafeRight)
	m.BindKey(glfw.KeyQ, ActionTurnLeft)
	m.BindKey(glfw.KeyLeft, ActionTurnLeft)
	m.BindKey(glfw.KeyE, ActionTurnRight)
	m.BindKey(glfw.KeyRight, ActionTurnRight)
	m.BindKey(glfw.KeySpace, ActionFlyUp)
	m.BindKey(glfw.KeyLeftShift, ActionFlyDown)
	m.BindKey(glfw.KeyC, ActionCrouch)
	m.BindKey(glfw.KeyF, ActionToggleFly)
	m.BindKey(glfw.Key2, ActionToggleOverlay)
	m.BindKey(glfw.Key3, ActionToggleView)
	m.BindKey(glfw.KeyV, ActionToggleProfiling)
	m.BindKey(glfw.KeyEscape, ActionQuit)

	return m
}

// BindKey binds a physical key to a logical action. Multiple keys can be
// bound to the same action.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if action < 0 || action >= ActionCount {
		return
	}
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// KeyCallback is installed as the GLFW key callback.
func (m *Manager) KeyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.keyToActions[key] {
		switch action {
		case glfw.Press:
			m.currentState[a] = true
		case glfw.Release:
			m.currentState[a] = false
		}
	}
}

// BeginFrame computes the just-pressed edges. Call once per frame, after
// the event pump.
func (m *Manager) BeginFrame() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for a := Action(0); a < ActionCount; a++ {
		m.justPressed[a] = m.currentState[a] && !m.prevState[a]
		m.prevState[a] = m.currentState[a]
	}
}

// IsActive reports whether the action's key is held down
func (m *Manager) IsActive(a Action) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState[a]
}

// JustPressed reports whether the action's key went down this frame
func (m *Manager) JustPressed(a Action) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[a]
}
