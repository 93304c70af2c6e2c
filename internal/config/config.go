// Package config holds the runtime-adjustable settings of the demo.
package config

import "sync"

// Settings holds display and renderer configuration
type Settings struct {
	mu          sync.RWMutex
	fpsLimit    int  // 0 means uncapped, otherwise target FPS
	windowScale int  // integer upscale of the 320x200 frame
	portalDepth int  // traversal depth cap
	overlay     bool // top-down diagnostic overlay
	firstPerson bool // 3D view
}

var global = &Settings{
	fpsLimit:    60,
	windowScale: 3,
	portalDepth: 32,
	overlay:     false,
	firstPerson: true,
}

// GetFPSLimit returns the configured FPS cap (0 means uncapped)
func GetFPSLimit() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.fpsLimit
}

// SetFPSLimit sets the FPS cap; 0 disables the cap (uncapped)
func SetFPSLimit(limit int) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	if limit > 240 {
		limit = 240
	}
	global.fpsLimit = limit
}

// GetWindowScale returns the integer upscale factor of the window
func GetWindowScale() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.windowScale
}

// SetWindowScale sets the window upscale factor, clamped to [1, 6]
func SetWindowScale(scale int) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if scale < 1 {
		scale = 1
	}
	if scale > 6 {
		scale = 6
	}
	global.windowScale = scale
}

// GetPortalDepth returns the traversal depth cap
func GetPortalDepth() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.portalDepth
}

// SetPortalDepth sets the traversal depth cap, clamped to [1, 64]
func SetPortalDepth(depth int) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if depth < 1 {
		depth = 1
	}
	if depth > 64 {
		depth = 64
	}
	global.portalDepth = depth
}

// GetOverlay returns whether the 2D overlay is drawn
func GetOverlay() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.overlay
}

// ToggleOverlay toggles the 2D overlay
func ToggleOverlay() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.overlay = !global.overlay
}

// GetFirstPerson returns whether the 3D view is drawn
func GetFirstPerson() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.firstPerson
}

// ToggleFirstPerson toggles the 3D view
func ToggleFirstPerson() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.firstPerson = !global.firstPerson
}
