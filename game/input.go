package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/arena"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		cmd := arena.CommandPlay
		if g.arena.Status() == arena.StatusPlaying {
			cmd = arena.CommandPause
		}
		g.arena.AcceptCommand(cmd)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.arena.AcceptCommand(arena.CommandReset)
	}

	// Ticks-per-frame control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		g.SetTicksPerFrame(g.ticksPerFrame - 1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		g.SetTicksPerFrame(g.ticksPerFrame + 1)
	}

	if rl.IsKeyPressed(rl.KeyF3) {
		g.showPerf = !g.showPerf
	}
	for _, key := range g.overlays.Keys() {
		if rl.IsKeyPressed(key) {
			if id, on, ok := g.overlays.HandleKeyPress(key); ok {
				g.logger.Debug("overlay toggled", "overlay", string(id), "enabled", on)
			}
		}
	}

	// Arrows steer the selected robot; without a selection they pan.
	if id, ok := g.inspector.Selected(); !ok || !g.handleNudgeInput(id) {
		g.handleCameraInput()
	}

	mousePos := rl.GetMousePosition()
	g.inspector.HandleInput(mousePos.X, mousePos.Y, g.camera, g.arena)
}

var nudgeKeys = []struct {
	key  int32
	kind arena.NudgeKind
}{
	{rl.KeyLeft, arena.NudgeTurnLeft},
	{rl.KeyRight, arena.NudgeTurnRight},
	{rl.KeyUp, arena.NudgeFaster},
	{rl.KeyDown, arena.NudgeSlower},
}

// handleNudgeInput maps arrow presses to nudges of robot id.
// It reports whether id is a robot, in which case the arrows belong to it.
func (g *Game) handleNudgeInput(id int) bool {
	isRobot := false
	for _, v := range g.arena.Robots() {
		if v.ID == id {
			isRobot = true
			break
		}
	}
	if !isRobot {
		return false
	}
	for _, k := range nudgeKeys {
		if rl.IsKeyPressed(k.key) {
			g.arena.Nudge(id, k.kind)
		}
	}
	return true
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	panel := float32(g.cfg.Screen.PanelWidth)
	g.camera.Resize(w-panel, h)
	g.layoutPanels()
}

// handleCameraInput processes camera pan/zoom controls.
func (g *Game) handleCameraInput() {
	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(8.0) / g.camera.Zoom

	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(0, -panSpeed)
	}

	// Zoom controls: mouse wheel over the arena or +/- keys
	mouse := rl.GetMousePosition()
	if wheelMove := rl.GetMouseWheelMove(); wheelMove != 0 && g.camera.Contains(mouse.X, mouse.Y) {
		g.camera.ZoomBy(1 + wheelMove*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
