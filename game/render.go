package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/arena"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/renderer"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/ui"
)

const controlsLegend = "[Space] Play/Pause  [R] Reset  [</>] Speed  [Arrows] Pan / steer selected  [+/-] Zoom  [F3] Perf"

// Draw renders the game.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.background.Draw(g.camera, g.overlays.IsEnabled(ui.OverlayGrid))

	if id, ok := g.inspector.Selected(); ok {
		g.entities.SetSelected(id)
	} else {
		g.entities.SetSelected(-1)
	}
	g.entities.Draw(g.camera, g.arena.Entities(), g.arena.Robots(), g.layers())

	g.drawBanner()
	g.drawUI()

	rl.EndDrawing()
}

// layers maps enabled overlays to renderer layers.
func (g *Game) layers() renderer.Layers {
	return renderer.Layers{
		Sensors:  g.overlays.IsEnabled(ui.OverlaySensors),
		Headings: g.overlays.IsEnabled(ui.OverlayHeadings),
		Names:    g.overlays.IsEnabled(ui.OverlayNames),
		Hunger:   g.overlays.IsEnabled(ui.OverlayHunger),
		Arcs:     g.overlays.IsEnabled(ui.OverlayArcs),
	}
}

// drawBanner shows the terminal or paused state over the arena.
func (g *Game) drawBanner() {
	var text string
	color := rl.Yellow
	switch g.arena.Status() {
	case arena.StatusLost:
		text = "You Lose! A robot starved. Press New Game to restart."
		color = rl.Red
	case arena.StatusWon:
		text = "You Win! Press New Game to restart."
		color = rl.Green
	case arena.StatusPaused:
		text = "PAUSED"
	default:
		return
	}

	cx := g.camera.ViewportX + g.camera.ViewportW/2
	cy := g.camera.ViewportY + g.camera.ViewportH/2
	w := rl.MeasureText(text, 28)
	if g.arena.Status() == arena.StatusPaused {
		cy = g.camera.ViewportY + 40
	}
	rl.DrawText(text, int32(cx)-w/2, int32(cy)-14, 28, color)
}

// drawUI renders the controls panel, HUD, inspector and perf panel.
func (g *Game) drawUI() {
	reqs := g.controls.Draw(ui.ControlsDataFrom(g.arena), g.overlays)
	g.uiRequests = append(g.uiRequests, reqs...)

	sample := g.arena.TelemetrySample()
	left := int32(g.camera.ViewportX) + 10
	g.hud.Draw(left, 10, ui.HUDData{
		Title:         "Robot Arena",
		RunID:         g.runID,
		Status:        g.arena.Status().String(),
		Tick:          g.arena.Tick(),
		TicksPerFrame: g.ticksPerFrame,
		FPS:           rl.GetFPS(),
		Robots:        sample.Fear + sample.Explore + sample.Love + sample.Aggressive,
		Lights:        sample.Lights,
		Food:          sample.Food,
		FoodEnabled:   g.arena.FoodEnabled(),
		Hungry:        sample.Hungry,
		Starving:      sample.Starving,
	})
	g.hud.DrawControls(left, int32(g.screenHeight), controlsLegend)

	g.inspector.Draw(g.arena)

	if g.showPerf {
		g.perfPanel.Draw(g.perfCollector.Stats())
	}
}
