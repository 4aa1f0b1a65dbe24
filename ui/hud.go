package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title         string
	RunID         string
	Status        string
	Tick          int32
	TicksPerFrame int
	FPS           int32
	Robots        int
	Lights        int
	Food          int
	FoodEnabled   bool
	Hungry        int
	Starving      int
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD at the top-left of the arena view.
func (h *HUD) Draw(x, y int32, data HUDData) {
	rl.DrawText(data.Title, x, y, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Robots: %d | Lights: %d | Food: %d", data.Robots, data.Lights, data.Food),
		x, y+25, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d", data.Tick, data.TicksPerFrame, data.FPS),
		x, y+45, 16, rl.LightGray,
	)

	if data.FoodEnabled {
		rl.DrawText(
			fmt.Sprintf("Hungry: %d | Starving: %d", data.Hungry, data.Starving),
			x, y+65, 16, rl.LightGray,
		)
	}

	status := data.Status
	if status == "Lost" {
		status = "LOST - a robot starved"
	}
	rl.DrawText(status, x, y+85, 16, h.renderer.Theme.StatusColor(data.Status))

	if data.RunID != "" {
		rl.DrawText("run "+data.RunID, x, y+105, 12, rl.Gray)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(x, screenHeight int32, controls string) {
	rl.DrawText(controls, x, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders step timing by phase.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x := p.x
	y := p.y

	p.renderer.DrawPanel(x-6, y-6, 260, int32(len(telemetry.Phases))*14+52)

	rl.DrawText("Step Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(
		fmt.Sprintf("Avg: %s  Max: %s", stats.AvgTickDuration.Round(time.Microsecond), stats.MaxTickDuration.Round(time.Microsecond)),
		x, y, 14, rl.Yellow,
	)
	y += 16

	for _, phase := range telemetry.Phases {
		avg := stats.PhaseAvg[phase]
		pct := stats.PhasePct[phase]

		color := rl.LightGray
		if pct > 40 {
			color = rl.Red
		} else if pct > 20 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-12s %8s %5.1f%%", phase, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
