package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/arena"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
)

// ControlsData is the arena state the controls panel reflects.
type ControlsData struct {
	Status      arena.Status
	Counts      [len(arena.Categories)]int // indexed by arena.Category
	FoodEnabled bool
	Numerator   float64
}

// ControlsDataFrom reads the panel state from an arena.
func ControlsDataFrom(a *arena.Arena) ControlsData {
	d := ControlsData{
		Status:      a.Status(),
		FoodEnabled: a.FoodEnabled(),
		Numerator:   a.LightSensorNumerator(),
	}
	for _, c := range arena.Categories {
		d.Counts[c] = a.Count(c)
	}
	return d
}

// ControlsPanel renders the side panel: game buttons, population sliders and
// overlay toggles.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	limits   [len(arena.Categories)]int
	maxNum   float64
	foodOn   int // food count restored by the food button
}

// NewControlsPanel creates a controls panel whose slider ranges come from cfg.
func NewControlsPanel(x, y, width int32, cfg *config.Config) *ControlsPanel {
	c := &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		maxNum:   cfg.Sensor.MaxNumerator,
		foodOn:   cfg.Population.Food,
	}
	if c.foodOn == 0 {
		c.foodOn = 1
	}
	for _, cat := range arena.Categories {
		c.limits[cat] = categoryLimit(cfg, cat)
	}
	return c
}

func categoryLimit(cfg *config.Config, c arena.Category) int {
	switch c {
	case arena.CategoryLight:
		return cfg.Population.MaxLights
	case arena.CategoryFood:
		return cfg.Population.MaxFood
	default:
		return cfg.Population.MaxRobotsPerBehavior
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Draw renders the panel and returns the requests the user made.
func (c *ControlsPanel) Draw(data ControlsData, overlays *OverlayRegistry) []arena.Request {
	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight
	inner := float32(c.width - padding*2)

	var reqs []arena.Request

	r.DrawPanel(c.x, c.y, c.width, int32(rl.GetScreenHeight())-c.y)

	x := float32(c.x + padding)
	y := c.y + padding

	rl.DrawText("Arena", c.x+padding, y, 20, rl.White)
	rl.DrawText(data.Status.String(), c.x+padding+80, y+3, r.Theme.FontSize, r.Theme.StatusColor(data.Status.String()))
	y += 30

	// Game buttons
	btnW := (inner - 10) / 2
	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: btnW, Height: 28}, "New Game") {
		reqs = append(reqs, commandRequest(arena.CommandReset))
	}
	if gui.Button(rl.Rectangle{X: x + btnW + 10, Y: float32(y), Width: btnW, Height: 28}, playLabel(data.Status)) {
		reqs = append(reqs, commandRequest(toggleCommand(data.Status)))
	}
	y += 36
	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: inner, Height: 28}, foodLabel(data.FoodEnabled)) {
		reqs = append(reqs, c.foodToggle(data.FoodEnabled))
	}
	y += 44

	y = r.DrawSectionHeader(c.x+padding, y, "Population")
	for _, cat := range arena.Categories {
		rl.DrawText(cat.String(), c.x+padding, y, r.Theme.FontSize, r.Theme.LabelColor)
		y += lineHeight
		limit := c.limits[cat]
		v := gui.SliderBar(
			rl.Rectangle{X: x, Y: float32(y), Width: inner - 40, Height: 16},
			"", fmt.Sprintf("%d", limit),
			float32(data.Counts[cat]), 0, float32(limit),
		)
		rl.DrawText(fmt.Sprintf("%d", data.Counts[cat]), int32(x+inner-20), y+1, r.Theme.FontSize, r.Theme.ValueColor)
		if cat == arena.CategoryFood && !data.FoodEnabled {
			v = 0
		}
		if req, ok := countRequest(cat, data.Counts[cat], v); ok {
			reqs = append(reqs, req)
		}
		y += 24
	}

	rl.DrawText("Light sensitivity", c.x+padding, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += lineHeight
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: float32(y), Width: inner - 40, Height: 16},
		"", "",
		float32(data.Numerator), 0, float32(c.maxNum),
	)
	rl.DrawText(fmt.Sprintf("%.0f", data.Numerator), int32(x+inner-34), y+1, r.Theme.FontSize, r.Theme.ValueColor)
	if req, ok := numeratorRequest(data.Numerator, v); ok {
		reqs = append(reqs, req)
	}
	y += 32

	c.drawOverlays(y, overlays)
	return reqs
}

// foodToggle empties the arena of food, or restores the configured amount.
// Food count changes from and to zero switch hunger tracking with it.
func (c *ControlsPanel) foodToggle(enabled bool) arena.Request {
	if enabled {
		return arena.SetCount(arena.CategoryFood, 0)
	}
	return arena.SetCount(arena.CategoryFood, c.foodOn)
}

// drawOverlays lists overlay toggles by category.
func (c *ControlsPanel) drawOverlays(y int32, overlays *OverlayRegistry) int32 {
	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	for _, category := range overlays.Categories() {
		rl.DrawText(categoryLabel(category), c.x+padding, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		y += lineHeight

		for _, desc := range overlays.ByCategory(category) {
			c.drawToggle(c.x+padding, y, desc, overlays.IsEnabled(desc.ID), c.width-padding*2)
			y += lineHeight
		}

		y += 4
	}
	return y
}

// drawToggle draws a single overlay toggle line.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := c.renderer

	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	if enabled {
		statusColor = rl.Color{R: 100, G: 200, B: 100, A: 255}
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)

	nameColor := r.Theme.LabelColor
	if enabled {
		nameColor = rl.White
	}
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}
}

// categoryLabel returns a display label for an overlay category.
func categoryLabel(cat string) string {
	switch cat {
	case "visual":
		return "Visual"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}

// countRequest turns a slider position into a count request when the
// rounded value differs from the current count.
func countRequest(cat arena.Category, current int, slider float32) (arena.Request, bool) {
	n := int(math.Round(float64(slider)))
	if n == current {
		return arena.Request{}, false
	}
	return arena.SetCount(cat, n), true
}

// numeratorRequest turns a slider position into a sensitivity request.
func numeratorRequest(current float64, slider float32) (arena.Request, bool) {
	v := math.Round(float64(slider))
	if v == math.Round(current) {
		return arena.Request{}, false
	}
	return arena.Request{Op: arena.OpSetLightSensitivity, Value: v}, true
}

func commandRequest(cmd arena.Command) arena.Request {
	return arena.Request{Op: arena.OpCommand, Command: cmd}
}

// toggleCommand returns the command the play button sends in status s.
func toggleCommand(s arena.Status) arena.Command {
	if s == arena.StatusPlaying {
		return arena.CommandPause
	}
	return arena.CommandPlay
}

func playLabel(s arena.Status) string {
	if s == arena.StatusPlaying {
		return "Pause"
	}
	return "Play"
}

func foodLabel(enabled bool) string {
	if enabled {
		return "Food OFF"
	}
	return "Food ON"
}
