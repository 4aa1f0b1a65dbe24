// Package inspector shows the components of a selected arena entity.
package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/camera"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
)

// Panel dimensions
const (
	PanelWidth   = 280
	PanelPadding = 10
	HeaderHeight = 30
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
)

// Source looks up entities for the inspector.
type Source interface {
	EntityAt(x, y float64) (int, bool)
	Components(id int) []any
}

// Inspector manages entity selection and panel rendering.
type Inspector struct {
	selected    int
	hasSelected bool
	panelX      int32
	panelY      int32
	panelHeight int32
	maxReading  float32
}

// NewInspector creates an inspector whose panel sits at (x, y).
// maxReading scales the sensor bars.
func NewInspector(x, y int32, maxReading float64) *Inspector {
	return &Inspector{panelX: x, panelY: y, maxReading: float32(maxReading)}
}

// SetPosition moves the panel.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.panelX = x
	ins.panelY = y
}

// HandleInput processes click selection. Clicks on the open panel are ignored.
func (ins *Inspector) HandleInput(mouseX, mouseY float32, cam *camera.Camera, src Source) {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) || rl.IsKeyPressed(rl.KeyEscape) {
		ins.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	if ins.hasSelected {
		closeX := ins.panelX + PanelWidth - 25
		closeY := ins.panelY + 5
		if inRect(mouseX, mouseY, closeX, closeY, 20, 20) {
			ins.Deselect()
			return
		}
		if inRect(mouseX, mouseY, ins.panelX, ins.panelY, PanelWidth, ins.panelHeight) {
			return
		}
	}

	if !cam.Contains(mouseX, mouseY) {
		return
	}
	wx, wy := cam.ScreenToWorld(mouseX, mouseY)
	if id, ok := src.EntityAt(float64(wx), float64(wy)); ok {
		ins.Select(id)
	}
}

func inRect(px, py float32, x, y, w, h int32) bool {
	return int32(px) >= x && int32(px) <= x+w && int32(py) >= y && int32(py) <= y+h
}

// Select marks an entity as selected.
func (ins *Inspector) Select(id int) {
	ins.selected = id
	ins.hasSelected = true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the id of the selected entity.
func (ins *Inspector) Selected() (int, bool) {
	return ins.selected, ins.hasSelected
}

// Draw renders the panel for the selected entity. A selection whose entity
// has been removed is dropped.
func (ins *Inspector) Draw(src Source) {
	if !ins.hasSelected {
		return
	}
	comps := src.Components(ins.selected)
	if comps == nil {
		ins.Deselect()
		return
	}

	height := ins.panelHeight
	if height == 0 {
		height = 200
	}
	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, height, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(height)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText("INSPECTOR", ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding

	for _, section := range ExtractSections(comps) {
		rl.DrawText(section.Title, x, y, 14, ColorSectionText)
		y += 18
		for _, field := range section.Fields {
			y += DrawField(x+6, y, field)
		}
		y += 4
	}

	for _, c := range comps {
		if r, ok := c.(*components.Robot); ok {
			y += ins.drawSensors(x, y, &r.Sensors)
		}
	}

	ins.panelHeight = y - ins.panelY + PanelPadding
}

func (ins *Inspector) drawSensors(x, y int32, rig *components.SensorRig) int32 {
	rl.DrawText("Sensors", x, y, 14, ColorSectionText)
	values := make([]float32, 0, 4)
	for _, s := range rig.All() {
		values = append(values, float32(s.Reading))
	}
	options := map[string]string{
		"max":    fmt.Sprintf("%g", ins.maxReading),
		"labels": "LL|LR|LF|RF",
	}
	return 18 + DrawBarGroup(x+6, y+18, "Reading", values, options)
}
