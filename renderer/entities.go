package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/arena"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/camera"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
)

// Layers selects the optional parts of an entity drawing.
type Layers struct {
	Sensors  bool
	Headings bool
	Names    bool
	Hunger   bool
	Arcs     bool
}

// EntityRenderer draws lights, food and robots.
type EntityRenderer struct {
	maxReading float64
	selected   int
}

// NewEntityRenderer creates an entity renderer. maxReading scales sensor dots.
func NewEntityRenderer(maxReading float64) *EntityRenderer {
	return &EntityRenderer{maxReading: maxReading, selected: -1}
}

// SetSelected highlights the entity with the given id. Use -1 for none.
func (r *EntityRenderer) SetSelected(id int) {
	r.selected = id
}

// Draw renders every entity. Lights and food go first so robots stay on top.
func (r *EntityRenderer) Draw(cam *camera.Camera, entities []arena.EntityView, robots []arena.RobotView, layers Layers) {
	for _, e := range entities {
		switch e.Kind {
		case components.KindLight.String():
			r.drawLight(cam, e, layers)
		case components.KindFood.String():
			r.drawFood(cam, e, layers)
		}
	}
	for _, rv := range robots {
		r.drawRobot(cam, rv, layers)
	}
}

func (r *EntityRenderer) drawLight(cam *camera.Camera, e arena.EntityView, layers Layers) {
	if !cam.IsVisible(float32(e.X), float32(e.Y), float32(e.Radius)*3) {
		return
	}
	sx, sy := cam.WorldToScreen(float32(e.X), float32(e.Y))
	radius := float32(e.Radius) * cam.Zoom
	c := toRL(e.Color, 255)

	rl.DrawCircleGradient(int32(sx), int32(sy), radius*3, toRL(e.Color, 50), toRL(e.Color, 0))
	rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, radius, c)
	if layers.Headings {
		drawHeading(cam, e, rl.Gray)
	}
	r.drawCommon(cam, e, layers)
}

func (r *EntityRenderer) drawFood(cam *camera.Camera, e arena.EntityView, layers Layers) {
	if !cam.IsVisible(float32(e.X), float32(e.Y), float32(e.Radius)) {
		return
	}
	sx, sy := cam.WorldToScreen(float32(e.X), float32(e.Y))
	radius := float32(e.Radius) * cam.Zoom
	rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, radius, toRL(e.Color, 200))
	rl.DrawCircleLinesV(rl.Vector2{X: sx, Y: sy}, radius, toRL(e.Color, 255))
	r.drawCommon(cam, e, layers)
}

func (r *EntityRenderer) drawRobot(cam *camera.Camera, rv arena.RobotView, layers Layers) {
	e := rv.EntityView
	if !cam.IsVisible(float32(e.X), float32(e.Y), float32(e.Radius)*2) {
		return
	}
	sx, sy := cam.WorldToScreen(float32(e.X), float32(e.Y))
	center := rl.Vector2{X: sx, Y: sy}
	radius := float32(e.Radius) * cam.Zoom

	if layers.Hunger {
		if c, ok := hungerColor(rv.Hunger); ok {
			rl.DrawRing(center, radius+2, radius+5, 0, 360, 32, c)
		}
	}
	if layers.Arcs && rv.Colliding {
		rl.DrawCircleLinesV(center, radius+8, rl.Red)
	}

	rl.DrawCircleV(center, radius, toRL(e.Color, 255))
	rl.DrawCircleLinesV(center, radius, rl.Black)

	if layers.Headings {
		drawHeading(cam, e, rl.Black)
	}
	if layers.Sensors {
		for i, s := range rv.Sensors {
			px, py := cam.WorldToScreen(float32(s.X), float32(s.Y))
			dot := sensorDotRadius(s.Reading, r.maxReading) * cam.Zoom
			rl.DrawCircleV(rl.Vector2{X: px, Y: py}, dot, sensorColor(i))
		}
	}
	r.drawCommon(cam, e, layers)
}

// drawCommon draws the name label and selection ring.
func (r *EntityRenderer) drawCommon(cam *camera.Camera, e arena.EntityView, layers Layers) {
	sx, sy := cam.WorldToScreen(float32(e.X), float32(e.Y))
	radius := float32(e.Radius) * cam.Zoom
	if layers.Names {
		w := rl.MeasureText(e.Name, 10)
		rl.DrawText(e.Name, int32(sx)-w/2, int32(sy+radius)+4, 10, rl.LightGray)
	}
	if e.ID == r.selected {
		rl.DrawCircleLinesV(rl.Vector2{X: sx, Y: sy}, radius+10, rl.Yellow)
	}
}

func drawHeading(cam *camera.Camera, e arena.EntityView, c rl.Color) {
	hx, hy := headingEnd(e.X, e.Y, e.Theta, e.Radius)
	sx, sy := cam.WorldToScreen(float32(e.X), float32(e.Y))
	ex, ey := cam.WorldToScreen(float32(hx), float32(hy))
	rl.DrawLineEx(rl.Vector2{X: sx, Y: sy}, rl.Vector2{X: ex, Y: ey}, 2, c)
}

// headingEnd returns the point on the rim of a disc along heading theta (degrees).
func headingEnd(x, y, theta, radius float64) (float64, float64) {
	rad := theta * math.Pi / 180
	return x + radius*math.Cos(rad), y + radius*math.Sin(rad)
}

// sensorDotRadius maps a reading to a dot radius in arena units.
func sensorDotRadius(reading, maxReading float64) float32 {
	const minDot, maxDot = 2, 6
	if maxReading <= 0 {
		return minDot
	}
	t := reading / maxReading
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return float32(minDot + t*(maxDot-minDot))
}

// sensorColor returns the dot color by sensor index: light sensors are
// yellow, food sensors green.
func sensorColor(i int) rl.Color {
	if i < 2 {
		return rl.Color{R: 250, G: 220, B: 60, A: 255}
	}
	return rl.Color{R: 60, G: 220, B: 90, A: 255}
}

// hungerColor returns the ring color for a hunger state, if it has one.
func hungerColor(state string) (rl.Color, bool) {
	switch state {
	case "Hungry":
		return rl.Color{R: 230, G: 180, B: 40, A: 220}, true
	case "Starving", "Dead":
		return rl.Color{R: 230, G: 50, B: 40, A: 220}, true
	default:
		return rl.Color{}, false
	}
}

func toRL(c components.Color, a uint8) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: a}
}
