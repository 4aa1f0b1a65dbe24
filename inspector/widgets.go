package inspector

import (
	"fmt"
	"math"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Widget colors
var (
	ColorBarBg       = rl.Color{R: 40, G: 40, B: 40, A: 255}
	ColorBarFill     = rl.Color{R: 100, G: 180, B: 100, A: 255}
	ColorBarLow      = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorText        = rl.Color{R: 220, G: 220, B: 220, A: 255}
	ColorTextDim     = rl.Color{R: 150, G: 150, B: 150, A: 255}
	ColorAngleBg     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorAngleNeedle = rl.Color{R: 255, G: 200, B: 100, A: 255}
	ColorBoolOn      = rl.Color{R: 100, G: 200, B: 100, A: 255}
	ColorBoolOff     = rl.Color{R: 80, G: 80, B: 80, A: 255}
)

// DrawLabel renders a text value and returns the height used.
func DrawLabel(x, y int32, name string, value interface{}, options map[string]string) int32 {
	text := FormatValue(value, options["fmt"])
	rl.DrawText(fmt.Sprintf("%s: %s", name, text), x, y, 14, ColorText)
	return 18
}

// DrawBar renders a horizontal bar scaled by the max option.
func DrawBar(x, y int32, name string, value float32, options map[string]string) int32 {
	ratio := clampRatio(value / GetMax(options))

	barWidth := int32(120)
	barHeight := int32(14)

	rl.DrawText(name, x, y, 14, ColorTextDim)

	barX := x + 90
	rl.DrawRectangle(barX, y, barWidth, barHeight, ColorBarBg)

	fillColor := ColorBarFill
	if ratio < 0.3 {
		fillColor = ColorBarLow
	}
	rl.DrawRectangle(barX, y, int32(float32(barWidth)*ratio), barHeight, fillColor)

	rl.DrawText(fmt.Sprintf("%.0f", value), barX+barWidth+5, y, 14, ColorTextDim)

	return 18
}

// DrawBarGroup renders vertical mini-bars for array data such as the four
// sensor readings.
func DrawBarGroup(x, y int32, name string, values []float32, options map[string]string) int32 {
	maxVal := GetMax(options)
	barWidth := int32(28)
	barHeight := int32(30)
	gap := int32(4)
	labelHeight := int32(0)
	labels := parseLabels(options, len(values))
	if labels != nil {
		labelHeight = 10
	}

	rl.DrawText(name, x, y, 14, ColorTextDim)

	barX := x + 70
	for i, v := range values {
		ratio := clampRatio(v / maxVal)
		bx := barX + int32(i)*(barWidth+gap)

		rl.DrawRectangle(bx, y, barWidth, barHeight, ColorBarBg)

		fillHeight := int32(float32(barHeight) * ratio)
		rl.DrawRectangle(bx, y+barHeight-fillHeight, barWidth, fillHeight, lerpColor(ColorBarLow, ColorBarFill, ratio))
	}

	if labels != nil {
		labelY := y + barHeight + 2
		for i, label := range labels {
			if label == "" {
				continue
			}
			lx := barX + int32(i)*(barWidth+gap) + barWidth/2
			textW := rl.MeasureText(label, 8)
			rl.DrawText(label, lx-textW/2, labelY, 8, ColorTextDim)
		}
	}

	return barHeight + labelHeight + 4
}

// DrawAngle renders a compass-style heading indicator. Headings are degrees.
func DrawAngle(x, y int32, name string, degrees float32) int32 {
	size := int32(40)
	centerX := x + 70 + size/2
	centerY := y + size/2

	rl.DrawText(name, x, y+size/2-7, 14, ColorTextDim)

	rl.DrawCircle(centerX, centerY, float32(size/2), ColorAngleBg)
	rl.DrawCircleLines(centerX, centerY, float32(size/2), ColorTextDim)

	rad := float64(degrees) * math.Pi / 180
	needleLen := float32(size/2 - 4)
	rl.DrawLineEx(
		rl.Vector2{X: float32(centerX), Y: float32(centerY)},
		rl.Vector2{
			X: float32(centerX) + needleLen*float32(math.Cos(rad)),
			Y: float32(centerY) + needleLen*float32(math.Sin(rad)),
		},
		2,
		ColorAngleNeedle,
	)

	wrapped := math.Mod(float64(degrees), 360)
	if wrapped < 0 {
		wrapped += 360
	}
	rl.DrawText(fmt.Sprintf("%.0f deg", wrapped), x+70+size+5, y+size/2-7, 14, ColorTextDim)

	return size + 4
}

// DrawBool renders an on/off indicator.
func DrawBool(x, y int32, name string, value bool) int32 {
	rl.DrawText(name, x, y, 14, ColorTextDim)

	indicatorX := x + 90
	indicatorSize := int32(14)

	color := ColorBoolOff
	text := "OFF"
	if value {
		color = ColorBoolOn
		text = "ON"
	}

	rl.DrawRectangle(indicatorX, y, indicatorSize, indicatorSize, color)
	rl.DrawText(text, indicatorX+indicatorSize+5, y, 14, color)

	return 18
}

// DrawField renders a field using its widget type.
func DrawField(x, y int32, field Field) int32 {
	switch field.Widget {
	case WidgetBar:
		if values, ok := GetFloatSlice(field.Value); ok {
			return DrawBarGroup(x, y, field.Name, values, field.Options)
		}
		if v, ok := GetFloatValue(field.Value); ok {
			return DrawBar(x, y, field.Name, v, field.Options)
		}
	case WidgetAngle:
		if v, ok := GetFloatValue(field.Value); ok {
			return DrawAngle(x, y, field.Name, v)
		}
	case WidgetBool:
		if v, ok := field.Value.(bool); ok {
			return DrawBool(x, y, field.Name, v)
		}
	}
	return DrawLabel(x, y, field.Name, field.Value, field.Options)
}

func parseLabels(options map[string]string, count int) []string {
	raw, ok := options["labels"]
	if !ok || raw == "" {
		return nil
	}
	parts := strings.Split(raw, "|")
	if len(parts) != count {
		return nil
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func clampRatio(r float32) float32 {
	if r > 1 {
		return 1
	}
	if r < 0 || r != r {
		return 0
	}
	return r
}

// lerpColor interpolates between two colors.
func lerpColor(a, b rl.Color, t float32) rl.Color {
	return rl.Color{
		R: uint8(float32(a.R) + (float32(b.R)-float32(a.R))*t),
		G: uint8(float32(a.G) + (float32(b.G)-float32(a.G))*t),
		B: uint8(float32(a.B) + (float32(b.B)-float32(a.B))*t),
		A: 255,
	}
}
