// Sensor field preview tool - interactive view of light sensor response with sliders.
//
// Usage: go run ./cmd/sensorpreview [-config arena.yaml]
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
	gridSize     = 128
)

func main() {
	configPath := flag.String("config", "", "Config YAML file (empty = use defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	base := cfg.Sensor
	sensor := base
	worldW, worldH := cfg.Arena.Width, cfg.Arena.Height
	lightX, lightY := worldW/2, worldH/2

	rl.InitWindow(windowWidth, windowHeight, "Sensor Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	grid := make([]float32, gridSize*gridSize)
	pixels := make([]color.RGBA, gridSize*gridSize)
	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	needsRegen := true
	probe := Probe{Radius: (cfg.Robot.MinRadius + cfg.Robot.MaxRadius) / 2}
	previewRect := rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize}

	for !rl.WindowShouldClose() {
		mouse := rl.GetMousePosition()
		overPreview := rl.CheckCollisionPointRec(mouse, previewRect)
		wx := float64(mouse.X-previewRect.X) / previewSize * worldW
		wy := float64(mouse.Y-previewRect.Y) / previewSize * worldH

		// Right-click moves the light
		if overPreview && rl.IsMouseButtonPressed(rl.MouseButtonRight) {
			lightX, lightY = wx, wy
			needsRegen = true
		}
		if overPreview {
			probe.Pose = components.Pose{X: wx, Y: wy, Theta: probe.Pose.Theta}
			if wheel := rl.GetMouseWheelMove(); wheel != 0 {
				probe.Pose.Theta += float64(wheel) * 15
			}
		}

		if needsRegen {
			generateField(grid, gridSize, worldW, worldH, lightX, lightY, sensor)
			for i, v := range grid {
				pixels[i] = readingColor(normalizeReading(v, float32(sensor.MaxReading)))
			}
			rl.UpdateTexture(texture, pixels)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: gridSize, Height: gridSize},
			previewRect,
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		toScreen := func(x, y float64) (int32, int32) {
			return int32(previewRect.X + float32(x/worldW)*previewSize), int32(previewRect.Y + float32(y/worldH)*previewSize)
		}
		lx, ly := toScreen(lightX, lightY)
		rl.DrawCircleLines(lx, ly, 6, rl.Yellow)

		minVal, maxVal, mean := fieldStats(grid)
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Min: %.3f  Max: %.1f  Avg: %.3f", minVal, maxVal, mean), 15, statsY, 16, rl.DarkGray)
		rl.DrawText("Right-click: move light   Wheel: rotate probe", 15, statsY+20, 14, rl.Gray)

		if overPreview {
			px, py := toScreen(probe.Pose.X, probe.Pose.Y)
			rl.DrawCircleLines(px, py, 8, rl.White)
			r := probe.Readings(components.Pose{X: lightX, Y: lightY}, sensor)
			rl.DrawText(fmt.Sprintf("Probe heading %.0f  L=%.2f  R=%.2f", probe.Pose.Theta, r.LightLeft, r.LightRight),
				15, statsY+45, 16, rl.DarkGray)
			y := statsY + 70
			for i, v := range probe.Responses(components.Pose{X: lightX, Y: lightY}, sensor) {
				rl.DrawText(fmt.Sprintf("%-10s left %7.2f  right %7.2f", components.Behaviors[i], v.Left, v.Right),
					15, y, 14, rl.Gray)
				y += 18
			}
		}

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Light Sensor Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		slider := func(label, minLabel, maxLabel, format string, value, minVal, maxVal float32) float32 {
			rl.DrawText(label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			next := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				minLabel, maxLabel,
				value, minVal, maxVal,
			)
			rl.DrawText(fmt.Sprintf(format, value), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			panelY += 35
			if next != value {
				needsRegen = true
			}
			return next
		}

		sensor.Numerator = float64(slider("Numerator (sensitivity)", "0", fmt.Sprintf("%.0f", sensor.MaxNumerator), "%.0f",
			float32(sensor.Numerator), 0, float32(sensor.MaxNumerator)))
		sensor.Exponent = float64(slider("Exponent (distance falloff)", "0.5", "3.0", "%.2f",
			float32(sensor.Exponent), 0.5, 3.0))
		sensor.MinDistance = float64(slider("Min distance (saturation floor)", "1", "50", "%.1f",
			float32(sensor.MinDistance), 1, 50))
		sensor.MaxReading = float64(slider("Max reading (explore/love offset)", "1", "50", "%.1f",
			float32(sensor.MaxReading), 1, 50))
		sensor.Gain = float64(slider("Gain (policy k)", "0.1", "1.5", "%.2f",
			float32(sensor.Gain), 0.1, 1.5))
		sensor.Angle = float64(slider("Mount angle (degrees)", "5", "90", "%.0f",
			float32(sensor.Angle), 5, 90))

		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+int32(panelWidth)-20, int32(panelY), rl.LightGray)
		panelY += 15

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Center Light") {
			lightX, lightY = worldW/2, worldH/2
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			sensor = base
			needsRegen = true
		}
		panelY += 55

		out, err := yaml.Marshal(map[string]config.SensorConfig{"sensor": sensor})
		if err != nil {
			out = []byte(err.Error())
		}
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		rl.DrawText(string(out), int32(panelX), int32(panelY), 14, rl.Gray)

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(string(out))
		}

		rl.EndDrawing()
	}
}
