// Package renderer draws the arena floor and its entities with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/camera"
)

// BackgroundRenderer renders the arena floor and placement grid.
// The grid is baked once into a render texture sized to the arena.
type BackgroundRenderer struct {
	target rl.RenderTexture2D

	worldW, worldH int32
	cellSize       int32
	offset         int32
	floor          rl.Color
	gridColor      rl.Color
	initialized    bool
}

// NewBackgroundRenderer creates a new background renderer.
func NewBackgroundRenderer(worldW, worldH, offset, cellSize float64) *BackgroundRenderer {
	return &BackgroundRenderer{
		worldW:    int32(worldW),
		worldH:    int32(worldH),
		offset:    int32(offset),
		cellSize:  int32(cellSize),
		floor:     rl.Color{R: 12, G: 14, B: 18, A: 255},
		gridColor: rl.Color{R: 40, G: 46, B: 56, A: 255},
	}
}

// Init bakes the grid texture (must be called after raylib window is created).
func (b *BackgroundRenderer) Init() {
	if b.initialized {
		return
	}

	b.target = rl.LoadRenderTexture(b.worldW, b.worldH)
	rl.SetTextureFilter(b.target.Texture, rl.FilterBilinear)

	rl.BeginTextureMode(b.target)
	rl.ClearBackground(b.floor)
	if b.cellSize > 0 {
		for x := b.offset; x <= b.worldW; x += b.cellSize {
			rl.DrawLine(x, 0, x, b.worldH, b.gridColor)
		}
		for y := b.offset; y <= b.worldH; y += b.cellSize {
			rl.DrawLine(0, y, b.worldW, y, b.gridColor)
		}
	}
	rl.EndTextureMode()

	b.initialized = true
}

// Draw renders the floor through the camera. When showGrid is false only the
// plain floor is drawn.
func (b *BackgroundRenderer) Draw(cam *camera.Camera, showGrid bool) {
	x0, y0 := cam.WorldToScreen(0, 0)
	x1, y1 := cam.WorldToScreen(float32(b.worldW), float32(b.worldH))
	dst := rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}

	if !showGrid {
		rl.DrawRectangleRec(dst, b.floor)
	} else {
		if !b.initialized {
			b.Init()
		}
		// Render textures are stored upside down
		src := rl.Rectangle{X: 0, Y: 0, Width: float32(b.worldW), Height: -float32(b.worldH)}
		rl.DrawTexturePro(b.target.Texture, src, dst, rl.Vector2{}, 0, rl.White)
	}

	rl.DrawRectangleLinesEx(dst, 2, rl.Color{R: 90, G: 100, B: 115, A: 255})
}

// Unload frees resources.
func (b *BackgroundRenderer) Unload() {
	if b.initialized {
		rl.UnloadRenderTexture(b.target)
		b.initialized = false
	}
}
