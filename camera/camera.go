// Package camera maps the bounded arena onto a screen viewport.
package camera

// Camera controls the viewport into the arena.
// The arena is bounded: the camera never shows more than one copy of it and
// panning stops at the walls.
type Camera struct {
	// Position is the camera center in arena coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport rectangle on screen
	ViewportX, ViewportY float32
	ViewportW, ViewportH float32

	// Arena dimensions
	WorldW, WorldH float32

	// Zoom constraints. MinZoom fits the whole arena in the viewport.
	MinZoom, MaxZoom float32
}

// New creates a camera showing the whole arena inside the viewport at (x, y).
func New(x, y, viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{
		ViewportX: x,
		ViewportY: y,
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
		MaxZoom:   4.0,
	}
	c.MinZoom = fitZoom(viewportW, viewportH, worldW, worldH)
	c.Reset()
	return c
}

// fitZoom returns the largest zoom at which the whole world fits.
func fitZoom(viewportW, viewportH, worldW, worldH float32) float32 {
	z := viewportW / worldW
	if zy := viewportH / worldH; zy < z {
		z = zy
	}
	return z
}

// WorldToScreen converts arena coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportX + c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportY + c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to arena coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportX-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportY-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// Contains reports whether a screen point lies inside the viewport.
func (c *Camera) Contains(sx, sy float32) bool {
	return sx >= c.ViewportX && sx < c.ViewportX+c.ViewportW &&
		sy >= c.ViewportY && sy < c.ViewportY+c.ViewportH
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// Resize updates the viewport and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.MinZoom = fitZoom(viewportW, viewportH, c.WorldW, c.WorldH)
	c.SetZoom(c.Zoom)
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clampCenter()
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.clampCenter()
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset centers the camera on the arena and fits it to the viewport.
func (c *Camera) Reset() {
	c.X = c.WorldW / 2
	c.Y = c.WorldH / 2
	c.Zoom = c.MinZoom
}

// clampCenter keeps the visible area inside the arena on each axis where the
// arena is larger than the view.
func (c *Camera) clampCenter() {
	c.X = clampAxis(c.X, c.ViewportW/(2*c.Zoom), c.WorldW)
	c.Y = clampAxis(c.Y, c.ViewportH/(2*c.Zoom), c.WorldH)
}

func clampAxis(center, half, size float32) float32 {
	if 2*half >= size {
		return size / 2
	}
	return clamp(center, half, size-half)
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
