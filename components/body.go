package components

// Color is an 8-bit RGB display color.
type Color struct {
	R, G, B uint8
}

// Body holds the disc shape and display color of an entity.
type Body struct {
	Radius float64 `inspect:"label,fmt:%.1f"`
	Color  Color   `inspect:"skip"`
}
