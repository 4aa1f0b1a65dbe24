// Package ui draws the viewer's panels: the raygui controls, the HUD and
// the overlay toggles.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	BarBg          rl.Color
	BarFillLow     rl.Color
	BarFillMedium  rl.Color
	BarFillHigh    rl.Color
	StatusPlaying  rl.Color
	StatusPaused   rl.Color
	StatusLost     rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.LightGray,
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFillLow:     rl.Color{R: 200, G: 100, B: 100, A: 255},
		BarFillMedium:  rl.Color{R: 200, G: 180, B: 100, A: 255},
		BarFillHigh:    rl.Color{R: 100, G: 200, B: 100, A: 255},
		StatusPlaying:  rl.Color{R: 100, G: 200, B: 100, A: 255},
		StatusPaused:   rl.Yellow,
		StatusLost:     rl.Red,
		Padding:        10,
		LineHeight:     18,
		LabelWidth:     90,
		BarHeight:      12,
		FontSize:       14,
		HeaderFontSize: 16,
	}
}

// StatusColor returns the theme color for an arena status name.
func (t Theme) StatusColor(status string) rl.Color {
	switch status {
	case "Playing":
		return t.StatusPlaying
	case "Lost":
		return t.StatusLost
	default:
		return t.StatusPaused
	}
}
