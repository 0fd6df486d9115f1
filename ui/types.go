// Package ui draws the corner HUD, the frame-timing panel, and the modal
// overlay panels on top of the field.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	AccentColor    rl.Color
	BarBg          rl.Color
	BarFill        rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 14, G: 14, B: 20, A: 235},
		PanelBorder:    rl.Color{R: 70, G: 74, B: 90, A: 255},
		SectionHeader:  rl.Color{R: 255, G: 170, B: 90, A: 255},
		LabelColor:     rl.LightGray,
		ValueColor:     rl.White,
		AccentColor:    rl.Color{R: 255, G: 120, B: 60, A: 255},
		BarBg:          rl.Color{R: 36, G: 36, B: 44, A: 255},
		BarFill:        rl.Color{R: 150, G: 160, B: 180, A: 255},
		Padding:        12,
		LineHeight:     16,
		LabelWidth:     80,
		BarHeight:      10,
		FontSize:       12,
		HeaderFontSize: 14,
		TitleFontSize:  20,
	}
}
