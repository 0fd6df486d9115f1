package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/emberfield/theme"
)

// MenuData feeds the mood menu overlay.
type MenuData struct {
	Moods        []theme.Mood
	ActiveIndex  int
	AudioOn      bool
	Muted        bool
	ScreenWidth  int32
	ScreenHeight int32
}

// MenuPanel is the modal mood menu. While it is open the field sees an
// absent pointer and clicks spawn nothing.
type MenuPanel struct {
	renderer *Renderer
	width    int32
}

// NewMenuPanel creates the menu overlay panel.
func NewMenuPanel() *MenuPanel {
	return &MenuPanel{
		renderer: NewRenderer(),
		width:    320,
	}
}

// Draw renders the dim scrim and the centered menu panel.
func (m *MenuPanel) Draw(data MenuData) {
	r := m.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	drawScrim(data.ScreenWidth, data.ScreenHeight)

	moodRows := int32(len(data.Moods)) * (lineHeight + 4)
	height := padding*2 + 28 + (lineHeight+2)*2 + moodRows + lineHeight*3 + 20
	x := (data.ScreenWidth - m.width) / 2
	y := (data.ScreenHeight - height) / 2

	r.DrawPanel(x, y, m.width, height)

	cx := x + padding
	cy := y + padding

	rl.DrawText("emberfield", cx, cy, r.Theme.TitleFontSize, rl.White)
	cy += 28

	cy = r.DrawSectionHeader(cx, cy, "Moods")
	for i, mood := range data.Moods {
		sx := cx
		if i == data.ActiveIndex {
			rl.DrawText(">", sx, cy, r.Theme.FontSize, r.Theme.AccentColor)
		}
		sx += 14
		sx = r.DrawColorSwatch(sx, cy, mood.Dot)
		sx = r.DrawColorSwatch(sx, cy, mood.Accent)

		col := r.Theme.LabelColor
		if i == data.ActiveIndex {
			col = r.Theme.ValueColor
		}
		rl.DrawText(mood.Name, sx, cy, r.Theme.FontSize, col)
		rl.DrawText(
			fmt.Sprintf("%.0f Hz", mood.DroneHz),
			x+m.width-padding-58, cy, r.Theme.FontSize, r.Theme.LabelColor,
		)
		cy += lineHeight + 4
	}

	cy = r.DrawSectionHeader(cx, cy+2, "Audio")
	state := "off"
	if data.AudioOn {
		state = "on"
		if data.Muted {
			state = "muted"
		}
	}
	cy = r.DrawLabelValue(cx, cy, "Drone", state)
	if len(data.Moods) > 0 {
		active := data.Moods[data.ActiveIndex]
		cy = r.DrawBar(cx, cy, "Intensity", float32(active.Intensity), m.width-padding*2)
	}

	rl.DrawText("M next mood | A mute | Tab close", cx, cy+4, r.Theme.FontSize, rl.Gray)
}

// AboutPanel is the modal about card.
type AboutPanel struct {
	renderer *Renderer
	width    int32
}

// NewAboutPanel creates the about overlay panel.
func NewAboutPanel() *AboutPanel {
	return &AboutPanel{
		renderer: NewRenderer(),
		width:    380,
	}
}

var aboutLines = []string{
	"A pointer-reactive simplex noise field.",
	"Every frame is a pure function of the clock and the",
	"cursor, so identical inputs paint identical frames.",
	"",
	"Click to ignite sparks. The drone follows the mood.",
}

// Draw renders the dim scrim and the centered about card.
func (a *AboutPanel) Draw(screenWidth, screenHeight int32, version string) {
	r := a.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	drawScrim(screenWidth, screenHeight)

	height := padding*2 + 28 + int32(len(aboutLines))*lineHeight + lineHeight + 10
	x := (screenWidth - a.width) / 2
	y := (screenHeight - height) / 2

	r.DrawPanel(x, y, a.width, height)

	cx := x + padding
	cy := y + padding

	rl.DrawText("emberfield "+version, cx, cy, r.Theme.TitleFontSize, rl.White)
	cy += 28

	for _, line := range aboutLines {
		r.DrawLabel(cx, cy, line)
		cy += lineHeight
	}

	rl.DrawText("F1 or Tab to close", cx, cy+4, r.Theme.FontSize, rl.Gray)
}

// drawScrim dims the scene behind a modal panel.
func drawScrim(width, height int32) {
	rl.DrawRectangle(0, 0, width, height, rl.Color{R: 0, G: 0, B: 0, A: 140})
}
