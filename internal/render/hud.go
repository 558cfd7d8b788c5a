package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders the status line and the latest message under the map,
// then shows the frame.
func (r *Renderer) DrawHUD(status string, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawText(0, hudY, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	if len(messages) > 0 {
		r.drawText(0, hudY+1, messages[len(messages)-1], tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

// drawText writes text left to right, advancing by each rune's display width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
