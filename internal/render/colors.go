package render

import "github.com/gdamore/tcell/v2"

// TileStyle is the glyph and colours for one terrain type.
type TileStyle struct {
	Glyph rune
	FG    tcell.Color
	BG    tcell.Color
}

// Style returns the tcell style for the tile.
func (s TileStyle) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(s.FG).Background(s.BG)
}

// Theme maps each terrain type to how it is drawn.
type Theme struct {
	Wall  TileStyle
	Floor TileStyle
}

// DefaultTheme draws walls as green '#' and floors as grey '.' on black.
var DefaultTheme = Theme{
	Wall:  TileStyle{Glyph: '#', FG: tcell.NewRGBColor(0, 255, 0), BG: tcell.ColorBlack},
	Floor: TileStyle{Glyph: '.', FG: tcell.NewRGBColor(128, 128, 128), BG: tcell.ColorBlack},
}
