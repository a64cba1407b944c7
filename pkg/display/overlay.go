package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Overlay writes lines of text in the top-left corner of a surface
type Overlay struct {
	Font  tinyfont.Fonter
	Color color.RGBA
	X, Y  int16 // Top-left corner of the first line
}

// NewOverlay creates an overlay using the proggy 8pt font in black
func NewOverlay() *Overlay {
	return &Overlay{
		Font:  &proggy.TinySZ8pt7b,
		Color: color.RGBA{0, 0, 0, 255},
		X:     4,
		Y:     4,
	}
}

// LineHeight returns the vertical advance between lines
func (o *Overlay) LineHeight() int16 {
	return int16(o.Font.GetYAdvance())
}

// Draw writes each line below the previous one. tinyfont positions text by
// baseline, so the first baseline sits one line height below Y.
func (o *Overlay) Draw(d drivers.Displayer, lines ...string) {
	lineHeight := o.LineHeight()
	for i, line := range lines {
		baseline := o.Y + lineHeight*int16(i+1)
		tinyfont.WriteLine(d, o.Font, o.X, baseline, line, o.Color)
	}
}
