package display

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync"

	"github.com/fogleman/gg"
)

// PNGCanvas draws into a gg context and writes a PNG file on every Display
type PNGCanvas struct {
	mu   sync.Mutex // gg keeps the current color as context state
	dc   *gg.Context
	path string
}

// NewPNGCanvas creates a width x height canvas saved to path
func NewPNGCanvas(width, height int, path string) *PNGCanvas {
	return &PNGCanvas{
		dc:   gg.NewContext(width, height),
		path: path,
	}
}

func (p *PNGCanvas) Size() (x, y int16) {
	return int16(p.dc.Width()), int16(p.dc.Height())
}

func (p *PNGCanvas) SetPixel(x, y int16, c color.RGBA) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.dc.SetColor(c)
	p.dc.SetPixel(int(x), int(y))
}

// Clear fills the whole canvas with c
func (p *PNGCanvas) Clear(c color.RGBA) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.dc.SetColor(c)
	p.dc.Clear()
}

// Display saves the canvas as a PNG, creating parent directories as needed
func (p *PNGCanvas) Display() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := p.dc.SavePNG(p.path); err != nil {
		return fmt.Errorf("failed to save %s: %w", p.path, err)
	}
	return nil
}

// Path returns the file the canvas is saved to
func (p *PNGCanvas) Path() string {
	return p.path
}

// Image returns the current canvas contents
func (p *PNGCanvas) Image() image.Image {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dc.Image()
}
