// Package display provides surfaces a frame can be written to. Every
// surface implements drivers.Displayer: Size, SetPixel and Display.
package display

import (
	"image"
	"image/color"
	"sync/atomic"
)

// Framebuffer is an in-memory RGBA surface.
// Concurrent SetPixel calls are safe as long as they target distinct pixels.
type Framebuffer struct {
	img      *image.RGBA
	presents atomic.Int64
}

// NewFramebuffer allocates a width x height surface, initially transparent black
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

func (f *Framebuffer) Size() (x, y int16) {
	b := f.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel writes one pixel; out-of-bounds coordinates are ignored
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if !(image.Point{X: int(x), Y: int(y)}.In(f.img.Rect)) {
		return
	}
	f.img.SetRGBA(int(x), int(y), c)
}

// Display marks the current contents as a completed frame
func (f *Framebuffer) Display() error {
	f.presents.Add(1)
	return nil
}

// Clear fills the whole surface with c
func (f *Framebuffer) Clear(c color.RGBA) {
	pix := f.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// Image returns the backing image. It is shared, not copied.
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}

// Presents returns how many frames have been presented
func (f *Framebuffer) Presents() int64 {
	return f.presents.Load()
}
