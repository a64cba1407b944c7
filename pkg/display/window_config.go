package display

import "fmt"

// WindowConfig controls the desktop window
type WindowConfig struct {
	Title     string
	Width     int // Framebuffer width in pixels
	Height    int // Framebuffer height in pixels
	Scale     int // Window pixels per framebuffer pixel
	FrameRate int // Frames rendered per second
}

// DefaultWindowConfig returns a 1:1 window redrawn once per second
func DefaultWindowConfig(width, height int) WindowConfig {
	return WindowConfig{
		Title:     "Ray Caster",
		Width:     width,
		Height:    height,
		Scale:     1,
		FrameRate: 1,
	}
}

func (c WindowConfig) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("window scale must be positive, got %d", c.Scale)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be positive, got %d", c.FrameRate)
	}
	return nil
}
