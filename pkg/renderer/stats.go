package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	HitPixels   int           // Pixels whose ray hit the object
	Tiles       int           // Number of tiles rendered
	Workers     int           // Number of workers used
	Duration    time.Duration // Wall time for the whole frame
}

// Add accumulates per-tile statistics
func (s *RenderStats) Add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
}

// HitRatio returns the fraction of pixels covered by the object
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}
