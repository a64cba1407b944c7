package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/scene"
	"tinygo.org/x/drivers"
)

// Clearer is implemented by targets that can fill themselves with one color
type Clearer interface {
	Clear(c color.RGBA)
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	TileSize   int // Side length of each tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)

	// Annotate, if set, draws on the finished frame before it is presented
	Annotate func(target drivers.Displayer, stats RenderStats)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Raytracer casts one ray per pixel through the scene's wall plane
type Raytracer struct {
	scene  *scene.Scene
	config RenderConfig
	logger core.Logger

	// Fixed per scene, read-only while rendering
	half      float64
	pixelSize float64
}

// NewRaytracer creates a new raytracer after validating the scene
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		scene:     s,
		config:    config,
		logger:    logger,
		half:      s.Wall.Size / 2,
		pixelSize: s.Wall.Size / float64(s.Width),
	}, nil
}

// Scene returns the scene being rendered
func (rt *Raytracer) Scene() *scene.Scene {
	return rt.scene
}

// RayForPixel returns the normalized camera ray through pixel (x, y).
// Row 0 maps to the top of the wall.
func (rt *Raytracer) RayForPixel(x, y int) core.Ray {
	worldY := rt.half - rt.pixelSize*float64(y)
	worldX := -rt.half + rt.pixelSize*float64(x)
	wallPosition := core.NewPoint(worldX, worldY, rt.scene.Wall.Z)

	direction := wallPosition.Subtract(rt.scene.Camera).Normalize()
	return core.NewRay(rt.scene.Camera, direction)
}

// ColorAt computes the color of pixel (x, y). ok is false when the ray
// misses and the pixel should keep the background.
func (rt *Raytracer) ColorAt(x, y int) (c core.Color, ok bool) {
	ray := rt.RayForPixel(x, y)
	hit := rt.scene.Object.Intersect(ray).Hit()
	if hit == nil {
		return core.Color{}, false
	}

	if rt.scene.Mode == scene.ModeSilhouette {
		return rt.scene.MarkerColor, true
	}

	point := ray.Position(hit.T)
	normal := hit.Object.NormalAt(point)
	eye := ray.Direction.Negate()
	return lights.Lighting(hit.Object.Material(), rt.scene.Light, point, eye, normal), true
}

// RenderBounds renders the pixels within bounds into target
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, target drivers.Displayer) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c, ok := rt.ColorAt(x, y)
			if !ok {
				continue
			}
			target.SetPixel(int16(x), int16(y), c.ToRGBA())
			stats.HitPixels++
		}
	}

	return stats
}

// RenderFrame clears target to the background, renders every tile in
// parallel and presents the result. Rendering the same scene twice writes
// identical pixels.
func (rt *Raytracer) RenderFrame(ctx context.Context, target drivers.Displayer) (RenderStats, error) {
	startTime := time.Now()

	w, h := target.Size()
	if int(w) < rt.scene.Width || int(h) < rt.scene.Height {
		return RenderStats{}, fmt.Errorf("target is %dx%d, scene needs %dx%d", w, h, rt.scene.Width, rt.scene.Height)
	}

	clearTarget(target, rt.scene.Background.ToRGBA(), rt.scene.Width, rt.scene.Height)

	tiles := NewTileGrid(rt.scene.Width, rt.scene.Height, rt.config.TileSize)
	pool := NewWorkerPool(rt.config.NumWorkers)

	stats, err := pool.Run(ctx, tiles, func(tile *Tile) RenderStats {
		return rt.RenderBounds(tile.Bounds, target)
	})
	if err != nil {
		return stats, err
	}

	stats.Duration = time.Since(startTime)
	if rt.config.Annotate != nil {
		rt.config.Annotate(target, stats)
	}

	if err := target.Display(); err != nil {
		return stats, fmt.Errorf("failed to present frame: %w", err)
	}

	rt.logger.Printf("Frame %s (%s): %d/%d pixels hit, %d tiles on %d workers in %v\n",
		rt.scene.Name, rt.scene.Mode, stats.HitPixels, stats.TotalPixels, stats.Tiles, stats.Workers, stats.Duration)
	return stats, nil
}

// clearTarget fills the canvas area with the background color
func clearTarget(target drivers.Displayer, background color.RGBA, width, height int) {
	if clearer, ok := target.(Clearer); ok {
		clearer.Clear(background)
		return
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			target.SetPixel(int16(x), int16(y), background)
		}
	}
}
