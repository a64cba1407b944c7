package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/display"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
	"tinygo.org/x/drivers"
)

// Options holds the parsed command line
type Options struct {
	Scene      string
	Mode       string
	Size       int
	ConfigPath string
	Workers    int
	Overlay    bool
	Window     bool
	OutputDir  string
}

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "default", "Scene name, scene file base name, or path to a .json scene")
	mode := flag.String("mode", "", "Override rendering mode: 'silhouette' or 'shaded'")
	size := flag.Int("size", 0, "Override canvas size in pixels (square)")
	configPath := flag.String("config", "", "Load the scene from this JSON config file")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	overlay := flag.Bool("overlay", false, "Draw scene name and hit statistics onto the image")
	window := flag.Bool("window", false, "Show the render in a window, redrawn once per second")
	outputDir := flag.String("output", "output", "Directory for rendered images")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if *list {
		if err := listScenes(); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := Options{
		Scene:      *sceneName,
		Mode:       *mode,
		Size:       *size,
		ConfigPath: *configPath,
		Workers:    *workers,
		Overlay:    *overlay,
		Window:     *window,
		OutputDir:  *outputDir,
	}

	if err := run(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts Options) error {
	s, err := buildScene(opts.Scene, opts.ConfigPath, opts.Mode, opts.Size)
	if err != nil {
		return err
	}

	logger := core.NewDefaultLogger()
	logger.Printf("Scene %q: %s mode, %dx%d\n", s.Name, s.Mode, s.Width, s.Height)

	rt, err := renderer.NewRaytracer(s, renderConfig(s, opts), logger)
	if err != nil {
		return err
	}

	if opts.Window {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		err := display.RunWindow(display.DefaultWindowConfig(s.Width, s.Height), func(_ context.Context, target drivers.Displayer) error {
			_, err := rt.RenderFrame(ctx, target)
			return err
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	filename := outputPath(opts.OutputDir, s.Name, time.Now())
	canvas := display.NewPNGCanvas(s.Width, s.Height, filename)
	if _, err := rt.RenderFrame(context.Background(), canvas); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", canvas.Path())
	return nil
}

// buildScene resolves a scene by name or config file and applies the
// command line overrides
func buildScene(name, configPath, mode string, size int) (*scene.Scene, error) {
	var cfg scene.Config
	var err error
	if configPath != "" {
		cfg, err = scene.LoadConfig(configPath)
		name = configPath
	} else {
		cfg, err = scene.ResolveConfig(name)
	}
	if err != nil {
		return nil, err
	}

	if mode != "" {
		cfg.Mode = mode
	}
	if size > 0 {
		cfg.CanvasSize = size
	}

	id := filepath.Base(name)
	return cfg.Build(strings.TrimSuffix(id, filepath.Ext(id)))
}

func renderConfig(s *scene.Scene, opts Options) renderer.RenderConfig {
	config := renderer.DefaultRenderConfig()
	config.NumWorkers = opts.Workers
	if opts.Overlay {
		overlay := display.NewOverlay()
		config.Annotate = func(target drivers.Displayer, stats renderer.RenderStats) {
			overlay.Draw(target,
				fmt.Sprintf("%s (%s)", s.Name, s.Mode),
				fmt.Sprintf("hits %d/%d", stats.HitPixels, stats.TotalPixels),
				fmt.Sprintf("%v", stats.Duration.Round(time.Millisecond)),
			)
		}
	}
	return config
}

// outputPath returns <dir>/<scene>/render_<timestamp>.png
func outputPath(dir, sceneName string, at time.Time) string {
	timestamp := at.Format("20060102_150405")
	return filepath.Join(dir, sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

func listScenes() error {
	scenes, err := scene.ListScenes()
	if err != nil {
		return err
	}
	for _, info := range scenes {
		fmt.Printf("  %-20s %-10s %s\n", info.ID, info.Mode, info.DisplayName)
	}
	return nil
}

func showHelp() {
	fmt.Println("Ray Caster")
	fmt.Println("Usage: raycaster [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	for _, info := range scene.BuiltinScenes() {
		fmt.Printf("  %-12s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Scene files are loaded from scenes/*.json (see -list).")
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}
