//go:build cgo

package display

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"tinygo.org/x/drivers"
)

// RunWindow opens a desktop window and redraws it with renderFrame
// FrameRate times per second. Each call gets the same framebuffer and must
// redraw it from scratch. It blocks until the window closes.
func RunWindow(cfg WindowConfig, renderFrame func(ctx context.Context, target drivers.Displayer) error) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := &windowGame{
		ctx:           ctx,
		fb:            NewFramebuffer(cfg.Width, cfg.Height),
		render:        renderFrame,
		ticksPerFrame: max(1, ebiten.DefaultTPS/cfg.FrameRate),
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(ebiten.DefaultTPS)
	return ebiten.RunGame(g)
}

type windowGame struct {
	ctx           context.Context
	fb            *Framebuffer
	fbImg         *ebiten.Image
	render        func(ctx context.Context, target drivers.Displayer) error
	ticks         int
	ticksPerFrame int
}

// Update renders on the game goroutine, so Draw never sees a half-written frame
func (g *windowGame) Update() error {
	if g.ticks%g.ticksPerFrame == 0 {
		if err := g.render(g.ctx, g.fb); err != nil {
			return err
		}
	}
	g.ticks++
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	if g.fbImg == nil {
		w, h := g.fb.Size()
		g.fbImg = ebiten.NewImage(int(w), int(h))
	}
	g.fbImg.WritePixels(g.fb.Image().Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.fb.Size()
	return int(w), int(h)
}
