//go:build cgo

package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/matzehuels/plotlib/pkg/errors"
)

func run(title string, width, height int, draw DrawFunc) error {
	g := &game{draw: draw, w: width, h: height, dirty: true}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(g); err != nil {
		return errors.Wrap(errors.ErrCodeDisplayUnavailable, err, "run window")
	}
	return nil
}

type game struct {
	draw  DrawFunc
	w, h  int
	img   *ebiten.Image
	dirty bool
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty || g.img == nil {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImageFromImage(g.draw(g.w, g.h))
		g.dirty = false
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}
