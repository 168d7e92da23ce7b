package app

import (
	"go-dungeon-platformer/internal/config"
	"go-dungeon-platformer/internal/gfx/ebitencanvas"
	"go-dungeon-platformer/internal/settings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// ebitenGame adapts App to ebiten.Game.
type ebitenGame struct {
	app    *App
	canvas *ebitencanvas.Canvas
	width  int
	height int
}

func (g *ebitenGame) Update() error {
	g.app.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	g.canvas.Bind(screen)
	g.app.Draw()
}

// Layout keeps one logical pixel per window pixel and reports size changes
// to the app.
func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.canvas.SetSize(outsideWidth, outsideHeight)
		g.app.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// RunEbiten opens an ebiten window and runs the game until it is closed.
func RunEbiten(cfg *config.Config, st *settings.Manager, opts Options) error {
	canvas, err := ebitencanvas.New(cfg.Assets.Dir)
	if err != nil {
		return err
	}
	canvas.LoadAssets(cfg.Assets)
	defer canvas.Unload()
	canvas.SetSize(cfg.Window.Width, cfg.Window.Height)

	a, err := New(cfg, canvas, st, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TargetFPS)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if st != nil && st.Get().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	// Экран победы не очищается между кадрами
	ebiten.SetScreenClearedEveryFrame(false)

	game := &ebitenGame{app: a, canvas: canvas, width: cfg.Window.Width, height: cfg.Window.Height}
	if err := ebiten.RunGame(game); err != nil {
		return errors.Wrap(err, "ebiten stopped")
	}
	return nil
}
