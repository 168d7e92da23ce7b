package app

import (
	"time"

	"go-dungeon-platformer/internal/config"
	"go-dungeon-platformer/internal/gfx/termcanvas"
	"go-dungeon-platformer/internal/settings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// RunTerminal runs the game in the terminal until Escape or Ctrl-C.
// The window size is the terminal size and is not saved.
func RunTerminal(cfg *config.Config, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "failed to init terminal screen")
	}
	defer screen.Fini()
	return runTerminal(screen, cfg, opts, nil)
}

// runTerminal runs the frame loop on an initialized screen. It returns when
// a quit key arrives or stop is closed.
func runTerminal(screen tcell.Screen, cfg *config.Config, opts Options, stop <-chan struct{}) error {
	canvas := termcanvas.New(screen, cfg.Assets.Glyphs)
	a, err := New(cfg, canvas, nil, opts)
	if err != nil {
		return err
	}

	fps := cfg.Window.TargetFPS
	if fps <= 0 {
		fps = config.TargetFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	lastUpdateTime := time.Now()
	for {
		select {
		case <-stop:
			return nil
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				a.Resize(w, h)
			}
		case <-ticker.C:
			now := time.Now()
			deltaTime := now.Sub(lastUpdateTime).Seconds()
			lastUpdateTime = now
			a.Update(deltaTime)
			a.Draw()
			canvas.Show()
		}
	}
}
