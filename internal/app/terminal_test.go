package app

import (
	"strings"
	"testing"
	"time"

	"go-dungeon-platformer/internal/config"
	"go-dungeon-platformer/internal/state"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

func screenText(screen tcell.Screen) string {
	w, h := screen.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func startTerminal(screen tcell.Screen, opts Options, stop <-chan struct{}) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- runTerminal(screen, config.Default(), opts, stop)
	}()
	return done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runTerminal: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("runTerminal did not return")
	}
}

func TestRunTerminalDrawsUntilStopped(t *testing.T) {
	screen := newSimScreen(t)
	stop := make(chan struct{})
	done := startTerminal(screen, Options{Screen: state.ScreenMenu}, stop)

	time.Sleep(200 * time.Millisecond)
	close(stop)
	waitDone(t, done)

	text := screenText(screen)
	for _, want := range []string{"Dungeon Platformer", "Press Enter to Start"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen does not show %q:\n%s", want, text)
		}
	}
}

func TestRunTerminalQuitsOnEscape(t *testing.T) {
	screen := newSimScreen(t)
	done := startTerminal(screen, Options{}, nil)

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	waitDone(t, done)
}

func TestRunTerminalRejectsBadLevel(t *testing.T) {
	screen := newSimScreen(t)
	cfg := config.Default()
	cfg.Level = nil
	if err := runTerminal(screen, cfg, Options{}, nil); err == nil {
		t.Fatal("expected an error for a config without a level")
	}
}
