package state

import (
	"github.com/pkg/errors"
)

// Screen - режим экрана, для каждого есть своя функция отрисовки
type Screen string

const (
	ScreenMenu      Screen = "menu"
	ScreenGame      Screen = "game"
	ScreenPause     Screen = "pause"
	ScreenPauseHint Screen = "pause_hint"
	ScreenVictory   Screen = "victory"
	ScreenDefeat    Screen = "defeat"
)

// Screens - все экраны в порядке показа
var Screens = []Screen{
	ScreenMenu,
	ScreenGame,
	ScreenPause,
	ScreenPauseHint,
	ScreenVictory,
	ScreenDefeat,
}

// ParseScreen разбирает название экрана.
func ParseScreen(s string) (Screen, error) {
	for _, screen := range Screens {
		if string(screen) == s {
			return screen, nil
		}
	}
	return "", errors.Errorf("unknown screen %q", s)
}

// New создаёт состояние для экрана.
func New(screen Screen, ctx Context) State {
	switch screen {
	case ScreenGame:
		return NewGameState(ctx)
	case ScreenPause:
		return NewPauseState(ctx, false)
	case ScreenPauseHint:
		return NewPauseState(ctx, true)
	case ScreenVictory:
		return NewVictoryState(ctx)
	case ScreenDefeat:
		return NewDefeatState(ctx)
	default:
		return NewMenuState(ctx)
	}
}
