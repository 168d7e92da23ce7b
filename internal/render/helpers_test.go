package render

import (
	"go-dungeon-platformer/internal/event"
	"go-dungeon-platformer/internal/level"
)

func eventLevelLoaded(lvl *level.Level) event.Event {
	return event.Event{Type: event.LevelLoaded, Data: lvl}
}

func eventWindowResized() event.Event {
	return event.Event{Type: event.WindowResized}
}
