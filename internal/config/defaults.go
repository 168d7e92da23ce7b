package config

// Backends the game can draw with.
const (
	BackendRaylib   = "raylib"
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: Window{
			Width:     ScreenWidth,
			Height:    ScreenHeight,
			Title:     "Dungeon Platformer",
			TargetFPS: TargetFPS,
			Resizable: true,
		},
		Backend: BackendRaylib,
		Assets: Assets{
			Dir: "data",
			Images: map[string]string{
				"air":               "images/air.png",
				"wall":              "images/wall.png",
				"spikes":            "images/spikes.png",
				"door":              "images/door.png",
				"exit":              "images/exit.png",
				"jump_boost_potion": "images/jump_boost_potion.png",
				"skeleton":          "images/skeleton.png",
				"sword":             "images/sword.png",
				"lever_activated":   "images/lever_activated.png",
				"lever_unactivated": "images/lever_unactivated.png",
				"graal":             "images/graal.png",
				"coin0":             "images/coin/coin0.png",
				"coin1":             "images/coin/coin1.png",
				"coin2":             "images/coin/coin2.png",
				"coin3":             "images/coin/coin3.png",
				"player0":           "images/player/player0.png",
				"player1":           "images/player/player1.png",
			},
			Fonts: map[string]string{
				"menu": "fonts/menu.ttf",
			},
			Sprites: map[string]SpriteDef{
				"coin":   {Frames: []string{"coin0", "coin1", "coin2", "coin3"}, FramesToSkip: 8, Loop: true},
				"player": {Frames: []string{"player0", "player1"}, FramesToSkip: 16, Loop: true},
			},
			Glyphs: map[string]Glyph{
				"air":               {Rune: " ", FG: Color{40, 40, 40, 255}, BG: Color{15, 15, 20, 255}},
				"wall":              {Rune: "█", FG: Color{120, 110, 100, 255}, BG: Color{60, 55, 50, 255}},
				"spikes":            {Rune: "^", FG: Color{200, 200, 210, 255}, BG: Color{15, 15, 20, 255}},
				"door":              {Rune: "▒", FG: Color{150, 90, 40, 255}, BG: Color{70, 40, 20, 255}},
				"exit":              {Rune: "E", FG: Color{80, 220, 120, 255}, BG: Color{15, 15, 20, 255}},
				"jump_boost_potion": {Rune: "!", FG: Color{80, 160, 255, 255}, BG: Color{15, 15, 20, 255}},
				"skeleton":          {Rune: "&", FG: Color{230, 230, 220, 255}, BG: Color{15, 15, 20, 255}},
				"sword":             {Rune: "/", FG: Color{190, 200, 220, 255}, BG: Color{15, 15, 20, 255}},
				"lever_activated":   {Rune: "\\", FG: Color{90, 230, 90, 255}, BG: Color{15, 15, 20, 255}},
				"lever_unactivated": {Rune: "/", FG: Color{230, 90, 90, 255}, BG: Color{15, 15, 20, 255}},
				"graal":             {Rune: "Y", FG: Color{255, 215, 0, 255}, BG: Color{15, 15, 20, 255}},
				"coin0":             {Rune: "o", FG: Color{255, 215, 0, 255}, BG: Color{15, 15, 20, 255}},
				"coin1":             {Rune: "O", FG: Color{255, 215, 0, 255}, BG: Color{15, 15, 20, 255}},
				"coin2":             {Rune: "0", FG: Color{255, 200, 0, 255}, BG: Color{15, 15, 20, 255}},
				"coin3":             {Rune: "O", FG: Color{255, 230, 60, 255}, BG: Color{15, 15, 20, 255}},
				"player0":           {Rune: "@", FG: Color{255, 255, 255, 255}, BG: Color{15, 15, 20, 255}},
				"player1":           {Rune: "@", FG: Color{220, 220, 255, 255}, BG: Color{15, 15, 20, 255}},
			},
		},
		Screens: Screens{
			Title:           TextDef{Text: "Dungeon Platformer", X: 0.50, Y: 0.50, Size: 100},
			Subtitle:        TextDef{Text: "Press Enter to Start", X: 0.50, Y: 0.65},
			Paused:          TextDef{Text: "Press Escape to Resume", X: 0.50, Y: 0.50},
			PausedForHint:   TextDef{Text: "Pull the levers in the right order to open the door", X: 0.50, Y: 0.50},
			Defeat:          TextDef{Text: "You Died", X: 0.50, Y: 0.50, Size: 80},
			VictoryTitle:    TextDef{Text: "You Found the Graal!", X: 0.50, Y: 0.50, Size: 100},
			VictorySubtitle: TextDef{Text: "Press Enter to go back to menu", X: 0.50, Y: 0.65},
			ScoreFormat:     "Score %d",
		},
		Colors: Colors{
			Background:  Color(BackgroundColor),
			Text:        Color(TextColor),
			ScoreShadow: Color(ScoreShadowColor),
			VictoryBall: Color(VictoryBallColor),
		},
		Level: []string{
			"####################",
			"#------------------#",
			"#-*--*--*-----S--/-#",
			"#-####-####-#######D",
			"#-------------J----#",
			"#--1-----2-----3---#",
			"#######-^^^-########",
			"#@-----######---*-E#",
			"#----*--------G----#",
			"####################",
		},
		Puzzle: PuzzleStart{
			Levers: []bool{false, true, false},
		},
	}
}
