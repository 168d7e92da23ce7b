package render

import (
	"go-dungeon-platformer/internal/component"
	"go-dungeon-platformer/internal/gfx"
	"go-dungeon-platformer/internal/level"
)

// Image and sprite IDs the default tile table refers to.
const (
	ImageAir              gfx.ImageID = "air"
	ImageWall             gfx.ImageID = "wall"
	ImageSpikes           gfx.ImageID = "spikes"
	ImageDoor             gfx.ImageID = "door"
	ImageExit             gfx.ImageID = "exit"
	ImageJumpBoostPotion  gfx.ImageID = "jump_boost_potion"
	ImageSkeleton         gfx.ImageID = "skeleton"
	ImageSword            gfx.ImageID = "sword"
	ImageLeverActivated   gfx.ImageID = "lever_activated"
	ImageLeverUnactivated gfx.ImageID = "lever_unactivated"
	ImageGraal            gfx.ImageID = "graal"

	SpriteCoin   = "coin"
	SpritePlayer = "player"
)

// Condition reads puzzle state for one cell.
type Condition func(p *component.Puzzle, c level.Cell) bool

// Layer is what one rendering pass draws for a cell. A zero Layer draws
// nothing.
type Layer struct {
	Image gfx.ImageID
	// Sprite, when set, is drawn instead of Image.
	Sprite string
	// ActiveImage replaces Image while Active reports true.
	ActiveImage gfx.ImageID
	Active      Condition
	// Visible hides the layer while it reports false.
	Visible Condition
}

// Tile is the two-layer look of a cell kind: Base is drawn first, Overlay
// on top of it.
type Tile struct {
	Base    Layer
	Overlay Layer
}

// Resolve returns the image or sprite the layer draws for a cell in the
// given puzzle state. ok is false when nothing is drawn.
func (l Layer) Resolve(p *component.Puzzle, c level.Cell) (image gfx.ImageID, sprite string, ok bool) {
	if l.Visible != nil && !l.Visible(p, c) {
		return "", "", false
	}
	if l.Sprite != "" {
		return "", l.Sprite, true
	}
	image = l.Image
	if l.Active != nil && l.Active(p, c) {
		image = l.ActiveImage
	}
	return image, "", image != ""
}

func doorClosed(p *component.Puzzle, _ level.Cell) bool {
	return !p.DoorOpen
}

func leverOn(p *component.Puzzle, c level.Cell) bool {
	return p.Lever(c.LeverIndex())
}

// DefaultTiles returns the tile table of the game.
func DefaultTiles() map[level.Kind]Tile {
	air := Layer{Image: ImageAir}
	return map[level.Kind]Tile{
		level.Air:    {Base: air},
		level.Player: {Base: air},
		level.Coin:   {Base: air, Overlay: Layer{Sprite: SpriteCoin}},
		level.Exit:   {Base: air, Overlay: Layer{Image: ImageExit}},
		level.Wall:   {Base: Layer{Image: ImageWall}},
		level.Spikes: {Base: Layer{Image: ImageSpikes}},
		level.Door:   {Base: Layer{Image: ImageDoor, Visible: doorClosed}},
		level.Lever: {Overlay: Layer{
			Image:       ImageLeverUnactivated,
			ActiveImage: ImageLeverActivated,
			Active:      leverOn,
		}},
		level.JumpBoostPotion: {Overlay: Layer{Image: ImageJumpBoostPotion}},
		level.Skeleton:        {Overlay: Layer{Image: ImageSkeleton}},
		level.Sword:           {Overlay: Layer{Image: ImageSword}},
		level.Graal:           {Overlay: Layer{Image: ImageGraal}},
	}
}
