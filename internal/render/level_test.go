package render

import (
	"testing"

	"go-dungeon-platformer/internal/component"
	"go-dungeon-platformer/internal/gfx"
	"go-dungeon-platformer/internal/gfx/gfxtest"
	"go-dungeon-platformer/internal/level"
)

// fixtureRow holds every cell kind once.
const fixtureRow = "-#^D*E123JS/G@"

func drawFixture(t *testing.T, puzzle *component.Puzzle) (*Renderer, *gfxtest.Recorder) {
	t.Helper()
	r, canvas := newTestRenderer(t, 1400, 700, 0)
	lvl := mustLevel(t, fixtureRow)
	r.SetLevel(lvl)
	w := component.NewWorld(lvl)
	if puzzle != nil {
		w.Puzzle = puzzle
	}
	canvas.Reset()
	r.DrawLevel(SceneOf(w))
	return r, canvas
}

func cellImages(r *Renderer, canvas *gfxtest.Recorder, column int) []gfx.ImageID {
	return canvas.ImagesAt(r.Metrics().CellPos(float32(column), 0))
}

func equalIDs(a, b []gfx.ImageID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDrawLevelLayers(t *testing.T) {
	r, canvas := drawFixture(t, &component.Puzzle{Levers: []bool{true, false, true}})

	tests := []struct {
		cell level.Cell
		want []gfx.ImageID
	}{
		{level.AirCell, []gfx.ImageID{ImageAir}},
		{level.WallCell, []gfx.ImageID{ImageWall}},
		{level.SpikesCell, []gfx.ImageID{ImageSpikes}},
		{level.DoorCell, []gfx.ImageID{ImageDoor}},
		{level.CoinCell, []gfx.ImageID{ImageAir, "coin1"}},
		{level.ExitCell, []gfx.ImageID{ImageAir, ImageExit}},
		{'1', []gfx.ImageID{ImageLeverActivated}},
		{'2', []gfx.ImageID{ImageLeverUnactivated}},
		{'3', []gfx.ImageID{ImageLeverActivated}},
		{level.JumpBoostPotionCell, []gfx.ImageID{ImageJumpBoostPotion}},
		{level.SkeletonCell, []gfx.ImageID{ImageSkeleton}},
		{level.SwordCell, []gfx.ImageID{ImageSword}},
		{level.GraalCell, []gfx.ImageID{ImageGraal}},
		// The player cell shows air; the sprite is drawn at the player position.
		{level.PlayerCell, []gfx.ImageID{ImageAir, "player0"}},
	}
	for column, tt := range tests {
		if fixtureRow[column] != byte(tt.cell) {
			t.Fatalf("fixture column %d is %q, test expects %q", column, fixtureRow[column], tt.cell)
		}
		if got := cellImages(r, canvas, column); !equalIDs(got, tt.want) {
			t.Errorf("cell %q drew %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestDrawLevelPlayerIsLast(t *testing.T) {
	r, canvas := drawFixture(t, nil)

	last := canvas.Ops[len(canvas.Ops)-1]
	if last.Kind != gfxtest.OpImage || last.Image != "player0" {
		t.Fatalf("last op = %+v, want the player sprite", last)
	}
	want := gfx.Square(r.Metrics().CellPos(13, 0), r.Metrics().CellSize)
	if last.Rect != want {
		t.Errorf("player drawn at %+v, want %+v", last.Rect, want)
	}
}

func TestDrawLevelDoorOpen(t *testing.T) {
	closed, closedCanvas := drawFixture(t, &component.Puzzle{DoorOpen: false})
	if got := cellImages(closed, closedCanvas, 3); !equalIDs(got, []gfx.ImageID{ImageDoor}) {
		t.Errorf("closed door drew %v", got)
	}

	open, openCanvas := drawFixture(t, &component.Puzzle{DoorOpen: true})
	if got := cellImages(open, openCanvas, 3); len(got) != 0 {
		t.Errorf("open door drew %v, want nothing", got)
	}
}

func TestDrawLevelLeversAreIndependent(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		levers := []bool{mask&1 != 0, mask&2 != 0, mask&4 != 0}
		r, canvas := drawFixture(t, &component.Puzzle{Levers: levers})

		for i, on := range levers {
			want := ImageLeverUnactivated
			if on {
				want = ImageLeverActivated
			}
			got := cellImages(r, canvas, 6+i)
			if !equalIDs(got, []gfx.ImageID{want}) {
				t.Errorf("levers %v: lever %d drew %v, want [%s]", levers, i+1, got, want)
			}
		}
	}
}

func TestDrawLevelCoinsShareFrame(t *testing.T) {
	r, canvas := newTestRenderer(t, 800, 600, 0)
	lvl := mustLevel(t, "*-*")
	r.SetLevel(lvl)
	scene := SceneOf(component.NewWorld(lvl))

	for frame := 0; frame < 3; frame++ {
		canvas.Reset()
		r.DrawLevel(scene)
		first := cellImages(r, canvas, 0)
		second := cellImages(r, canvas, 2)
		if !equalIDs(first, second) {
			t.Errorf("frame %d: coins drew %v and %v", frame, first, second)
		}
		r.NextFrame()
	}
}

func TestLayerResolve(t *testing.T) {
	var zero Layer
	if _, _, ok := zero.Resolve(&component.Puzzle{}, level.AirCell); ok {
		t.Error("zero layer resolved to something")
	}
	hidden := Layer{Image: ImageDoor, Visible: func(*component.Puzzle, level.Cell) bool { return false }}
	if _, _, ok := hidden.Resolve(&component.Puzzle{}, level.DoorCell); ok {
		t.Error("hidden layer resolved to something")
	}
	_, sprite, ok := Layer{Sprite: SpriteCoin}.Resolve(&component.Puzzle{}, level.CoinCell)
	if !ok || sprite != SpriteCoin {
		t.Errorf("sprite layer resolved to %q, %v", sprite, ok)
	}
}

func TestDrawImageIsCellSquare(t *testing.T) {
	r, canvas := newTestRenderer(t, 1400, 700, 0)
	r.SetLevel(mustLevel(t, fixtureRow))
	canvas.Reset()

	pos := gfx.Vec2{X: 12.5, Y: 40}
	r.DrawImage(ImageWall, pos)

	images := canvas.Filter(gfxtest.OpImage)
	if len(images) != 1 {
		t.Fatalf("drew %d images, want 1", len(images))
	}
	want := gfx.Rect{X: 12.5, Y: 40, Width: r.Metrics().CellSize, Height: r.Metrics().CellSize}
	if images[0].Image != ImageWall || images[0].Rect != want {
		t.Errorf("drew %s at %+v, want wall at %+v", images[0].Image, images[0].Rect, want)
	}
}

func TestDrawSprite(t *testing.T) {
	r, canvas := newTestRenderer(t, 800, 600, 0)
	r.SetLevel(mustLevel(t, "*-*"))
	pos := r.Metrics().CellPos(1, 0)

	var got []gfx.ImageID
	for frame := 0; frame < 3; frame++ {
		canvas.Reset()
		r.DrawSprite(SpriteCoin, pos)
		r.DrawSprite(SpriteCoin, pos)
		got = append(got, canvas.ImagesAt(pos)...)
		r.NextFrame()
	}
	want := []gfx.ImageID{"coin1", "coin1", "coin0", "coin0", "coin1", "coin1"}
	if !equalIDs(got, want) {
		t.Errorf("coin frames = %v, want %v", got, want)
	}

	canvas.Reset()
	r.DrawSprite("missing", pos)
	if len(canvas.Ops) != 0 {
		t.Errorf("unknown sprite drew %+v", canvas.Ops)
	}
}
