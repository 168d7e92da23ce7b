package gfx

// Sprite is a frame-by-frame animation. Each frame of the game shows the
// current frame; after FramesToSkip game frames the animation advances.
type Sprite struct {
	Frames       []ImageID
	FramesToSkip int
	Loop         bool

	frameIndex    int
	framesSkipped int
	prevFrame     uint64
	started       bool
}

// NewSprite creates a sprite over the given frames.
func NewSprite(frames []ImageID, framesToSkip int, loop bool) *Sprite {
	return &Sprite{Frames: frames, FramesToSkip: framesToSkip, Loop: loop}
}

// Current returns the frame to draw.
func (s *Sprite) Current() (ImageID, bool) {
	if len(s.Frames) == 0 {
		return "", false
	}
	return s.Frames[s.frameIndex], true
}

// FrameIndex returns the index of the current frame.
func (s *Sprite) FrameIndex() int {
	return s.frameIndex
}

// Advance steps the animation for the given game frame. Calling it more than
// once within the same game frame has no effect, so a sprite shared by
// several cells animates at the same speed as a single one.
func (s *Sprite) Advance(gameFrame uint64) {
	if s.started && s.prevFrame == gameFrame {
		return
	}
	s.started = true
	s.prevFrame = gameFrame

	if s.framesSkipped < s.FramesToSkip {
		s.framesSkipped++
		return
	}
	s.framesSkipped = 0
	s.frameIndex++
	if s.frameIndex >= len(s.Frames) {
		if s.Loop {
			s.frameIndex = 0
		} else {
			s.frameIndex = len(s.Frames) - 1
		}
	}
}

// Reset rewinds the animation to its first frame.
func (s *Sprite) Reset() {
	s.frameIndex = 0
	s.framesSkipped = 0
	s.started = false
}
