package animations

// Frame is one sprite of an animation and how many ticks it stays on screen.
type Frame struct {
	Sprite int
	Ticks  int
}

// Animation plays a fixed list of frames and loops.
type Animation struct {
	Frames []Frame
	Looped bool

	index int
	tick  int
}

// Update advances the animation by one tick.
func (a *Animation) Update() {
	if len(a.Frames) == 0 {
		return
	}
	a.tick++
	if a.tick < a.Frames[a.index].Ticks {
		return
	}
	a.tick = 0
	a.index++
	if a.index >= len(a.Frames) {
		// loop back to the beginning
		a.index = 0
		a.Looped = true
	}
}

// Sprite returns the sprite of the current frame, or -1 for an empty
// animation.
func (a *Animation) Sprite() int {
	if len(a.Frames) == 0 {
		return -1
	}
	return a.Frames[a.index].Sprite
}

// Frame returns the index of the current frame.
func (a *Animation) Frame() int {
	return a.index
}

// Length returns the total number of ticks in one loop.
func (a *Animation) Length() int {
	n := 0
	for _, f := range a.Frames {
		n += f.Ticks
	}
	return n
}

func (a *Animation) Restart() {
	a.index = 0
	a.tick = 0
	a.Looped = false
}

func NewAnimation(frames ...Frame) *Animation {
	return &Animation{Frames: frames}
}
