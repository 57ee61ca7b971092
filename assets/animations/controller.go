package animations

// State selects which animation a character plays.
type State int

const (
	Idle State = iota
	Walk
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walk:
		return "walk"
	}
	return "unknown"
}

// Controller holds a character's animations keyed by state and plays the
// one for the current state.
type Controller struct {
	state      State
	animations map[State]*Animation
}

// NewController builds a controller from frame lists, starting in initial.
func NewController(initial State, frames map[State][]Frame) *Controller {
	c := &Controller{
		state:      initial,
		animations: make(map[State]*Animation, len(frames)),
	}
	for s, f := range frames {
		c.animations[s] = NewAnimation(f...)
	}
	return c
}

// SetState switches animation. Leaving a state restarts its animation so
// it plays from the top next time.
func (c *Controller) SetState(s State) {
	if s == c.state {
		return
	}
	if a, ok := c.animations[c.state]; ok {
		a.Restart()
	}
	c.state = s
}

func (c *Controller) State() State {
	return c.state
}

// Current returns the animation for the current state, or nil if the state
// has none.
func (c *Controller) Current() *Animation {
	return c.animations[c.state]
}

// Update advances the current animation.
func (c *Controller) Update() {
	if a := c.Current(); a != nil {
		a.Update()
	}
}
