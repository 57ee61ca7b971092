package sim

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/tilehop/shared/controller"
)

// Loop feeds a scripted input sequence to a simulation, optionally paced by
// a ticker, and applies tuning reloads between frames.
type Loop struct {
	sim      *Simulation
	tickRate int
	inputs   []controller.Input
	onFrame  func(Frame)
	tunings  <-chan controller.Tuning
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoop returns a loop over inputs. A tickRate of zero or less runs frames
// back to back. onFrame may be nil.
func NewLoop(s *Simulation, tickRate int, inputs []controller.Input, onFrame func(Frame)) *Loop {
	return &Loop{
		sim:      s,
		tickRate: tickRate,
		inputs:   inputs,
		onFrame:  onFrame,
		stopChan: make(chan struct{}),
	}
}

// WithTuning makes the loop apply every tuning received on ch before the
// next frame.
func (l *Loop) WithTuning(ch <-chan controller.Tuning) *Loop {
	l.tunings = ch
	return l
}

// Run steps until the inputs run out or Stop is called, and returns the
// number of frames stepped.
func (l *Loop) Run() int {
	var tick <-chan time.Time
	if l.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
		defer ticker.Stop()
		tick = ticker.C
		log.Printf("sim: loop started at %d ticks/second", l.tickRate)
	}

	for i, in := range l.inputs {
		if tick != nil {
			select {
			case <-l.stopChan:
				return i
			case <-tick:
			}
		} else {
			select {
			case <-l.stopChan:
				return i
			default:
			}
		}

		l.applyTunings()
		f := l.sim.Step(in)
		if l.onFrame != nil {
			l.onFrame(f)
		}
	}
	return len(l.inputs)
}

// Stop ends Run before its next frame. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

func (l *Loop) applyTunings() {
	for l.tunings != nil {
		select {
		case t, ok := <-l.tunings:
			if !ok {
				l.tunings = nil
				return
			}
			if err := l.sim.Player.SetTuning(t); err != nil {
				log.Printf("sim: tuning rejected: %v", err)
				continue
			}
			log.Printf("sim: tuning reloaded at frame %d", l.sim.frame)
		default:
			return
		}
	}
}
