package scene

import (
	"github.com/rs/zerolog"

	"github.com/gruftwerk/gruft/internal/console"
	"github.com/gruftwerk/gruft/internal/geometry"
)

// Engine owns the screen, the frame size, and a queue of synthesized
// events. One engine serves any number of Run calls, nested included.
type Engine struct {
	screen  console.Screen
	size    geometry.Dimension
	log     zerolog.Logger
	pending []Event
}

// NewEngine makes an engine drawing frames of the given size.
func NewEngine(screen console.Screen, size geometry.Dimension, log zerolog.Logger) *Engine {
	return &Engine{screen: screen, size: size, log: log}
}

// Size returns the frame dimension scenes render into.
func (e *Engine) Size() geometry.Dimension { return e.size }

// Submit queues an event ahead of terminal input. The next Run
// iteration consumes it before polling the screen.
func (e *Engine) Submit(ev Event) {
	e.pending = append(e.pending, ev)
}

// Run drives a scene stack over the world until the stack empties or
// the terminal quits, then hands the world back. Each pass renders the
// top scene, waits for one event, and applies the transition the scene
// picks.
func Run[W any](e *Engine, w W, scenes ...Scene[W]) (W, error) {
	stack := make([]Scene[W], len(scenes))
	copy(stack, scenes)
	e.log.Debug().Int("depth", len(stack)).Msg("scene loop started")

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		b := console.NewBuffer(e.size)
		b.SetDefaultBackground(console.Black)
		b.Clear()
		top.Render(b, w)
		if err := e.screen.Show(b); err != nil {
			return w, err
		}

		ev, ok := e.next()
		if !ok {
			e.log.Debug().Msg("input closed, leaving scene stack")
			return w, nil
		}

		action := top.Interpret(ev)
		if action == nil {
			continue
		}

		switch tr := top.Update(action, w); tr.kind {
		case continueScene:
		case exitScene:
			stack = stack[:len(stack)-1]
			e.log.Debug().Int("depth", len(stack)).Msg("scene popped")
		case nextScene:
			stack = append(stack, tr.next)
			e.log.Debug().Int("depth", len(stack)).Msg("scene pushed")
		case replaceScene:
			stack[len(stack)-1] = tr.next
			e.log.Debug().Int("depth", len(stack)).Msg("scene replaced")
		}
	}
	e.log.Debug().Msg("scene loop done")
	return w, nil
}

// next takes the oldest pending event, falling back to the screen.
func (e *Engine) next() (Event, bool) {
	if len(e.pending) > 0 {
		ev := e.pending[0]
		e.pending = e.pending[1:]
		return ev, true
	}
	k, ok := e.screen.WaitKey()
	if !ok {
		return nil, false
	}
	return KeyEvent{Key: k}, true
}
