package scene_test

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruftwerk/gruft/internal/console"
	"github.com/gruftwerk/gruft/internal/geometry"
	"github.com/gruftwerk/gruft/internal/scene"
)

// scriptScreen feeds a fixed key script and records every frame shown.
type scriptScreen struct {
	keys   []console.Key
	frames [][]string
}

func (s *scriptScreen) Size() geometry.Dimension { return geometry.Dim(20, 4) }

func (s *scriptScreen) Show(b *console.Buffer) error {
	s.frames = append(s.frames, b.Lines(' '))
	return nil
}

func (s *scriptScreen) WaitKey() (console.Key, bool) {
	if len(s.keys) == 0 {
		return console.Key{}, false
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, true
}

func (s *scriptScreen) Close() {}

func newEngine(keys ...rune) (*scene.Engine, *scriptScreen) {
	scr := &scriptScreen{}
	for _, ch := range keys {
		scr.keys = append(scr.keys, console.Char(ch, false))
	}
	return scene.NewEngine(scr, scr.Size(), zerolog.Nop()), scr
}

// trace is the world the test scenes write into.
type trace struct {
	log []string
}

// stubScene records handled runes and picks the mapped transition.
type stubScene struct {
	name string
	on   map[rune]func(w *trace) scene.Transition[*trace]
}

func (s *stubScene) Render(b *console.Buffer, w *trace) {
	b.Print(0, 0, console.AlignLeft, s.name)
}

func (s *stubScene) Interpret(ev scene.Event) any {
	k, ok := ev.(scene.KeyEvent)
	if !ok {
		return nil
	}
	if _, handled := s.on[k.Key.Ch]; !handled {
		return nil
	}
	return k.Key.Ch
}

func (s *stubScene) Update(action any, w *trace) scene.Transition[*trace] {
	ch := action.(rune)
	w.log = append(w.log, s.name+":"+string(ch))
	return s.on[ch](w)
}

func exit(*trace) scene.Transition[*trace] { return scene.Exit[*trace]() }

func TestRun_pushAndResume(t *testing.T) {
	overlay := &stubScene{name: "overlay", on: map[rune]func(*trace) scene.Transition[*trace]{
		'x': exit,
	}}
	base := &stubScene{name: "base", on: map[rune]func(*trace) scene.Transition[*trace]{
		'q': exit,
	}}
	base.on['p'] = func(*trace) scene.Transition[*trace] { return scene.Next[*trace](overlay) }

	e, _ := newEngine('p', 'x', 'q')
	w, err := scene.Run(e, &trace{}, base)
	require.NoError(t, err)
	assert.Equal(t, []string{"base:p", "overlay:x", "base:q"}, w.log)
}

func TestRun_replaceSwapsInPlace(t *testing.T) {
	second := &stubScene{name: "second", on: map[rune]func(*trace) scene.Transition[*trace]{
		'q': exit,
	}}
	first := &stubScene{name: "first", on: map[rune]func(*trace) scene.Transition[*trace]{}}
	first.on['r'] = func(*trace) scene.Transition[*trace] { return scene.Replace[*trace](second) }

	e, scr := newEngine('r', 'q')
	w, err := scene.Run(e, &trace{}, first)
	require.NoError(t, err)

	// Popping the replacement empties the stack, so the run ends.
	assert.Equal(t, []string{"first:r", "second:q"}, w.log)
	require.Len(t, scr.frames, 2)
	assert.Equal(t, "first", strings.TrimSpace(scr.frames[0][0]))
	assert.Equal(t, "second", strings.TrimSpace(scr.frames[1][0]))
}

func TestRun_ignoredEventsSkipUpdate(t *testing.T) {
	base := &stubScene{name: "base", on: map[rune]func(*trace) scene.Transition[*trace]{}}

	e, scr := newEngine('z', 'z')
	w, err := scene.Run(e, &trace{}, base)
	require.NoError(t, err)
	assert.Empty(t, w.log)
	assert.Len(t, scr.frames, 3, "one frame per pass, swallowed keys included")
}

func TestRun_terminalQuitReturnsWorld(t *testing.T) {
	base := &stubScene{name: "base", on: map[rune]func(*trace) scene.Transition[*trace]{}}

	e, scr := newEngine()
	w, err := scene.Run(e, &trace{log: []string{"seed"}}, base)
	require.NoError(t, err)
	assert.Equal(t, []string{"seed"}, w.log)
	assert.Len(t, scr.frames, 1)
}

func TestRun_emptyStack(t *testing.T) {
	e, scr := newEngine('q')
	w, err := scene.Run(e, &trace{})
	require.NoError(t, err)
	assert.NotNil(t, w)
	assert.Empty(t, scr.frames)
}

// cmdScene consumes command events and exits on any key press.
type cmdScene struct{}

func (cmdScene) Render(*console.Buffer, *trace) {}

func (cmdScene) Interpret(ev scene.Event) any {
	switch ev := ev.(type) {
	case scene.CommandEvent:
		return string(ev)
	case scene.KeyEvent:
		return ev.Key
	}
	return nil
}

func (cmdScene) Update(action any, w *trace) scene.Transition[*trace] {
	if cmd, ok := action.(string); ok {
		w.log = append(w.log, "cmd:"+cmd)
		return scene.Continue[*trace]()
	}
	return scene.Exit[*trace]()
}

func TestRun_submittedEventsComeFirst(t *testing.T) {
	e, _ := newEngine('q')
	e.Submit(scene.CommandEvent("ls"))

	w, err := scene.Run(e, &trace{}, cmdScene{})
	require.NoError(t, err)
	assert.Equal(t, []string{"cmd:ls"}, w.log)
}
