package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dotlab/audio"
	"github.com/lixenwraith/dotlab/input"
	"github.com/lixenwraith/dotlab/world"
)

// keyFromTcell maps a terminal key event to an input key
func keyFromTcell(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyEnter:
		return input.KeyEnter
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyRune:
		return input.KeyFromRune(ev.Rune())
	}
	return input.KeyNone
}

// HandleEvent processes one terminal event
func (g *Game) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			g.quit = true
			return
		}
		g.handleKey(keyFromTcell(ev))

	case *tcell.EventResize:
		g.screen.Sync()

	case *tcell.EventFocus:
		if !ev.Focused {
			g.releaseAll()
		}
	}
}

func (g *Game) handleKey(k input.Key) {
	switch k {
	case input.KeyNone:
		return
	case input.KeyEscape:
		g.quit = true
		return
	case input.KeyEnter:
		g.capped = !g.capped
		g.log.WithField("capped", g.capped).Debug("frame cap toggled")
		return
	case input.KeySpace:
		if g.session.IsPaused() {
			g.session.Unpause()
		} else {
			g.session.Pause()
		}
		return
	}

	if d, ok := k.Digit(); ok {
		g.handleDigit(d)
		return
	}

	if !g.bound(k) {
		return
	}
	// Repeats refresh the held timestamp but are not new presses
	if g.held.Press(k, g.time.Now()) {
		g.dispatch(input.Press(k))
	}
}

func (g *Game) handleDigit(d int) {
	switch d {
	case 9:
		state := g.sound.ToggleMusic()
		g.log.WithField("music", state.String()).Debug("music toggled")
		return
	case 0:
		g.sound.StopMusic()
		return
	}

	if g.scene.Kind == SceneSave {
		if l, ok := world.LevelByIndex(d); ok {
			g.scene.SetLevel(l)
			g.log.WithField("level", l.Name).Debug("level changed")
		}
		return
	}

	if e, ok := audio.EffectForDigit(d); ok {
		if err := g.sound.Play(e); err != nil {
			g.log.WithError(err).WithField("effect", e.String()).Warn("effect failed")
		}
	}
}

// bound reports whether any player steers with k
func (g *Game) bound(k input.Key) bool {
	for _, p := range g.scene.Players {
		if p.Binding.Owns(k) {
			return true
		}
	}
	return false
}

// dispatch feeds an edge event to every player in accumulate mode
func (g *Game) dispatch(ev input.Event) {
	if g.opts.InputMode != input.ModeAccumulate {
		return
	}
	for _, p := range g.scene.Players {
		p.Actor.HandleEvent(ev, p.Binding)
	}
}

// releaseAll drops every held key, emitting releases so accumulators stay paired
func (g *Game) releaseAll() {
	for _, k := range g.held.Keys() {
		g.dispatch(input.Release(k))
	}
	g.held.Clear()
	g.log.Debug("focus lost, keys released")
}

// nopSound is used when audio is unavailable
type nopSound struct{}

func (nopSound) Play(audio.Effect) error       { return nil }
func (nopSound) PlayBump()                     {}
func (nopSound) ToggleMusic() audio.MusicState { return audio.MusicStopped }
func (nopSound) StopMusic()                    {}
func (nopSound) MusicState() audio.MusicState  { return audio.MusicStopped }
