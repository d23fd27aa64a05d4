// Package game drives the actor demos on a tcell screen: it owns the frame
// loop, translates terminal keys, and renders pixel space as cells.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/dotlab/actor"
	"github.com/lixenwraith/dotlab/audio"
	"github.com/lixenwraith/dotlab/clock"
	"github.com/lixenwraith/dotlab/geom"
	"github.com/lixenwraith/dotlab/input"
	"github.com/lixenwraith/dotlab/save"
	"github.com/lixenwraith/dotlab/world"
)

// Sound is the subset of the audio manager the loop triggers
type Sound interface {
	Play(e audio.Effect) error
	PlayBump()
	ToggleMusic() audio.MusicState
	StopMusic()
	MusicState() audio.MusicState
}

// Options configures a Game
type Options struct {
	Scene      SceneKind
	FPS        int
	InputMode  input.Mode
	KeyTimeout time.Duration // Held keys without a repeat are released after this
	Clamp      geom.ClampMode
	Step       int // Overrides scene velocity steps when > 0
	SavePath   string
	Time       clock.TimeProvider // nil uses the system clock
}

// Game owns all per-run frame state
type Game struct {
	screen tcell.Screen
	scene  *Scene
	opts   Options
	sound  Sound
	log    *logrus.Entry
	time   clock.TimeProvider

	held    *input.Held
	frame   *clock.Timer
	session *clock.Timer
	limiter *clock.Limiter
	capped  bool

	blocked []bool // Last frame's rollback per player, for bump edge detection
	frames  int
	quit    bool
}

// New builds a game on an initialized screen
// sound may be nil to run silent
func New(screen tcell.Screen, opts Options, sound Sound, log *logrus.Entry) (*Game, error) {
	scene, err := NewScene(opts.Scene, opts.Clamp, opts.Step)
	if err != nil {
		return nil, err
	}
	if sound == nil {
		sound = nopSound{}
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	var tp clock.TimeProvider = clock.NewSystemTimeProvider()
	if opts.Time != nil {
		tp = opts.Time
	}
	g := &Game{
		screen:  screen,
		scene:   scene,
		opts:    opts,
		sound:   sound,
		log:     log.WithField("scene", opts.Scene.String()),
		time:    tp,
		held:    input.NewHeld(),
		frame:   clock.NewTimer(tp),
		session: clock.NewTimer(tp),
		limiter: clock.NewLimiter(opts.FPS),
		capped:  true,
		blocked: make([]bool, len(scene.Players)),
	}

	if scene.Kind == SceneSave {
		g.restore()
	}
	return g, nil
}

// restore applies the save file to the save scene
func (g *Game) restore() {
	st, err := save.Load(g.opts.SavePath)
	switch {
	case errors.Is(err, save.ErrNoSave):
		g.log.Info("no save file, starting fresh")
		return
	case err != nil:
		g.log.WithError(err).Warn("ignoring unreadable save")
		return
	}

	if l, ok := world.LevelByName(st.Level); ok {
		g.scene.SetLevel(l)
	} else {
		g.log.WithField("level", st.Level).Warn("unknown level in save, using default")
	}

	p := g.scene.Players[0].Actor
	b := p.Bounds()
	if st.Sanitize(g.scene.Level.Bounds(), b.W, b.H) {
		g.log.WithFields(logrus.Fields{"x": st.X, "y": st.Y}).Warn("saved position out of bounds, reset")
	}
	p.SetPosition(st.X, st.Y)
	g.log.WithFields(logrus.Fields{"x": st.X, "y": st.Y, "level": g.scene.Level.Name}).Info("save restored")
}

// Close persists the save scene state
func (g *Game) Close() error {
	if g.scene.Kind != SceneSave {
		return nil
	}
	p := g.scene.Players[0].Actor
	st := save.State{X: p.X(), Y: p.Y(), Level: g.scene.Level.Name}
	if err := save.Store(g.opts.SavePath, st); err != nil {
		return fmt.Errorf("store save: %w", err)
	}
	g.log.WithFields(logrus.Fields{"x": st.X, "y": st.Y, "level": st.Level}).Info("save stored")
	return nil
}

// Scene exposes the running scene
func (g *Game) Scene() *Scene { return g.scene }

// Quit reports whether the player asked to exit
func (g *Game) Quit() bool { return g.quit }

// Run drives frames until quit or ctx is done
func (g *Game) Run(ctx context.Context) error {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	g.session.Start()
	g.log.WithFields(logrus.Fields{"fps": g.opts.FPS, "input": g.opts.InputMode.String(), "clamp": g.opts.Clamp.String()}).Info("frame loop started")

	for !g.quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.frame.Start()

	drain:
		for {
			select {
			case ev := <-eventChan:
				g.HandleEvent(ev)
			default:
				break drain
			}
		}

		g.Update(g.time.Now())
		g.Draw()

		if g.capped {
			g.limiter.Wait(ctx, g.frame)
		}
	}

	g.log.WithField("frames", g.frames).Info("frame loop stopped")
	return nil
}
