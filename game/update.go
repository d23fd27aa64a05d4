package game

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/dotlab/actor"
	"github.com/lixenwraith/dotlab/input"
)

// Update advances one frame at now: key expiry, velocity, movement
func (g *Game) Update(now time.Time) []actor.Outcome {
	for _, k := range g.held.Expire(now, g.opts.KeyTimeout) {
		g.dispatch(input.Release(k))
	}

	if g.opts.InputMode == input.ModeHeld {
		for _, p := range g.scene.Players {
			p.Actor.ApplyHeld(g.held, p.Binding)
		}
	}

	outcomes := g.scene.Step()
	for i, out := range outcomes {
		blocked := out.Blocked()
		// Sound once when a player first runs into something, not every frame it stays stuck
		if blocked && !g.blocked[i] {
			g.sound.PlayBump()
			a := g.scene.Players[i].Actor
			g.log.WithFields(logrus.Fields{
				"player": i,
				"x":      a.X(),
				"y":      a.Y(),
				"rbx":    out.RolledBackX,
				"rby":    out.RolledBackY,
			}).Trace("move rolled back")
		}
		g.blocked[i] = blocked
	}

	g.frames++
	return outcomes
}
