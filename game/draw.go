package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dotlab/actor"
	"github.com/lixenwraith/dotlab/geom"
	"github.com/lixenwraith/dotlab/world"
)

// Pixel size of one terminal cell; 640x480 maps to 80x30 cells
const (
	cellWidth  = 8
	cellHeight = 16
	tileSize   = 80 // Scroll background checker tile
)

func styleFor(bg world.RGB) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
}

// Draw renders the scene and HUD
func (g *Game) Draw() {
	g.screen.Clear()

	// Fixed scenes draw through a camera parked at the origin
	cam := g.scene.Camera
	if cam == nil {
		cam = world.NewCamera(world.ScreenWidth, world.ScreenHeight)
	}

	g.drawBackground(cam)
	for _, w := range g.scene.Level.Walls {
		g.fillRect(cam, w, world.RGBGray)
	}
	for _, c := range g.scene.Circles {
		g.fillCircle(cam, c, world.RGBGray)
	}
	for _, p := range g.scene.Players {
		if cam.Visible(p.Actor.Bounds()) {
			g.drawActor(cam, p)
		}
	}
	g.drawHUD(cam.View)

	g.screen.Show()
}

func (g *Game) drawBackground(cam *world.Camera) {
	view := cam.View
	cols, rows := view.W/cellWidth, view.H/cellHeight
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			bg := g.scene.Level.Background
			if g.scene.Camera != nil {
				// Checker in level space so scrolling is visible
				lx := view.X + cx*cellWidth
				ly := view.Y + cy*cellHeight
				if (lx/tileSize+ly/tileSize)%2 == 1 {
					bg = bg.Blend(world.RGBBlack, 0.15)
				}
			}
			g.screen.SetContent(cx, cy, ' ', nil, styleFor(bg))
		}
	}
}

// cellsOf visits every on-screen cell whose center lies inside view-local rect r
func cellsOf(cols, rows int, r geom.Rect, visit func(cx, cy int)) {
	for cy := max(r.Top()/cellHeight-1, 0); cy <= r.Bottom()/cellHeight && cy < rows; cy++ {
		for cx := max(r.Left()/cellWidth-1, 0); cx <= r.Right()/cellWidth && cx < cols; cx++ {
			px := cx*cellWidth + cellWidth/2
			py := cy*cellHeight + cellHeight/2
			if px >= r.Left() && px < r.Right() && py >= r.Top() && py < r.Bottom() {
				visit(cx, cy)
			}
		}
	}
}

func (g *Game) fillRect(cam *world.Camera, r geom.Rect, color world.RGB) {
	st := styleFor(color)
	local := r.Translate(-cam.View.X, -cam.View.Y)
	cellsOf(cam.View.W/cellWidth, cam.View.H/cellHeight, local, func(cx, cy int) {
		g.screen.SetContent(cx, cy, ' ', nil, st)
	})
}

func (g *Game) fillCircle(cam *world.Camera, c geom.Circle, color world.RGB) {
	st := styleFor(color)
	cols, rows := cam.View.W/cellWidth, cam.View.H/cellHeight
	x, y := cam.ToView(c.X, c.Y)
	local := geom.Circle{X: x, Y: y, R: c.R}

	cellsOf(cols, rows, local.Bounds(), func(cx, cy int) {
		px := cx*cellWidth + cellWidth/2
		py := cy*cellHeight + cellHeight/2
		if geom.Distance(px, py, local.X, local.Y) < float64(local.R) {
			g.screen.SetContent(cx, cy, ' ', nil, st)
		}
	})
	// Small circles can miss every cell center; mark the center cell
	if cx, cy := x/cellWidth, y/cellHeight; x >= 0 && y >= 0 && cx < cols && cy < rows {
		g.screen.SetContent(cx, cy, ' ', nil, st)
	}
}

func (g *Game) drawActor(cam *world.Camera, p *Player) {
	switch sh := p.Actor.Shape().(type) {
	case *actor.CircleShape:
		g.fillCircle(cam, sh.Circle(), p.Color)
	case *actor.BoxShape:
		for _, b := range sh.Boxes() {
			g.fillRect(cam, b, p.Color)
		}
	}
}

func (g *Game) drawHUD(view geom.Rect) {
	row := view.H / cellHeight
	p := g.scene.Players[0].Actor
	vx, vy := p.Velocity()

	capLabel := "off"
	if g.capped {
		capLabel = fmt.Sprintf("%d", g.limiter.FPS())
	}
	timerLabel := "running"
	if g.session.IsPaused() {
		timerLabel = "paused"
	}

	line := fmt.Sprintf(" %s | %s | pos %d,%d vel %d,%d keys %d | fps cap %s | time %.1fs %s | music %s | esc quit",
		g.scene.Kind, g.scene.Level.Name, p.X(), p.Y(), vx, vy, g.held.Len(),
		capLabel, g.session.Ticks().Seconds(), timerLabel, g.sound.MusicState())

	st := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(line) {
		g.screen.SetContent(i, row, r, nil, st)
	}
}
