package game

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/dotlab/actor"
	"github.com/lixenwraith/dotlab/geom"
	"github.com/lixenwraith/dotlab/input"
	"github.com/lixenwraith/dotlab/world"
)

// ErrUnknownScene is returned for an unrecognized scene name
var ErrUnknownScene = errors.New("unknown scene")

// SceneKind selects one of the demo layouts
type SceneKind uint8

const (
	SceneCircle SceneKind = iota // Circle dot against a box and a still circle
	ScenePixel                   // Two multi-box dots, arrows and WASD
	SceneScroll                  // One dot in a level larger than the screen
	SceneSave                    // Dot whose position and level persist
)

var sceneNames = map[SceneKind]string{
	SceneCircle: "circle",
	ScenePixel:  "pixel",
	SceneScroll: "scroll",
	SceneSave:   "save",
}

func (k SceneKind) String() string {
	if n, ok := sceneNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseSceneKind maps a scene name to its kind
func ParseSceneKind(s string) (SceneKind, error) {
	for k, n := range sceneNames {
		if n == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScene, s)
}

// Scroll level dimensions
const (
	scrollLevelWidth  = 1280
	scrollLevelHeight = 960
)

// Player is an actor steered by one key binding
type Player struct {
	Actor   *actor.Actor
	Binding input.Binding
	Color   world.RGB
}

// Scene is the actors and static geometry for one demo
type Scene struct {
	Kind    SceneKind
	Level   world.Level
	Circles []geom.Circle // Static circular obstacles
	Players []*Player
	Camera  *world.Camera // nil when the level fits the screen
}

// squareProfile is a single-box profile for w x h sprites
func squareProfile(w, h int) actor.Profile {
	return actor.Profile{Width: w, Height: h, Boxes: []actor.Size{{W: w, H: h}}}
}

// Save scene dot size
var saveDotProfile = squareProfile(37, 40)

// NewScene builds the layout for kind
// step > 0 overrides each binding's default velocity step
func NewScene(kind SceneKind, clamp geom.ClampMode, step int) (*Scene, error) {
	pick := func(def int) int {
		if step > 0 {
			return step
		}
		return def
	}

	s := &Scene{Kind: kind}
	screen := world.Level{
		Width:      world.ScreenWidth,
		Height:     world.ScreenHeight,
		Background: world.RGBWhite,
	}

	switch kind {
	case SceneCircle:
		s.Level = screen
		s.Level.Name = "Circle Collision"
		s.Level.Walls = []geom.Rect{{X: 60, Y: 60, W: 20, H: 20}}
		s.Circles = []geom.Circle{{X: 30, Y: 30, R: 10}}
		s.Players = []*Player{{
			Actor:   actor.NewCircle(10, 10, 10),
			Binding: input.ArrowBinding(pick(1)),
			Color:   world.RGBBlue,
		}}

	case ScenePixel:
		s.Level = screen
		s.Level.Name = "Pixel Collision"
		s.Level.Walls = []geom.Rect{{X: 300, Y: 40, W: 40, H: 400}}
		s.Players = []*Player{
			{Actor: actor.NewBoxes(0, 0, actor.DotProfile), Binding: input.ArrowBinding(pick(4)), Color: world.RGBBlue},
			{Actor: actor.NewBoxes(20, 20, actor.DotProfile), Binding: input.WASDBinding(pick(4)), Color: world.RGBRed},
		}

	case SceneScroll:
		s.Level = world.Level{
			Name:       "Scrolling",
			Width:      scrollLevelWidth,
			Height:     scrollLevelHeight,
			Background: world.RGBWhite,
		}
		s.Camera = world.NewCamera(world.ScreenWidth, world.ScreenHeight)
		s.Players = []*Player{{
			Actor:   actor.NewBoxes(0, 0, squareProfile(20, 20)),
			Binding: input.ArrowBinding(pick(10)),
			Color:   world.RGBBlue,
		}}

	case SceneSave:
		s.Level = world.ColorLevels[0]
		// Quarter of the dot per step on each axis
		b := input.ArrowBinding(0).WithSteps(saveDotProfile.Width/4, saveDotProfile.Height/4)
		if step > 0 {
			b = b.WithSteps(step, step)
		}
		s.Players = []*Player{{
			Actor:   actor.NewBoxes(0, 0, saveDotProfile),
			Binding: b,
			Color:   world.RGBBlack,
		}}

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownScene, kind)
	}

	for _, p := range s.Players {
		p.Actor.SetClampMode(clamp)
	}
	s.follow()
	return s, nil
}

// obstaclesFor collects walls, static circles, and every other player
func (s *Scene) obstaclesFor(i int) actor.Obstacles {
	obs := actor.Obstacles{Rects: s.Level.Walls, Circles: s.Circles}
	others := make([]actor.Obstacles, 0, len(s.Players)-1)
	for j, p := range s.Players {
		if j != i {
			others = append(others, p.Actor.Obstacle())
		}
	}
	if len(others) == 0 {
		return obs
	}
	return obs.Merge(others...)
}

// Step moves every player in order; later players see earlier players' new positions
func (s *Scene) Step() []actor.Outcome {
	bounds := s.Level.Bounds()
	out := make([]actor.Outcome, len(s.Players))
	for i, p := range s.Players {
		out[i] = p.Actor.Move(bounds, s.obstaclesFor(i))
	}
	s.follow()
	return out
}

func (s *Scene) follow() {
	if s.Camera != nil && len(s.Players) > 0 {
		s.Camera.Follow(s.Players[0].Actor.Bounds(), s.Level.Width, s.Level.Height)
	}
}

// SetLevel swaps the color level, keeping actors in place
func (s *Scene) SetLevel(l world.Level) {
	s.Level = l
}
