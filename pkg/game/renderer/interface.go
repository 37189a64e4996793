package renderer

import (
	"errors"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/level"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StylePlayer
	StyleEnemy
	StyleKey
	StyleExit
	StyleTitle
	StyleSubtle
	StyleDenied
)

// TagStyle returns the style used to draw a cell tag.
func TagStyle(t world.Tag) TextStyle {
	switch t {
	case world.Wall:
		return StyleWall
	case world.Floor:
		return StyleFloor
	case world.PlayerStart:
		return StylePlayer
	case world.EnemySpawn:
		return StyleEnemy
	case world.Key:
		return StyleKey
	case world.Exit:
		return StyleExit
	default:
		return StyleNormal
	}
}

// Frame is one generated level plus the run details shown alongside it.
type Frame struct {
	Level int
	Seed  int64
	Gen   *level.Generator
}

// ErrNoLevel is returned when a frame carries no generated level.
var ErrNoLevel = errors.New("frame has no generated level")

// Check returns ErrNoLevel unless the frame can be drawn.
func (f Frame) Check() error {
	if f.Gen == nil || !f.Gen.Generated() {
		return ErrNoLevel
	}
	return nil
}

// Renderer defines the interface for level rendering backends.
// Implementations include plain ASCII, coloured terminal (TUI) and an Ebiten
// preview window.
type Renderer interface {
	// Name identifies the backend on the command line.
	Name() string

	// Render draws the frame. Interactive backends block until closed.
	Render(f Frame) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// RenderFrame draws f with the current renderer
func RenderFrame(f Frame) error {
	if Current == nil {
		return errors.New("no renderer selected")
	}
	return Current.Render(f)
}
