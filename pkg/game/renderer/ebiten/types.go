// Package ebiten provides an Ebiten preview window that plays a generated
// level: the player walks the maze while the enemy pack hunts them.
package ebiten

import (
	"math/rand"

	"darkmaze/pkg/game/enemy"
	"darkmaze/pkg/game/renderer"
	"darkmaze/pkg/game/session"
)

// Options configures the preview window.
type Options struct {
	// Scale is the world size of one grid cell.
	Scale float64
	// Tuning drives the enemy pack.
	Tuning enemy.Tuning
	// Rand seeds enemy wandering. A source built from the frame seed is used
	// if nil.
	Rand *rand.Rand
	// TileSize is the on-screen size of one cell in pixels.
	TileSize int
	// Advance generates the given level when the player escapes and asks to
	// go on. Nil keeps the window on the first level.
	Advance func(level int) (renderer.Frame, error)
}

// EbitenRenderer is the Ebiten-based preview renderer
type EbitenRenderer struct {
	opts Options

	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering (adjustable with +/-)
	tileSize int

	frame   renderer.Frame
	session *session.Session
	header  []string

	windowOpenedLogged bool
	escapeLogged       bool
}
