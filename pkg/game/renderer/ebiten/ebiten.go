package ebiten

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"darkmaze/pkg/game/i18n"
	"darkmaze/pkg/game/layout"
	"darkmaze/pkg/game/renderer"
	"darkmaze/pkg/game/session"
)

// New creates a new Ebiten preview renderer
func New(opts Options) *EbitenRenderer {
	if opts.Scale <= 0 {
		opts.Scale = layout.DefaultScale
	}
	if opts.TileSize <= 0 {
		opts.TileSize = defaultTileSize
	}
	return &EbitenRenderer{
		opts:     opts,
		tileSize: opts.TileSize,
	}
}

// Name implements renderer.Renderer.
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Render opens the preview window and blocks until it is closed.
func (e *EbitenRenderer) Render(f renderer.Frame) error {
	if err := e.start(f); err != nil {
		return err
	}
	s := e.session

	grid := s.Grid()
	e.windowWidth = grid.Width() * e.tileSize
	e.windowHeight = grid.Height()*e.tileSize + hudHeight

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("Opening preview window for %dx%d level (%d enemies)", grid.Width(), grid.Height(), s.Enemies().Len())
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	s = e.session
	log.Printf("Preview closed on level %d after %v: hits=%d escaped=%v", e.frame.Level, s.Elapsed(), s.Hits(), s.Escaped())
	return nil
}

// start builds a fresh session for f.
func (e *EbitenRenderer) start(f renderer.Frame) error {
	if err := f.Check(); err != nil {
		return err
	}
	rng := e.opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(f.Seed))
	}
	s, err := session.New(f.Gen, e.opts.Scale, e.opts.Tuning, rng, log.Default())
	if err != nil {
		return err
	}
	e.frame = f
	e.session = s
	e.header = renderer.Header(f)
	e.escapeLogged = false
	ebiten.SetWindowTitle(fmt.Sprintf("%s - %s", i18n.T("APP_TITLE"), i18n.T("LEVEL_TITLE", f.Level)))
	return nil
}
