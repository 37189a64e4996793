package ebiten

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/game/config"
)

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Preview window opened successfully (%dx%d)", w, h)
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch input.MapCode(k.String()) {
		case input.ActionQuit:
			return ebiten.Termination
		case input.ActionZoomIn:
			e.setTileSize(e.tileSize + tileSizeStep)
		case input.ActionZoomOut:
			e.setTileSize(e.tileSize - tileSizeStep)
		case input.ActionZoomReset:
			e.setTileSize(e.opts.TileSize)
		case input.ActionFlashlight:
			e.session.ToggleFlashlight()
		case input.ActionNextLevel:
			if err := e.advance(); err != nil {
				return err
			}
		}
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	dx, dy, sprint := movementInput()
	e.session.Move(dx, dy, dt, sprint)
	e.session.Tick(dt)

	if e.session.Escaped() && !e.escapeLogged {
		e.escapeLogged = true
		log.Printf("Player escaped level %d", e.frame.Level)
	}
	return nil
}

// advance replaces the session with the next level once the current one is
// escaped. It does nothing on the final level or without an Advance hook.
func (e *EbitenRenderer) advance() error {
	if !e.session.Escaped() || e.opts.Advance == nil || config.IsFinalLevel(e.frame.Level) {
		return nil
	}
	next := config.NextLevel(e.frame.Level)
	f, err := e.opts.Advance(next)
	if err != nil {
		return fmt.Errorf("level %d: %w", next, err)
	}
	if err := e.start(f); err != nil {
		return err
	}
	log.Printf("Advanced to level %d", next)
	return nil
}

// movementInput returns the held movement direction in grid axes and
// whether sprint is held.
func movementInput() (dx, dy float64, sprint bool) {
	keys := ebiten.AppendPressedKeys(nil)
	held := make([]string, 0, len(keys))
	for _, k := range keys {
		held = append(held, k.String())
	}
	dx, dy = input.Movement(held)
	return dx, dy, input.Held(held, input.ActionSprint)
}

func (e *EbitenRenderer) setTileSize(size int) {
	if size < minTileSize {
		size = minTileSize
	}
	if size > maxTileSize {
		size = maxTileSize
	}
	e.tileSize = size
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
