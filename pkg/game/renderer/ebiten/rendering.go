package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/enemy"
	"darkmaze/pkg/game/i18n"
	"darkmaze/pkg/game/session"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.session == nil {
		return
	}

	e.drawMap(screen)
	e.drawActors(screen)
	e.drawHUD(screen)
}

// cellRect returns the top-left pixel and size of a grid cell.
func (e *EbitenRenderer) cellRect(c world.Coord) (x, y, size float32) {
	size = float32(e.tileSize)
	return float32(c.X) * size, hudHeight + float32(c.Y)*size, size
}

// worldToScreen maps a world position to pixels. Cell centres sit at
// multiples of the scale.
func (e *EbitenRenderer) worldToScreen(v world.Vec2) (x, y float32) {
	ts := float64(e.tileSize)
	scale := e.session.Scale()
	return float32(v.X/scale*ts + ts/2), float32(hudHeight + v.Y/scale*ts + ts/2)
}

func (e *EbitenRenderer) drawMap(screen *ebiten.Image) {
	s := e.session
	s.Grid().ForEachCell(func(c world.Coord, tag world.Tag) {
		x, y, size := e.cellRect(c)
		if !s.Explored(c) {
			return
		}

		var fill color.Color = colorFloor
		switch tag {
		case world.Wall:
			fill = colorWallBg
		case world.PlayerStart:
			fill = colorStart
		case world.Exit:
			if s.KeysRemaining() > 0 {
				fill = colorExitLocked
			} else {
				fill = e.getPulsingExitColor()
			}
		}
		vector.DrawFilledRect(screen, x, y, size, size, fill, false)

		if s.HasKey(c) {
			inset := size / 4
			vector.DrawFilledRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, colorKeycard, false)
		}
		if !s.Visible(c) {
			vector.DrawFilledRect(screen, x, y, size, size, colorFog, false)
		}
	})
}

func (e *EbitenRenderer) drawActors(screen *ebiten.Image) {
	s := e.session
	r := float32(e.tileSize) * 0.35

	for _, en := range s.Enemies().Enemies() {
		if !s.Visible(world.CellOf(en.Position, s.Scale())) {
			continue
		}
		x, y := e.worldToScreen(en.Position)
		vector.DrawFilledCircle(screen, x, y, r, enemyColor(en), true)
	}

	x, y := e.worldToScreen(s.Player)
	vector.DrawFilledCircle(screen, x, y, r, colorPlayer, true)
}

func enemyColor(en *enemy.Enemy) color.Color {
	switch {
	case en.Attacking():
		return colorEnemyAttack
	case en.State() == enemy.Chase:
		return colorEnemyChase
	default:
		return colorEnemyIdle
	}
}

func (e *EbitenRenderer) drawHUD(screen *ebiten.Image) {
	s := e.session
	vector.DrawFilledRect(screen, 0, 0, float32(e.windowWidth), hudHeight, colorPanel, false)

	pack := s.Enemies()
	status := i18n.T("HUD_STATUS",
		s.TotalKeys()-s.KeysRemaining(), s.TotalKeys(),
		pack.CountIn(enemy.Idle), pack.CountIn(enemy.Chase), pack.CountIn(enemy.Attack))

	ebitenutil.DebugPrintAt(screen, e.header[0]+"  "+e.header[1], 4, 2)
	ebitenutil.DebugPrintAt(screen, status, 4, 18)
	ebitenutil.DebugPrintAt(screen, e.statusLine(), 4, 34)
	e.drawStamina(screen)
}

// statusLine picks the third HUD line: what to do after escaping, the
// latest message, or the key help.
func (e *EbitenRenderer) statusLine() string {
	s := e.session
	switch {
	case s.Escaped() && config.IsFinalLevel(e.frame.Level):
		return i18n.T("RUN_COMPLETE", config.TotalLevels)
	case s.Escaped() && e.opts.Advance != nil:
		return i18n.T("NEXT_LEVEL_HINT", config.NextLevel(e.frame.Level))
	case s.Message() != "":
		return s.Message()
	default:
		return i18n.T("HUD_HELP")
	}
}

// drawStamina draws the sprint reserve as a bar under the status text, with
// a lamp next to it while the torch is lit.
func (e *EbitenRenderer) drawStamina(screen *ebiten.Image) {
	s := e.session
	const x, y, w, h = 4, 54, 120, 6
	vector.DrawFilledRect(screen, x, y, w, h, colorWallBg, false)
	fill := float32(s.Stamina() / session.MaxStamina * w)
	bar := colorStamina
	if s.Sprinting() {
		bar = colorStaminaDrain
	}
	vector.DrawFilledRect(screen, x, y, fill, h, bar, false)

	lamp := colorWallBg
	if s.FlashlightOn() {
		lamp = colorTorch
	}
	vector.DrawFilledCircle(screen, x+w+10, y+h/2, h, lamp, true)
}
