// Package session runs a generated level in real time: it moves the player
// with wall collision, ticks the enemy pack and tracks keys and the exit.
// Renderers drive it once per frame.
package session

import (
	"errors"
	"io"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/enemy"
	"darkmaze/pkg/game/i18n"
	"darkmaze/pkg/game/layout"
	"darkmaze/pkg/game/level"
)

// Player controller tuning, in world units and seconds.
const (
	WalkSpeed   = 5.0
	SprintSpeed = 8.0

	MaxStamina   = 100.0
	StaminaDrain = 20.0 // per second of sprinting
	StaminaRegen = 10.0 // per second otherwise

	// FlashlightRange is how far the torch reaches.
	FlashlightRange = 15.0
	// DarkRadius is the sight radius in cells with the torch off.
	DarkRadius = 1
)

// Session is the live state of one level.
type Session struct {
	grid   *world.Grid
	scale  float64
	senses enemy.GridSenses
	pack   *enemy.Pack
	logger *log.Logger

	Player world.Vec2

	stamina    float64
	sprinting  bool
	flashlight bool
	visible    mapset.Set[world.Coord]
	explored   mapset.Set[world.Coord]

	keys      mapset.Set[world.Coord]
	totalKeys int
	exit      world.Coord
	hasExit   bool

	hits     int
	escaped  bool
	atExit   bool
	message  string
	elapsed  time.Duration
	lastCell world.Coord
}

// New starts a session on a generated level.
func New(gen *level.Generator, scale float64, tuning enemy.Tuning, rng *rand.Rand, logger *log.Logger) (*Session, error) {
	if gen == nil || !gen.Generated() {
		return nil, errors.New("level has not been generated")
	}
	grid := gen.Grid()
	scene, err := layout.Build(grid, scale)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	s := &Session{
		grid:       grid,
		scale:      scale,
		senses:     enemy.GridSenses{Grid: grid, Scale: scale},
		pack:       enemy.Spawn(gen.EnemySpawns(), scale, tuning, rng),
		logger:     logger,
		Player:     scene.Player.Ground(),
		keys:       mapset.New[world.Coord](),
		lastCell:   gen.PlayerStart(),
		stamina:    MaxStamina,
		flashlight: true,
		explored:   mapset.New[world.Coord](),
	}
	s.reveal()
	for _, k := range gen.KeySpawns() {
		s.keys.Put(k)
	}
	s.totalKeys = s.keys.Size()
	s.exit, s.hasExit = gen.Exit()
	s.logger.Printf("session started: %d wall blocks, %d keys, %d enemies", len(scene.Walls), s.totalKeys, s.pack.Len())

	s.pack.SetListener(enemy.ListenerFuncs{
		StateChange: func(e *enemy.Enemy, from, to enemy.State) {
			s.logger.Printf("enemy %s: %v -> %v at %v", e.ID, from, to, world.CellOf(e.Position, s.scale))
		},
		Attack: s.onAttack,
	})
	return s, nil
}

func (s *Session) onAttack(e *enemy.Enemy) {
	if e.Position.Dist(s.Player) > e.Tuning().AttackRange {
		return
	}
	s.hits++
	s.message = i18n.T("PLAYER_HIT", s.hits)
	s.logger.Printf("player hit by %s (%d)", e.ID, s.hits)
}

// Grid returns the level grid. Callers must not modify it.
func (s *Session) Grid() *world.Grid {
	return s.grid
}

// Scale returns the world size of one cell.
func (s *Session) Scale() float64 {
	return s.scale
}

// Enemies returns the live enemy pack.
func (s *Session) Enemies() *enemy.Pack {
	return s.pack
}

// PlayerCell returns the cell the player stands in.
func (s *Session) PlayerCell() world.Coord {
	return world.CellOf(s.Player, s.scale)
}

// KeysRemaining returns the number of keys not yet collected.
func (s *Session) KeysRemaining() int {
	return s.keys.Size()
}

// TotalKeys returns the number of keys in the level.
func (s *Session) TotalKeys() int {
	return s.totalKeys
}

// HasKey reports whether an uncollected key lies at c.
func (s *Session) HasKey(c world.Coord) bool {
	return s.keys.Has(c)
}

// Exit returns the exit cell, if the level has one.
func (s *Session) Exit() (world.Coord, bool) {
	return s.exit, s.hasExit
}

// Hits returns how many attacks have landed on the player.
func (s *Session) Hits() int {
	return s.hits
}

// Escaped returns true once the player reached the exit holding every key.
func (s *Session) Escaped() bool {
	return s.escaped
}

// Message returns the latest status line.
func (s *Session) Message() string {
	return s.message
}

// Elapsed returns the simulated time so far.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// Stamina returns the sprint reserve, 0 to MaxStamina.
func (s *Session) Stamina() float64 {
	return s.stamina
}

// Sprinting returns true if the last Move ran at SprintSpeed.
func (s *Session) Sprinting() bool {
	return s.sprinting
}

// FlashlightOn returns true while the torch is lit.
func (s *Session) FlashlightOn() bool {
	return s.flashlight
}

// ToggleFlashlight switches the torch and recomputes what the player sees.
func (s *Session) ToggleFlashlight() {
	s.flashlight = !s.flashlight
	s.reveal()
}

// SightRadius returns how many cells the player can see.
func (s *Session) SightRadius() int {
	if !s.flashlight {
		return DarkRadius
	}
	return int(math.Ceil(FlashlightRange / s.scale))
}

// Visible reports whether c is in the player's current field of view.
func (s *Session) Visible(c world.Coord) bool {
	return s.visible.Has(c)
}

// Explored reports whether c has ever been seen.
func (s *Session) Explored(c world.Coord) bool {
	return s.explored.Has(c)
}

func (s *Session) reveal() {
	s.visible = mapset.New[world.Coord]()
	for _, c := range world.CalculateFOV(s.grid, s.PlayerCell(), s.SightRadius()) {
		s.visible.Put(c)
		s.explored.Put(c)
	}
}

// Move walks the player along (dx, dy) for dt. Sprinting needs stamina and
// movement; it drains the reserve, anything else refills it. Each axis is
// resolved on its own so the player slides along walls instead of sticking.
func (s *Session) Move(dx, dy float64, dt time.Duration, sprint bool) {
	if s.escaped {
		return
	}
	dir := world.Vec2{X: dx, Y: dy}
	moving := dir.Len() > 0

	speed := WalkSpeed
	s.sprinting = sprint && moving && s.stamina > 0
	if s.sprinting {
		speed = SprintSpeed
		s.stamina -= StaminaDrain * dt.Seconds()
	} else {
		s.stamina += StaminaRegen * dt.Seconds()
	}
	s.stamina = math.Max(0, math.Min(MaxStamina, s.stamina))

	if !moving {
		return
	}
	step := dir.Scale(speed * dt.Seconds() / dir.Len())

	next := world.Vec2{X: s.Player.X + step.X, Y: s.Player.Y}
	if s.walkable(next) {
		s.Player = next
	}
	next = world.Vec2{X: s.Player.X, Y: s.Player.Y + step.Y}
	if s.walkable(next) {
		s.Player = next
	}
	s.enterCell(s.PlayerCell())
}

func (s *Session) walkable(v world.Vec2) bool {
	return s.grid.At(world.CellOf(v, s.scale)).IsWalkable()
}

func (s *Session) enterCell(c world.Coord) {
	if c == s.lastCell {
		return
	}
	s.lastCell = c
	s.reveal()

	if s.keys.Has(c) {
		s.keys.Remove(c)
		s.message = i18n.T("KEY_COLLECTED", s.totalKeys-s.keys.Size(), s.totalKeys)
		s.logger.Printf("key collected at %v, %d remaining", c, s.keys.Size())
	}

	if !s.hasExit || c != s.exit {
		s.atExit = false
		return
	}
	if s.atExit {
		return
	}
	s.atExit = true
	if s.keys.Size() > 0 {
		s.message = i18n.T("EXIT_LOCKED")
		return
	}
	s.escaped = true
	s.message = i18n.T("EXIT_REACHED")
	s.logger.Printf("player escaped after %v with %d hits", s.elapsed, s.hits)
}

// Tick advances the enemies by dt. Enemies that would end a tick inside a
// wall are put back where they were.
func (s *Session) Tick(dt time.Duration) {
	if s.escaped {
		return
	}
	s.elapsed += dt

	enemies := s.pack.Enemies()
	prev := make([]world.Vec2, len(enemies))
	for i, e := range enemies {
		prev[i] = e.Position
	}
	s.pack.Update(dt, s.Player, s.senses)
	for i, e := range enemies {
		if !s.walkable(e.Position) {
			e.Position = prev[i]
		}
	}
}
