package enemy

import (
	"math/rand"
	"time"

	"darkmaze/pkg/engine/world"
)

// Pack is the set of enemies living in one level.
type Pack struct {
	enemies []*Enemy
}

// Spawn creates one idle enemy at the centre of each spawn cell.
func Spawn(spawns []world.Coord, scale float64, tuning Tuning, rng *rand.Rand) *Pack {
	p := &Pack{enemies: make([]*Enemy, 0, len(spawns))}
	for _, c := range spawns {
		p.enemies = append(p.enemies, New(world.CellCenter(c, scale), tuning, rng))
	}
	return p
}

// Enemies returns the enemies in spawn order.
func (p *Pack) Enemies() []*Enemy {
	return p.enemies
}

// Len returns the number of enemies.
func (p *Pack) Len() int {
	return len(p.enemies)
}

// SetListener installs l on every enemy.
func (p *Pack) SetListener(l Listener) {
	for _, e := range p.enemies {
		e.SetListener(l)
	}
}

// Update advances every enemy by one tick.
func (p *Pack) Update(dt time.Duration, player world.Vec2, senses Senses) {
	for _, e := range p.enemies {
		e.Update(dt, player, senses)
	}
}

// CountIn returns how many enemies are currently in state s.
func (p *Pack) CountIn(s State) int {
	n := 0
	for _, e := range p.enemies {
		if e.state == s {
			n++
		}
	}
	return n
}
