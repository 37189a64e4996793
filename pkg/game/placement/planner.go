package placement

import (
	"errors"
	"math/rand"

	"darkmaze/pkg/engine/world"
)

// ErrDegenerateExit is returned when no floor cell is left to hold the exit.
var ErrDegenerateExit = errors.New("no floor cell available for the exit")

// Shortfall counts requested spawns that could not be placed because the
// candidate pool ran out or draws fell inside the safety radius.
type Shortfall struct {
	Keys    int
	Enemies int
}

// Any returns true if anything requested was left unplaced.
func (s Shortfall) Any() bool {
	return s.Keys > 0 || s.Enemies > 0
}

// Result holds the cells chosen by a placement pass.
type Result struct {
	Exit      world.Coord
	HasExit   bool
	Keys      []world.Coord
	Enemies   []world.Coord
	Shortfall Shortfall
}

// Planner tags spawn cells on a carved grid.
type Planner struct {
	cfg Config
	rng *rand.Rand
}

// NewPlanner creates a planner drawing from rng.
func NewPlanner(cfg Config, rng *rand.Rand) *Planner {
	return &Planner{cfg: cfg, rng: rng}
}

// Config returns the planner configuration.
func (p *Planner) Config() Config {
	return p.cfg
}

// Place tags spawn cells on grid in place. Only cells still tagged Floor are
// candidates, so walls and previously tagged cells are never reused.
func (p *Planner) Place(grid *world.Grid, start world.Coord) (Result, error) {
	if err := p.cfg.Validate(); err != nil {
		return Result{}, err
	}

	pool := collectFloor(grid, start)

	switch p.cfg.Policy {
	case ExitKeyEnemySpread:
		return p.placeSpread(grid, pool)
	default:
		return p.placeSimple(grid, pool), nil
	}
}

// placeSimple scatters enemies on cells beyond FarThreshold.
func (p *Planner) placeSimple(grid *world.Grid, pool *candidatePool) Result {
	var result Result

	pool.keep(func(dist int) bool { return dist > p.cfg.FarThreshold })

	draws := min(p.cfg.EnemyCount, pool.len())
	for i := 0; i < draws; i++ {
		c := pool.take(p.rng.Intn(pool.len()))
		grid.Set(c, world.EnemySpawn)
		result.Enemies = append(result.Enemies, c)
	}

	result.Shortfall.Enemies = p.cfg.EnemyCount - len(result.Enemies)
	return result
}

// placeSpread places the exit, then keys, then enemies from one shared pool.
func (p *Planner) placeSpread(grid *world.Grid, pool *candidatePool) (Result, error) {
	var result Result

	if pool.len() == 0 {
		return result, ErrDegenerateExit
	}

	// Exit: exact farthest cell, first found wins ties
	result.Exit = pool.take(pool.farthest())
	result.HasExit = true
	grid.Set(result.Exit, world.Exit)

	// Keys: farthest cell among a small random sample
	for i := 0; i < p.cfg.KeyCount && pool.len() > 0; i++ {
		sample := p.rng.Perm(pool.len())
		if len(sample) > p.cfg.KeySampleSize {
			sample = sample[:p.cfg.KeySampleSize]
		}
		best := sample[0]
		for _, idx := range sample[1:] {
			if pool.dist[idx] > pool.dist[best] {
				best = idx
			}
		}
		c := pool.take(best)
		grid.Set(c, world.Key)
		result.Keys = append(result.Keys, c)
	}

	// Enemies: one draw each, rejected draws are not retried
	for i := 0; i < p.cfg.EnemyCount && pool.len() > 0; i++ {
		idx := p.rng.Intn(pool.len())
		if pool.dist[idx] <= p.cfg.SafeRadius {
			continue
		}
		c := pool.take(idx)
		grid.Set(c, world.EnemySpawn)
		result.Enemies = append(result.Enemies, c)
	}

	result.Shortfall = Shortfall{
		Keys:    p.cfg.KeyCount - len(result.Keys),
		Enemies: p.cfg.EnemyCount - len(result.Enemies),
	}
	return result, nil
}
