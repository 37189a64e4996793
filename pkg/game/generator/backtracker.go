package generator

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/stack"

	"darkmaze/pkg/engine/world"
)

// BacktrackerGenerator carves a perfect maze with randomized depth-first
// backtracking on the odd-coordinate lattice. Corridors and walls are exactly
// one cell wide and the carved cells form a spanning tree.
type BacktrackerGenerator struct{}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return "Backtracker"
}

// Carve resets grid and carves from start. start must be a lattice node inside
// the border.
func (g *BacktrackerGenerator) Carve(grid *world.Grid, start world.Coord, rng *rand.Rand) error {
	if grid == nil {
		return fmt.Errorf("carve: nil grid")
	}
	if rng == nil {
		return fmt.Errorf("carve: nil random source")
	}
	if !grid.IsPlayablePosition(start) || !start.IsLatticeNode() {
		return fmt.Errorf("carve: start %v is not a lattice node inside %dx%d", start, grid.Width(), grid.Height())
	}

	grid.Fill(world.Wall)
	grid.Set(start, world.Floor)

	pending := stack.New[world.Coord]()
	pending.Push(start)

	candidates := make([]world.Coord, 0, 4)
	for pending.Size() > 0 {
		current := pending.Peek()

		candidates = candidates[:0]
		for _, dir := range world.AllDirections() {
			next := dir.Step(current, 2)
			// Leave the 1-cell border intact
			if !grid.IsPlayablePosition(next) {
				continue
			}
			if grid.At(next) == world.Wall {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			pending.Pop()
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		grid.Set(current.Midpoint(next), world.Floor)
		grid.Set(next, world.Floor)
		pending.Push(next)
	}

	return nil
}
