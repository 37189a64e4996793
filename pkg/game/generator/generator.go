// Package generator carves maze layouts into world grids.
package generator

import (
	"math/rand"

	"darkmaze/pkg/engine/world"
)

// GridGenerator is an interface for maze carving algorithms
type GridGenerator interface {
	// Carve resets grid to Wall and carves a maze rooted at start using rng
	// as the only source of randomness.
	Carve(grid *world.Grid, start world.Coord, rng *rand.Rand) error
	Name() string
}

// Available generators
var (
	Backtracker = &BacktrackerGenerator{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = Backtracker

// LatticeNodes returns how many maze nodes (odd,odd cells strictly inside the
// border) a width x height grid holds.
func LatticeNodes(width, height int) int {
	if width < 3 || height < 3 {
		return 0
	}
	return ((width - 1) / 2) * ((height - 1) / 2)
}
