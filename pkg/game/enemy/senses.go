package enemy

import (
	"darkmaze/pkg/engine/world"
)

// GridSenses answers sight and collision queries against a maze grid whose
// cells span Scale world units.
type GridSenses struct {
	Grid  *world.Grid
	Scale float64
}

// LineOfSight traces a Bresenham line between the two cells.
func (s GridSenses) LineOfSight(from, to world.Vec2, maxDist float64) bool {
	if from.Dist(to) > maxDist {
		return false
	}
	return world.LineOfSight(s.Grid, world.CellOf(from, s.Scale), world.CellOf(to, s.Scale))
}

// Blocked probes the cell dist units ahead along heading.
func (s GridSenses) Blocked(from world.Vec2, heading, dist float64) bool {
	ahead := from.Add(world.Forward(heading).Scale(dist))
	return !s.Grid.At(world.CellOf(ahead, s.Scale)).IsWalkable()
}
