package placement

import "darkmaze/pkg/engine/world"

// candidatePool is an ordered list of free floor cells with their Manhattan
// distance from the start. Removal keeps the remaining order stable so draws
// stay reproducible for a given seed.
type candidatePool struct {
	cells []world.Coord
	dist  []int
}

// collectFloor gathers interior Floor cells in row-major order.
func collectFloor(grid *world.Grid, start world.Coord) *candidatePool {
	pool := &candidatePool{}
	grid.ForEachCell(func(c world.Coord, t world.Tag) {
		if t != world.Floor || !grid.IsPlayablePosition(c) {
			return
		}
		pool.cells = append(pool.cells, c)
		pool.dist = append(pool.dist, c.Manhattan(start))
	})
	return pool
}

func (p *candidatePool) len() int {
	return len(p.cells)
}

// keep drops every candidate whose distance fails pred.
func (p *candidatePool) keep(pred func(dist int) bool) {
	cells := p.cells[:0]
	dist := p.dist[:0]
	for i, c := range p.cells {
		if pred(p.dist[i]) {
			cells = append(cells, c)
			dist = append(dist, p.dist[i])
		}
	}
	p.cells = cells
	p.dist = dist
}

// farthest returns the index of the first candidate with the largest distance.
// The pool must not be empty.
func (p *candidatePool) farthest() int {
	best := 0
	for i := 1; i < len(p.dist); i++ {
		if p.dist[i] > p.dist[best] {
			best = i
		}
	}
	return best
}

// take removes and returns the candidate at index i.
func (p *candidatePool) take(i int) world.Coord {
	c := p.cells[i]
	p.cells = append(p.cells[:i], p.cells[i+1:]...)
	p.dist = append(p.dist[:i], p.dist[i+1:]...)
	return c
}
