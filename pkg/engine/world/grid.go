package world

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Grid represents the level map as a row-major array of cell tags.
type Grid struct {
	cells  [][]Tag
	width  int
	height int
}

// NewGrid creates a new all-Wall grid with the given dimensions.
// Panics if either dimension is not positive.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build (re)initializes the grid with the given dimensions, all cells Wall.
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([][]Tag, height)
	for y := range g.cells {
		g.cells[y] = make([]Tag, width)
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsPlayablePosition checks if a position is strictly inside the 1-cell wall border.
func (g *Grid) IsPlayablePosition(c Coord) bool {
	return c.X >= 1 && c.X < g.width-1 && c.Y >= 1 && c.Y < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(c Coord) bool {
	return g.IsValidPosition(c) && !g.IsPlayablePosition(c)
}

// At returns the tag at c. Out-of-bounds positions read as Wall.
func (g *Grid) At(c Coord) Tag {
	if !g.IsValidPosition(c) {
		return Wall
	}
	return g.cells[c.Y][c.X]
}

// Set replaces the tag at c. Returns false if out of bounds.
func (g *Grid) Set(c Coord, t Tag) bool {
	if !g.IsValidPosition(c) {
		return false
	}
	g.cells[c.Y][c.X] = t
	return true
}

// Fill overwrites every cell with t.
func (g *Grid) Fill(t Tag) {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = t
		}
	}
}

// ForEachCell iterates row by row, calling fn for every cell.
func (g *Grid) ForEachCell(fn func(c Coord, t Tag)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Coord{X: x, Y: y}, g.cells[y][x])
		}
	}
}

// Find returns every coordinate tagged t, in row-major order.
func (g *Grid) Find(t Tag) []Coord {
	var out []Coord
	g.ForEachCell(func(c Coord, tag Tag) {
		if tag == t {
			out = append(out, c)
		}
	})
	return out
}

// Count returns the number of cells tagged t.
func (g *Grid) Count(t Tag) int {
	n := 0
	g.ForEachCell(func(_ Coord, tag Tag) {
		if tag == t {
			n++
		}
	})
	return n
}

// Walkable returns the number of non-Wall cells.
func (g *Grid) Walkable() int {
	return g.width*g.height - g.Count(Wall)
}

// Neighbors returns the walkable cells orthogonally adjacent to c.
func (g *Grid) Neighbors(c Coord) []Coord {
	var out []Coord
	for _, dir := range AllDirections() {
		n := dir.Step(c, 1)
		if g.At(n).IsWalkable() {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	for y := range g.cells {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Reachable returns every walkable cell connected to start through walkable cells.
func (g *Grid) Reachable(start Coord) mapset.Set[Coord] {
	visited := mapset.New[Coord]()
	if !g.At(start).IsWalkable() {
		return visited
	}

	queue := []Coord{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range g.Neighbors(current) {
			if !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return visited
}

// Edges counts adjacent pairs of walkable cells.
func (g *Grid) Edges() int {
	n := 0
	g.ForEachCell(func(c Coord, t Tag) {
		if !t.IsWalkable() {
			return
		}
		if g.At(c.Add(1, 0)).IsWalkable() {
			n++
		}
		if g.At(c.Add(0, 1)).IsWalkable() {
			n++
		}
	})
	return n
}

// Validate checks the structural invariants of a finished maze: a solid border,
// start tagged exactly once at the given position, and walkable cells forming
// a single tree reachable from start.
func (g *Grid) Validate(start Coord) error {
	if g.width <= 0 || g.height <= 0 {
		return fmt.Errorf("grid has invalid dimensions %dx%d", g.width, g.height)
	}

	var breach []Coord
	g.ForEachCell(func(c Coord, t Tag) {
		if g.IsOnPerimeter(c) && t != Wall {
			breach = append(breach, c)
		}
	})
	if len(breach) > 0 {
		return fmt.Errorf("border is not solid at %v", breach)
	}

	if g.At(start) != PlayerStart {
		return fmt.Errorf("start %v is tagged %v, want %v", start, g.At(start), PlayerStart)
	}
	if starts := g.Find(PlayerStart); len(starts) != 1 {
		return fmt.Errorf("found %v cells at %v, want 1", PlayerStart, starts)
	}

	walkable := g.Walkable()
	if reached := g.Reachable(start).Size(); reached != walkable {
		return fmt.Errorf("%d of %d walkable cells reachable from %v", reached, walkable, start)
	}
	if edges := g.Edges(); edges != walkable-1 {
		return fmt.Errorf("walkable graph has %d edges for %d cells, want a tree", edges, walkable)
	}

	return nil
}

// String renders the grid using each tag's debug rune, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for _, row := range g.cells {
		for _, t := range row {
			sb.WriteRune(t.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
