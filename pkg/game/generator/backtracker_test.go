// Package generator tests maze carving: perfect-maze shape, solid border,
// lattice alignment and seed determinism.
package generator

import (
	"fmt"
	"math/rand"
	"testing"

	"darkmaze/pkg/engine/world"
)

var start = world.Coord{X: 1, Y: 1}

// carve runs the default generator on a fresh grid and tags the start.
func carve(t *testing.T, width, height int, seed int64) *world.Grid {
	t.Helper()
	grid := world.NewGrid(width, height)
	if err := DefaultGenerator.Carve(grid, start, rand.New(rand.NewSource(seed))); err != nil {
		t.Fatalf("Carve(%dx%d, seed %d): %v", width, height, seed, err)
	}
	grid.Set(start, world.PlayerStart)
	return grid
}

func TestBacktracker_PerfectMaze(t *testing.T) {
	sizes := [][2]int{{3, 3}, {5, 5}, {7, 5}, {21, 21}, {31, 17}}
	for _, size := range sizes {
		for seed := int64(0); seed < 25; seed++ {
			grid := carve(t, size[0], size[1], seed)
			if err := grid.Validate(start); err != nil {
				t.Fatalf("%dx%d seed %d: %v\n%s", size[0], size[1], seed, err, grid)
			}
			nodes := LatticeNodes(size[0], size[1])
			if got, want := grid.Walkable(), 2*nodes-1; got != want {
				t.Errorf("%dx%d seed %d: got %d walkable cells, want %d", size[0], size[1], seed, got, want)
			}
		}
	}
}

func TestBacktracker_LatticeAlignment(t *testing.T) {
	grid := carve(t, 21, 21, 7)
	grid.ForEachCell(func(c world.Coord, tag world.Tag) {
		if !grid.IsPlayablePosition(c) {
			return
		}
		switch {
		case c.IsLatticeNode() && tag == world.Wall:
			t.Errorf("lattice node %v was not carved", c)
		case c.X%2 == 0 && c.Y%2 == 0 && tag != world.Wall:
			t.Errorf("pillar %v was carved", c)
		}
	})
}

func TestBacktracker_SmallestMaze(t *testing.T) {
	grid := carve(t, 3, 3, 1)
	want := "###\n#P#\n###\n"
	if got := grid.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestBacktracker_FiveByFive(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		grid := carve(t, 5, 5, seed)
		for _, node := range []world.Coord{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 3}, {X: 3, Y: 3}} {
			if !grid.At(node).IsWalkable() {
				t.Errorf("seed %d: node %v is a wall\n%s", seed, node, grid)
			}
		}
		if got := grid.Walkable(); got != 7 {
			t.Errorf("seed %d: got %d walkable cells, want 7", seed, got)
		}
		if got := grid.At(world.Coord{X: 2, Y: 2}); got != world.Wall {
			t.Errorf("seed %d: centre pillar is %v", seed, got)
		}
	}
}

func TestBacktracker_Deterministic(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		a := carve(t, 25, 19, seed).String()
		b := carve(t, 25, 19, seed).String()
		if a != b {
			t.Fatalf("seed %d produced different mazes:\n%s\n%s", seed, a, b)
		}
	}
	if carve(t, 25, 19, 1).String() == carve(t, 25, 19, 2).String() {
		t.Error("different seeds produced the same maze")
	}
}

func TestBacktracker_CarveResetsGrid(t *testing.T) {
	grid := world.NewGrid(9, 9)
	grid.Fill(world.Floor)
	if err := Backtracker.Carve(grid, start, rand.New(rand.NewSource(3))); err != nil {
		t.Fatal(err)
	}
	grid.Set(start, world.PlayerStart)
	if err := grid.Validate(start); err != nil {
		t.Errorf("pre-filled grid was not reset: %v", err)
	}
}

func TestBacktracker_RejectsBadInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name  string
		grid  *world.Grid
		start world.Coord
		rng   *rand.Rand
	}{
		{"nil grid", nil, start, rng},
		{"nil rng", world.NewGrid(5, 5), start, nil},
		{"start on border", world.NewGrid(5, 5), world.Coord{X: 0, Y: 1}, rng},
		{"start off lattice", world.NewGrid(5, 5), world.Coord{X: 2, Y: 1}, rng},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Backtracker.Carve(tt.grid, tt.start, tt.rng); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLatticeNodes(t *testing.T) {
	tests := []struct {
		w, h, want int
	}{
		{3, 3, 1},
		{5, 5, 4},
		{21, 21, 100},
		{7, 3, 3},
		{1, 9, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.w, tt.h), func(t *testing.T) {
			if got := LatticeNodes(tt.w, tt.h); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
