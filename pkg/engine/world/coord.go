package world

import "fmt"

// Coord is an integer grid position. X is the column, Y is the row.
type Coord struct {
	X int
	Y int
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c offset by dx, dy.
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Midpoint returns the cell halfway between c and o.
func (c Coord) Midpoint(o Coord) Coord {
	return Coord{X: (c.X + o.X) / 2, Y: (c.Y + o.Y) / 2}
}

// Manhattan returns |x1-x2| + |y1-y2|.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// IsLatticeNode returns true when both coordinates are odd.
func (c Coord) IsLatticeNode() bool {
	return c.X%2 == 1 && c.Y%2 == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
