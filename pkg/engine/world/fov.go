package world

// CalculateFOV returns the cells visible from center within radius.
// Uses a Chebyshev square with Bresenham line-of-sight; walls block vision
// but are themselves visible. Results are in row-major order.
func CalculateFOV(grid *Grid, center Coord, radius int) []Coord {
	if grid == nil || !grid.IsValidPosition(center) {
		return nil
	}

	var visible []Coord
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			c := center.Add(dx, dy)
			if !grid.IsValidPosition(c) {
				continue
			}
			if traceLine(grid, center, c, true) {
				visible = append(visible, c)
			}
		}
	}
	return visible
}

// LineOfSight returns true if every cell on the Bresenham line from a to b,
// including b itself, is walkable.
func LineOfSight(grid *Grid, a, b Coord) bool {
	if grid == nil {
		return false
	}
	return traceLine(grid, a, b, false)
}

// traceLine walks the Bresenham line from a to b. When allowOpaqueTarget is
// set, the final cell may be a wall (it is seen, just not seen through).
func traceLine(grid *Grid, a, b Coord, allowOpaqueTarget bool) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y

	if dx == 0 && dy == 0 {
		return true
	}

	absDx, absDy := abs(dx), abs(dy)
	stepX, stepY := sign(dx), sign(dy)

	x, y := a.X, a.Y

	blocked := func() bool {
		c := Coord{X: x, Y: y}
		if !grid.IsValidPosition(c) {
			return true
		}
		if c == b && allowOpaqueTarget {
			return false
		}
		return !grid.At(c).IsWalkable()
	}

	if absDx >= absDy {
		// Step along columns
		err := 2*absDy - absDx
		for x != b.X {
			x += stepX
			if err > 0 {
				y += stepY
				err -= 2 * absDx
			}
			err += 2 * absDy
			if blocked() {
				return false
			}
		}
	} else {
		// Step along rows
		err := 2*absDx - absDy
		for y != b.Y {
			y += stepY
			if err > 0 {
				x += stepX
				err -= 2 * absDy
			}
			err += 2 * absDx
			if blocked() {
				return false
			}
		}
	}

	return true
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
