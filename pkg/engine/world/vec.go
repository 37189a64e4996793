package world

import "math"

// Vec2 is a continuous position on the ground plane. X follows grid columns,
// Y follows grid rows, both in world units.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Heading returns the angle of v in radians, measured from +X towards +Y.
func (v Vec2) Heading() float64 { return math.Atan2(v.Y, v.X) }

// Forward returns the unit vector pointing along heading.
func Forward(heading float64) Vec2 {
	return Vec2{X: math.Cos(heading), Y: math.Sin(heading)}
}

// CellOf returns the grid cell containing v when each cell spans scale units
// centred on its integer coordinate.
func CellOf(v Vec2, scale float64) Coord {
	return Coord{
		X: int(math.Floor(v.X/scale + 0.5)),
		Y: int(math.Floor(v.Y/scale + 0.5)),
	}
}

// CellCenter returns the world position of the centre of c.
func CellCenter(c Coord, scale float64) Vec2 {
	return Vec2{X: float64(c.X) * scale, Y: float64(c.Y) * scale}
}
