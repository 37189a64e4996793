// Package layout converts a finished maze grid into world-space placements
// that a 3D host instantiates as scene objects.
package layout

import (
	"errors"
	"fmt"

	"darkmaze/pkg/engine/world"
)

// ErrInvalidScale is returned for a non-positive cell size.
var ErrInvalidScale = errors.New("cell scale must be positive")

// DefaultScale is the world size of one grid cell.
const DefaultScale = 4

// Spawn heights above the floor plane.
const (
	PlayerHeight = 2
	ActorHeight  = 1
)

// Vec3 is a world-space point or size. Y is up; X and Z follow grid columns
// and rows.
type Vec3 struct {
	X, Y, Z float64
}

// Block is an axis-aligned box centred on Position.
type Block struct {
	Cell     world.Coord
	Position Vec3
	Size     Vec3
}

// Scene lists everything the host needs to build a level.
type Scene struct {
	Scale    float64
	Walls    []Block
	Floors   []Block
	Ceilings []Block

	Player  Vec3
	Enemies []Vec3
	Keys    []Vec3
	Exit    *Vec3
}

// Build lays out grid with each cell spanning scale units. Every cell gets a
// floor and a ceiling tile; wall cells also get a block twice as tall as wide.
func Build(grid *world.Grid, scale float64) (*Scene, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	if grid == nil {
		return nil, fmt.Errorf("layout: nil grid")
	}

	s := &Scene{Scale: scale}
	grid.ForEachCell(func(c world.Coord, t world.Tag) {
		x, z := float64(c.X)*scale, float64(c.Y)*scale

		s.Floors = append(s.Floors, Block{Cell: c, Position: Vec3{x, 0, z}, Size: Vec3{scale, 1, scale}})
		s.Ceilings = append(s.Ceilings, Block{Cell: c, Position: Vec3{x, scale * 2, z}, Size: Vec3{scale, 1, scale}})

		switch t {
		case world.Wall:
			s.Walls = append(s.Walls, Block{Cell: c, Position: Vec3{x, scale, z}, Size: Vec3{scale, scale * 2, scale}})
		case world.PlayerStart:
			s.Player = Vec3{x, PlayerHeight, z}
		case world.EnemySpawn:
			s.Enemies = append(s.Enemies, Vec3{x, ActorHeight, z})
		case world.Key:
			s.Keys = append(s.Keys, Vec3{x, ActorHeight, z})
		case world.Exit:
			exit := Vec3{x, ActorHeight, z}
			s.Exit = &exit
		}
	})

	return s, nil
}

// Ground drops the height component, giving the position the enemy FSM uses.
func (v Vec3) Ground() world.Vec2 {
	return world.Vec2{X: v.X, Y: v.Z}
}
