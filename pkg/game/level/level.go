// Package level builds complete maze levels: it owns the grid, runs the maze
// carver and the placement planner, and exposes the finished spawn lists.
package level

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/placement"
)

// Default dimensions used when no size is configured.
const (
	DefaultWidth  = 21
	DefaultHeight = 21
)

// MinDimension is the smallest odd size with a border and one maze node.
const MinDimension = 3

var (
	// ErrInvalidDimension is returned for sizes that cannot hold a maze.
	ErrInvalidDimension = errors.New("invalid maze dimension")
	// ErrAlreadyGenerated is returned when Generate is called twice.
	ErrAlreadyGenerated = errors.New("level already generated")
	// ErrDegenerateExit is returned when no floor cell can hold the exit.
	ErrDegenerateExit = placement.ErrDegenerateExit
)

// StartPosition is where the player always begins.
var StartPosition = world.Coord{X: 1, Y: 1}

// Config describes one level.
type Config struct {
	Width  int
	Height int

	// Seed initializes the random source when Rand is nil.
	Seed int64
	// Rand, if set, is used instead of a source built from Seed.
	Rand *rand.Rand

	Placement placement.Config

	// Generator defaults to generator.DefaultGenerator.
	Generator generator.GridGenerator

	// Logger receives one summary line per generated level. Discarded if nil.
	Logger *log.Logger
}

// DefaultConfig returns a 21x21 level with the simple placement policy.
func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Placement: placement.DefaultConfig(placement.SimpleFarThreshold),
	}
}

// CoerceOdd bumps even sizes up to the next odd number.
func CoerceOdd(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}

// Generator produces a single level. It is not safe for concurrent use;
// independent generators may run in parallel.
type Generator struct {
	width     int
	height    int
	rng       *rand.Rand
	carver    generator.GridGenerator
	planner   *placement.Planner
	logger    *log.Logger
	grid      *world.Grid
	result    placement.Result
	attempted bool
	generated bool
}

// New validates cfg and prepares a generator.
func New(cfg Config) (*Generator, error) {
	width, err := checkDimension("width", cfg.Width)
	if err != nil {
		return nil, err
	}
	height, err := checkDimension("height", cfg.Height)
	if err != nil {
		return nil, err
	}
	if err := cfg.Placement.Validate(); err != nil {
		return nil, fmt.Errorf("placement config: %w", err)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	carver := cfg.Generator
	if carver == nil {
		carver = generator.DefaultGenerator
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Generator{
		width:   width,
		height:  height,
		rng:     rng,
		carver:  carver,
		planner: placement.NewPlanner(cfg.Placement, rng),
		logger:  logger,
		grid:    world.NewGrid(width, height),
	}, nil
}

func checkDimension(name string, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s %d must be positive", ErrInvalidDimension, name, n)
	}
	odd := CoerceOdd(n)
	if odd < MinDimension {
		return 0, fmt.Errorf("%w: %s %d is below the minimum of %d", ErrInvalidDimension, name, n, MinDimension)
	}
	return odd, nil
}

// Generate carves the maze, tags the start and places spawns. It returns a
// copy of the finished grid; the generator keeps its own for later queries.
func (g *Generator) Generate() (*world.Grid, error) {
	if g.attempted {
		return nil, ErrAlreadyGenerated
	}
	g.attempted = true

	if err := g.carver.Carve(g.grid, StartPosition, g.rng); err != nil {
		return nil, fmt.Errorf("%s: %w", g.carver.Name(), err)
	}
	g.grid.Set(StartPosition, world.PlayerStart)

	result, err := g.planner.Place(g.grid, StartPosition)
	if err != nil {
		return nil, fmt.Errorf("placement (%v): %w", g.Policy(), err)
	}
	g.result = result
	g.generated = true

	g.logger.Printf("level %dx%d generated by %s: policy=%v exit=%v keys=%d enemies=%d shortfall=%+v",
		g.width, g.height, g.carver.Name(), g.Policy(), g.exitString(), len(result.Keys), len(result.Enemies), result.Shortfall)

	return g.grid.Clone(), nil
}

func (g *Generator) exitString() string {
	if !g.result.HasExit {
		return "none"
	}
	return g.result.Exit.String()
}

// Algorithm returns the name of the maze carver.
func (g *Generator) Algorithm() string {
	return g.carver.Name()
}

// Generated returns true once Generate has finished without error. A failed
// attempt leaves it false.
func (g *Generator) Generated() bool {
	return g.generated
}

// Width returns the odd-coerced width.
func (g *Generator) Width() int {
	return g.width
}

// Height returns the odd-coerced height.
func (g *Generator) Height() int {
	return g.height
}

// Policy returns the placement policy in use.
func (g *Generator) Policy() placement.Policy {
	return g.planner.Config().Policy
}

// Grid returns a copy of the current grid.
func (g *Generator) Grid() *world.Grid {
	return g.grid.Clone()
}

// PlayerStart returns the player start position.
func (g *Generator) PlayerStart() world.Coord {
	return StartPosition
}

// EnemySpawns returns the enemy spawn cells in placement order.
func (g *Generator) EnemySpawns() []world.Coord {
	return append([]world.Coord(nil), g.result.Enemies...)
}

// KeySpawns returns the key cells in placement order.
func (g *Generator) KeySpawns() []world.Coord {
	return append([]world.Coord(nil), g.result.Keys...)
}

// Exit returns the exit cell and whether one was placed.
func (g *Generator) Exit() (world.Coord, bool) {
	return g.result.Exit, g.result.HasExit
}

// Shortfall reports how many requested keys and enemies were not placed.
func (g *Generator) Shortfall() placement.Shortfall {
	return g.result.Shortfall
}

// RenderASCII returns the debug rendering: '#' wall, ' ' floor, 'P' start,
// 'E' enemy, 'K' key, 'X' exit.
func (g *Generator) RenderASCII() string {
	return g.grid.String()
}
