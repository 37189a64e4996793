// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/level"
)

// DefaultDumpFilename is used when no dump path is given.
const DefaultDumpFilename = "level.txt"

// Meta carries the run details the generator does not track itself.
type Meta struct {
	Level int
	Seed  int64
}

// WriteLevelDump writes a debug dump of a generated level: metadata, legend,
// map, spawn lists and placement shortfall. Format is human- and
// LLM-readable (sections, key: value, consistent structure).
func WriteLevelDump(w io.Writer, gen *level.Generator, meta Meta) error {
	if gen == nil || !gen.Generated() {
		return errors.New("level has not been generated")
	}
	grid := gen.Grid()
	start := gen.PlayerStart()
	bw := bufio.NewWriter(w)

	// --- Metadata ---
	fmt.Fprintln(bw, "=== LEVEL DUMP (maze layout and spawns) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "level: %d\n", meta.Level)
	fmt.Fprintf(bw, "seed: %d\n", meta.Seed)
	fmt.Fprintf(bw, "width: %d\n", grid.Width())
	fmt.Fprintf(bw, "height: %d\n", grid.Height())
	fmt.Fprintf(bw, "generator: %s\n", gen.Algorithm())
	fmt.Fprintf(bw, "policy: %v\n", gen.Policy())
	fmt.Fprintln(bw, "coordinate_system: x,y (0-based, x=column, y=row)")
	fmt.Fprintf(bw, "start_cell: %d,%d\n", start.X, start.Y)
	if exit, ok := gen.Exit(); ok {
		fmt.Fprintf(bw, "exit_cell: %d,%d\n", exit.X, exit.Y)
	} else {
		fmt.Fprintln(bw, "exit_cell: none")
	}
	fmt.Fprintf(bw, "maze_nodes: %d\n", generator.LatticeNodes(grid.Width(), grid.Height()))
	fmt.Fprintf(bw, "walkable_cells: %d\n", grid.Walkable())
	special := 0
	grid.ForEachCell(func(_ world.Coord, t world.Tag) {
		if t.IsSpecial() {
			special++
		}
	})
	fmt.Fprintf(bw, "special_cells: %d\n", special)
	if err := grid.Validate(start); err != nil {
		fmt.Fprintf(bw, "valid: false (%v)\n", err)
	} else {
		fmt.Fprintln(bw, "valid: true")
	}
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (cell symbols) ---")
	for i, tag := range world.AllTags() {
		if i > 0 {
			fmt.Fprint(bw, "  ")
		}
		fmt.Fprintf(bw, "%q = %s", tag.Rune(), tag)
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "")

	// --- Map ---
	fmt.Fprintln(bw, "--- Map ---")
	fmt.Fprint(bw, grid.String())
	fmt.Fprintln(bw, "")

	// --- Spawns ---
	fmt.Fprintln(bw, "--- Spawns (x,y and Manhattan distance from start) ---")
	writeSpawns(bw, "Keys", gen.KeySpawns(), start)
	writeSpawns(bw, "Enemies", gen.EnemySpawns(), start)

	// --- Shortfall ---
	short := gen.Shortfall()
	fmt.Fprintln(bw, "--- Shortfall (requested but not placed) ---")
	fmt.Fprintf(bw, "keys: %d\n", short.Keys)
	fmt.Fprintf(bw, "enemies: %d\n", short.Enemies)

	return bw.Flush()
}

func writeSpawns(w io.Writer, label string, cells []world.Coord, start world.Coord) {
	fmt.Fprintf(w, "%s (%d):\n", label, len(cells))
	for _, c := range cells {
		fmt.Fprintf(w, "  x: %d y: %d distance: %d\n", c.X, c.Y, c.Manhattan(start))
	}
	fmt.Fprintln(w, "")
}

// DumpLevelToFile writes the level dump to path (DefaultDumpFilename if
// empty) and returns the absolute path written.
func DumpLevelToFile(path string, gen *level.Generator, meta Meta) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteLevelDump(f, gen, meta); err != nil {
		return "", err
	}
	return absPath, f.Close()
}
