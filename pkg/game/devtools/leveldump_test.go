package devtools

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"darkmaze/pkg/game/level"
	"darkmaze/pkg/game/placement"
)

func generated(t *testing.T) *level.Generator {
	t.Helper()
	gen, err := level.New(level.Config{
		Width:     15,
		Height:    15,
		Seed:      4,
		Placement: placement.DefaultConfig(placement.ExitKeyEnemySpread),
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gen.Generate(); err != nil {
		t.Fatal(err)
	}
	return gen
}

func TestWriteLevelDump_Sections(t *testing.T) {
	gen := generated(t)
	var buf bytes.Buffer
	if err := WriteLevelDump(&buf, gen, Meta{Level: 2, Seed: 4}); err != nil {
		t.Fatalf("WriteLevelDump: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"--- Metadata ---",
		"level: 2",
		"seed: 4",
		"width: 15",
		"policy: spread",
		"generator: Backtracker",
		"start_cell: 1,1",
		"maze_nodes: 49",
		"valid: true",
		"--- Legend (cell symbols) ---",
		"'#' = Wall",
		"--- Map ---",
		"--- Spawns",
		"Keys (3):",
		"--- Shortfall",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q", want)
		}
	}
	special := 2 + len(gen.KeySpawns()) + len(gen.EnemySpawns()) // start and exit
	if want := fmt.Sprintf("special_cells: %d\n", special); !strings.Contains(out, want) {
		t.Errorf("dump missing %q", want)
	}
	if !strings.Contains(out, gen.RenderASCII()) {
		t.Error("dump does not contain the map")
	}
	exit, _ := gen.Exit()
	if !strings.Contains(out, fmt.Sprintf("exit_cell: %d,%d", exit.X, exit.Y)) {
		t.Errorf("dump does not name exit %v", exit)
	}
}

func TestWriteLevelDump_RequiresGeneratedLevel(t *testing.T) {
	gen, err := level.New(level.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteLevelDump(&bytes.Buffer{}, gen, Meta{}); err == nil {
		t.Error("expected an error for an ungenerated level")
	}

	failed, err := level.New(level.Config{
		Width:     3,
		Height:    3,
		Placement: placement.DefaultConfig(placement.ExitKeyEnemySpread),
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := failed.Generate(); err == nil {
		t.Fatal("3x3 spread level should fail to place an exit")
	}
	if err := WriteLevelDump(&bytes.Buffer{}, failed, Meta{}); err == nil {
		t.Error("expected an error for a level whose generation failed")
	}
}

func TestDumpLevelToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	written, err := DumpLevelToFile(path, generated(t), Meta{Level: 1})
	if err != nil {
		t.Fatalf("DumpLevelToFile: %v", err)
	}
	if written != path {
		t.Errorf("wrote %q, want %q", written, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("=== LEVEL DUMP")) {
		t.Errorf("unexpected dump header: %q", data[:min(len(data), 40)])
	}
}
