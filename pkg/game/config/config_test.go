package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"darkmaze/pkg/game/enemy"
	"darkmaze/pkg/game/level"
	"darkmaze/pkg/game/placement"
)

func TestDefault_MatchesStockSettings(t *testing.T) {
	f := Default()
	if f.Level.Width != level.DefaultWidth || f.Level.Height != level.DefaultHeight {
		t.Errorf("got %dx%d, want %dx%d", f.Level.Width, f.Level.Height, level.DefaultWidth, level.DefaultHeight)
	}
	if f.Tuning() != enemy.DefaultTuning() {
		t.Errorf("got tuning %+v, want %+v", f.Tuning(), enemy.DefaultTuning())
	}
	pc, err := f.Level.Placement()
	if err != nil {
		t.Fatalf("Placement: %v", err)
	}
	if pc != placement.DefaultConfig(placement.SimpleFarThreshold) {
		t.Errorf("got placement %+v, want simple defaults", pc)
	}
}

func TestParse_OverlaysBase(t *testing.T) {
	data := []byte(`
level:
  width: 31
  policy: spread
  keys: 4
  enemies: 7
  key_sample_size: 10
  safe_radius: 6
  seed: 42
enemy:
  sight_range: 20
  attack_cooldown: 1.5s
  lunge_duration: 250ms
`)
	f, err := Parse(data, Default())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if f.Level.Width != 31 || f.Level.Height != level.DefaultHeight {
		t.Errorf("got %dx%d, want 31x%d", f.Level.Width, f.Level.Height, level.DefaultHeight)
	}
	tu := f.Tuning()
	if tu.SightRange != 20 || tu.AttackCooldown != 1500*time.Millisecond || tu.LungeDuration != 250*time.Millisecond {
		t.Errorf("got tuning %+v", tu)
	}
	if tu.Speed != enemy.DefaultTuning().Speed {
		t.Errorf("unset speed changed to %v", tu.Speed)
	}

	lc, err := f.LevelConfig()
	if err != nil {
		t.Fatalf("LevelConfig: %v", err)
	}
	want := placement.Config{
		Policy:        placement.ExitKeyEnemySpread,
		EnemyCount:    7,
		KeyCount:      4,
		KeySampleSize: 10,
		SafeRadius:    6,
	}
	if lc.Placement != want {
		t.Errorf("got placement %+v, want %+v", lc.Placement, want)
	}
	if lc.Seed != 42 || lc.Width != 31 {
		t.Errorf("got level config %+v", lc)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "level:\n  depth: 3\n"},
		{"bad duration", "enemy:\n  attack_cooldown: soon\n"},
		{"wrong type", "level:\n  width: wide\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data), Default()); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParse_EmptyKeepsBase(t *testing.T) {
	f, err := Parse(nil, ForLevel(3))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(f, ForLevel(3)) {
		t.Errorf("empty document changed the settings")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.yaml")
	if err := os.WriteFile(path, []byte("level:\n  height: 15\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path, Default())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Level.Height != 15 {
		t.Errorf("got height %d, want 15", f.Level.Height)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("level: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad, Default()); err == nil || !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("got %v, want an error naming the file", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml"), Default()); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestForLevel_Progression(t *testing.T) {
	first := ForLevel(1)
	if first.Level.Policy != placement.SimpleFarThreshold.String() {
		t.Errorf("level 1 policy %q, want simple", first.Level.Policy)
	}

	prev := first
	for n := 2; n <= TotalLevels; n++ {
		f := ForLevel(n)
		if f.Level.Policy != placement.ExitKeyEnemySpread.String() {
			t.Errorf("level %d policy %q, want spread", n, f.Level.Policy)
		}
		if f.Level.Width < prev.Level.Width || enemyCount(t, f) < enemyCount(t, prev) {
			t.Errorf("level %d is easier than level %d", n, n-1)
		}
		if f.Level.Width%2 != 1 {
			t.Errorf("level %d width %d is even", n, f.Level.Width)
		}
		if _, err := f.LevelConfig(); err != nil {
			t.Errorf("level %d: %v", n, err)
		}
		prev = f
	}

	if !reflect.DeepEqual(ForLevel(TotalLevels+5), ForLevel(TotalLevels)) {
		t.Error("levels past the end should repeat the final level")
	}
	if !reflect.DeepEqual(ForLevel(0), ForLevel(1)) {
		t.Error("level 0 should clamp to level 1")
	}
}

func enemyCount(t *testing.T, f File) int {
	t.Helper()
	pc, err := f.Level.Placement()
	if err != nil {
		t.Fatalf("Placement: %v", err)
	}
	return pc.EnemyCount
}

func TestPlacement_PolicySwitchKeepsDefaults(t *testing.T) {
	spread := Default()
	spread.Level.Policy = "spread"
	pc, err := spread.Level.Placement()
	if err != nil {
		t.Fatalf("Placement: %v", err)
	}
	if want := placement.DefaultConfig(placement.ExitKeyEnemySpread); pc != want {
		t.Errorf("level 1 switched to spread: got %+v, want %+v", pc, want)
	}

	simple := ForLevel(3)
	simple.Level.Policy = "simple"
	pc, err = simple.Level.Placement()
	if err != nil {
		t.Fatalf("Placement: %v", err)
	}
	if pc.FarThreshold != 10 {
		t.Errorf("level 3 switched to simple: got far threshold %d, want 10", pc.FarThreshold)
	}
	if pc.EnemyCount != *ForLevel(3).Level.Enemies {
		t.Errorf("got %d enemies, want the level 3 count %d", pc.EnemyCount, *ForLevel(3).Level.Enemies)
	}
}

func TestParse_PolicyOnlyGeneratesKeys(t *testing.T) {
	f, err := Parse([]byte("level:\n  width: 31\n  height: 31\n  policy: spread\n"), Default())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lc, err := f.LevelConfig()
	if err != nil {
		t.Fatalf("LevelConfig: %v", err)
	}
	lc.Seed = 7
	gen, err := level.New(lc)
	if err != nil {
		t.Fatalf("level.New: %v", err)
	}
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := placement.DefaultConfig(placement.ExitKeyEnemySpread)
	if got := len(gen.KeySpawns()); got != want.KeyCount {
		t.Errorf("got %d keys, want %d", got, want.KeyCount)
	}
	start := gen.PlayerStart()
	for _, e := range gen.EnemySpawns() {
		if d := e.Manhattan(start); d <= want.SafeRadius {
			t.Errorf("enemy at %v is %d from the start, inside the safe radius %d", e, d, want.SafeRadius)
		}
	}
}

func TestParse_ExplicitZeroKept(t *testing.T) {
	f, err := Parse([]byte("level:\n  policy: spread\n  keys: 0\n  safe_radius: 0\n"), Default())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pc, err := f.Level.Placement()
	if err != nil {
		t.Fatalf("Placement: %v", err)
	}
	if pc.KeyCount != 0 || pc.SafeRadius != 0 {
		t.Errorf("got keys=%d safe_radius=%d, want explicit zeros", pc.KeyCount, pc.SafeRadius)
	}
	if pc.KeySampleSize != 10 {
		t.Errorf("got key sample size %d, want default 10", pc.KeySampleSize)
	}
}

func TestParse_DoesNotModifyBase(t *testing.T) {
	base := ForLevel(3)
	want := *base.Level.Keys
	f, err := Parse([]byte("level:\n  keys: 9\n"), base)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *f.Level.Keys != 9 {
		t.Errorf("got %d keys, want 9", *f.Level.Keys)
	}
	if *base.Level.Keys != want {
		t.Errorf("base keys changed to %d, want %d", *base.Level.Keys, want)
	}
}

func TestNextLevel(t *testing.T) {
	if NextLevel(1) != 2 {
		t.Errorf("NextLevel(1) = %d, want 2", NextLevel(1))
	}
	if NextLevel(TotalLevels) != 0 || !IsFinalLevel(TotalLevels) {
		t.Error("final level should have no successor")
	}
}

func TestForLevel_GeneratesValidLevels(t *testing.T) {
	for n := 1; n <= TotalLevels; n++ {
		lc, err := ForLevel(n).LevelConfig()
		if err != nil {
			t.Fatalf("level %d: %v", n, err)
		}
		lc.Seed = int64(n)
		gen, err := level.New(lc)
		if err != nil {
			t.Fatalf("level %d: %v", n, err)
		}
		grid, err := gen.Generate()
		if err != nil {
			t.Fatalf("level %d: %v", n, err)
		}
		if err := grid.Validate(gen.PlayerStart()); err != nil {
			t.Errorf("level %d: %v", n, err)
		}
	}
}
