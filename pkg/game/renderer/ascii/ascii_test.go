package ascii

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"darkmaze/pkg/game/level"
	"darkmaze/pkg/game/placement"
	"darkmaze/pkg/game/renderer"
)

func frame(t *testing.T) renderer.Frame {
	t.Helper()
	gen, err := level.New(level.Config{
		Width:     11,
		Height:    9,
		Seed:      3,
		Placement: placement.DefaultConfig(placement.ExitKeyEnemySpread),
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gen.Generate(); err != nil {
		t.Fatal(err)
	}
	return renderer.Frame{Level: 1, Seed: 3, Gen: gen}
}

func TestRender_MapOnly(t *testing.T) {
	f := frame(t)
	var buf bytes.Buffer
	r := New(&buf)
	r.MapOnly = true
	if err := r.Render(f); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got, want := buf.String(), f.Gen.RenderASCII(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestRender_WithHeader(t *testing.T) {
	f := frame(t)
	var buf bytes.Buffer
	if err := New(&buf).Render(f); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Level 1\n") {
		t.Errorf("output starts with %q", strings.SplitN(out, "\n", 2)[0])
	}
	if !strings.Contains(out, f.Gen.RenderASCII()) {
		t.Error("output does not contain the map")
	}
	if !strings.Contains(out, renderer.Legend()) {
		t.Error("output does not contain the legend")
	}
}

func TestRender_NoLevel(t *testing.T) {
	if err := New(&bytes.Buffer{}).Render(renderer.Frame{}); !errors.Is(err, renderer.ErrNoLevel) {
		t.Errorf("got %v, want ErrNoLevel", err)
	}
}
