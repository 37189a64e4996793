// Package renderer defines the level rendering backends and the text shared
// between them.
package renderer

import (
	"darkmaze/pkg/game/i18n"
)

// Header returns the status lines printed above a level map.
func Header(f Frame) []string {
	gen := f.Gen
	lines := []string{
		i18n.T("LEVEL_TITLE", f.Level),
		i18n.T("LEVEL_SUMMARY", gen.Width(), gen.Height(), f.Seed, gen.Policy().String()),
		i18n.T("SPAWN_COUNTS", len(gen.KeySpawns()), len(gen.EnemySpawns())),
	}
	if exit, ok := gen.Exit(); ok {
		lines = append(lines, i18n.T("EXIT_AT", exit.String()))
	} else {
		lines = append(lines, i18n.T("NO_EXIT"))
	}
	return lines
}

// Warnings returns problems worth flagging below the map, such as spawns the
// planner could not fit.
func Warnings(f Frame) []string {
	var out []string
	if short := f.Gen.Shortfall(); short.Any() {
		out = append(out, i18n.T("SHORTFALL_WARNING", short.Keys, short.Enemies))
	}
	return out
}

// Legend returns the one-line symbol legend.
func Legend() string {
	return i18n.T("LEGEND")
}
