// Package config resolves level and enemy settings from the per-level
// difficulty table, YAML files and command-line overrides.
package config

import "darkmaze/pkg/game/placement"

// TotalLevels is the number of levels in a run. The final level repeats for
// any deeper request.
const TotalLevels = 10

// IsFinalLevel returns true if the given level (1-based) is the last one.
func IsFinalLevel(level int) bool {
	return level >= TotalLevels
}

// NextLevel returns the level after current, or 0 if current is final.
func NextLevel(current int) int {
	if current <= 0 || current >= TotalLevels {
		return 0
	}
	return current + 1
}

// ForLevel returns the settings for the given level (1-based).
// Level 1 is the small simple maze; from level 2 the exit/key layout is used
// and the maze and enemy count grow with depth.
func ForLevel(level int) File {
	if level <= 0 {
		level = 1
	}
	if level > TotalLevels {
		level = TotalLevels
	}

	f := Default()
	if level == 1 {
		return f
	}

	size := 21 + 2*(level-1)
	spread := placement.DefaultConfig(placement.ExitKeyEnemySpread)

	f.Level.Width = size
	f.Level.Height = size
	f.Level.Policy = placement.ExitKeyEnemySpread.String()
	f.Level.Keys = Int(spread.KeyCount + (level-2)/4)
	f.Level.Enemies = Int(spread.EnemyCount + (level-2)/2)

	// Deeper monsters see a little further
	f.Enemy.SightRange += float64(level-1) * 0.5
	return f
}
