// Package placement chooses exit, key and enemy cells on a carved maze.
package placement

import (
	"errors"
	"fmt"
	"strings"
)

// Policy selects the placement strategy.
type Policy int

const (
	// SimpleFarThreshold scatters enemies over floor cells beyond a fixed
	// distance from the start. No exit or keys.
	SimpleFarThreshold Policy = iota
	// ExitKeyEnemySpread places the exit at the farthest cell, spreads keys
	// with a sampled-max heuristic and drops enemies outside a safety radius.
	ExitKeyEnemySpread
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("unknown placement policy")

// String returns the short name of the policy.
func (p Policy) String() string {
	switch p {
	case SimpleFarThreshold:
		return "simple"
	case ExitKeyEnemySpread:
		return "spread"
	default:
		return "unknown"
	}
}

// IsValid returns true for the declared policies.
func (p Policy) IsValid() bool {
	return p == SimpleFarThreshold || p == ExitKeyEnemySpread
}

// ParsePolicy accepts "simple" or "spread" (case-insensitive).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple", "a":
		return SimpleFarThreshold, nil
	case "spread", "b":
		return ExitKeyEnemySpread, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Config tunes a placement pass.
type Config struct {
	Policy Policy

	// SimpleFarThreshold: enemies only on cells farther than this.
	FarThreshold int

	EnemyCount int

	// ExitKeyEnemySpread only.
	KeyCount      int
	KeySampleSize int
	SafeRadius    int
}

// DefaultConfig returns the stock tuning for a policy.
func DefaultConfig(p Policy) Config {
	if p == ExitKeyEnemySpread {
		return Config{
			Policy:        ExitKeyEnemySpread,
			EnemyCount:    5,
			KeyCount:      3,
			KeySampleSize: 10,
			SafeRadius:    5,
		}
	}
	return Config{
		Policy:       SimpleFarThreshold,
		FarThreshold: 10,
		EnemyCount:   3,
	}
}

// Validate reports configuration that cannot drive a placement pass.
func (c Config) Validate() error {
	if !c.Policy.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownPolicy, int(c.Policy))
	}
	if c.EnemyCount < 0 || c.KeyCount < 0 {
		return fmt.Errorf("placement counts must not be negative (enemies=%d keys=%d)", c.EnemyCount, c.KeyCount)
	}
	if c.Policy == ExitKeyEnemySpread && c.KeyCount > 0 && c.KeySampleSize < 1 {
		return fmt.Errorf("key sample size must be at least 1, got %d", c.KeySampleSize)
	}
	return nil
}
