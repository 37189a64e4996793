package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"darkmaze/pkg/game/enemy"
	"darkmaze/pkg/game/layout"
	"darkmaze/pkg/game/level"
	"darkmaze/pkg/game/placement"
)

// File is the on-disk configuration.
//
//	level:
//	  width: 31
//	  height: 31
//	  seed: 42
//	  policy: spread
//	  keys: 3
//	  enemies: 5
//	enemy:
//	  sight_range: 15
//	  attack_cooldown: 1s
type File struct {
	Level LevelSection `yaml:"level"`
	Enemy EnemySection `yaml:"enemy"`
}

// LevelSection configures maze size, seed and placement.
//
// The placement tuning fields are optional. A nil field takes the stock value
// of the selected policy, so switching policy alone never zeroes its tuning;
// an explicit 0 is kept.
type LevelSection struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Seed          int64   `yaml:"seed"`
	Policy        string  `yaml:"policy"`
	FarThreshold  *int    `yaml:"far_threshold"`
	Enemies       *int    `yaml:"enemies"`
	Keys          *int    `yaml:"keys"`
	KeySampleSize *int    `yaml:"key_sample_size"`
	SafeRadius    *int    `yaml:"safe_radius"`
	Scale         float64 `yaml:"scale"`
}

// Int returns a pointer to v for the optional LevelSection fields.
func Int(v int) *int {
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	return Int(*p)
}

// clone copies the optional fields so a decode into the copy cannot write
// through to the base.
func (l LevelSection) clone() LevelSection {
	l.FarThreshold = cloneInt(l.FarThreshold)
	l.Enemies = cloneInt(l.Enemies)
	l.Keys = cloneInt(l.Keys)
	l.KeySampleSize = cloneInt(l.KeySampleSize)
	l.SafeRadius = cloneInt(l.SafeRadius)
	return l
}

// EnemySection configures enemy behaviour.
type EnemySection struct {
	Speed              float64  `yaml:"speed"`
	IdleSpeedFactor    float64  `yaml:"idle_speed_factor"`
	AttackRange        float64  `yaml:"attack_range"`
	SightRange         float64  `yaml:"sight_range"`
	LoseInterestFactor float64  `yaml:"lose_interest_factor"`
	ProbeDistance      float64  `yaml:"probe_distance"`
	LungeDistance      float64  `yaml:"lunge_distance"`
	IdleTurnMin        Duration `yaml:"idle_turn_min"`
	IdleTurnMax        Duration `yaml:"idle_turn_max"`
	AttackCooldown     Duration `yaml:"attack_cooldown"`
	LungeDuration      Duration `yaml:"lunge_duration"`
}

// Duration is a time.Duration written as a Go duration string ("1.5s").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Default returns the level 1 settings with stock enemy tuning. Placement
// tuning is left unset and follows the policy defaults.
func Default() File {
	t := enemy.DefaultTuning()
	return File{
		Level: LevelSection{
			Width:  level.DefaultWidth,
			Height: level.DefaultHeight,
			Policy: placement.SimpleFarThreshold.String(),
			Scale:  layout.DefaultScale,
		},
		Enemy: EnemySection{
			Speed:              t.Speed,
			IdleSpeedFactor:    t.IdleSpeedFactor,
			AttackRange:        t.AttackRange,
			SightRange:         t.SightRange,
			LoseInterestFactor: t.LoseInterestFactor,
			ProbeDistance:      t.ProbeDistance,
			LungeDistance:      t.LungeDistance,
			IdleTurnMin:        Duration(t.IdleTurnMin),
			IdleTurnMax:        Duration(t.IdleTurnMax),
			AttackCooldown:     Duration(t.AttackCooldown),
			LungeDuration:      Duration(t.LungeDuration),
		},
	}
}

// Parse overlays YAML data on base. Keys missing from data keep base values;
// unknown keys are rejected.
func Parse(data []byte, base File) (File, error) {
	f := base
	f.Level = base.Level.clone()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return base, err
	}
	return f, nil
}

// Load reads path and overlays it on base.
func Load(path string, base File) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	f, err := Parse(data, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Placement converts the level section into a placement config. Unset
// tuning fields keep the defaults of the selected policy; fields that do not
// apply to it are ignored.
func (l LevelSection) Placement() (placement.Config, error) {
	policy, err := placement.ParsePolicy(l.Policy)
	if err != nil {
		return placement.Config{}, err
	}
	cfg := placement.DefaultConfig(policy)
	override(&cfg.EnemyCount, l.Enemies)
	switch policy {
	case placement.ExitKeyEnemySpread:
		override(&cfg.KeyCount, l.Keys)
		override(&cfg.KeySampleSize, l.KeySampleSize)
		override(&cfg.SafeRadius, l.SafeRadius)
	default:
		override(&cfg.FarThreshold, l.FarThreshold)
	}
	return cfg, nil
}

func override(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// LevelConfig converts the level section into a generator config.
func (f File) LevelConfig() (level.Config, error) {
	pc, err := f.Level.Placement()
	if err != nil {
		return level.Config{}, err
	}
	return level.Config{
		Width:     f.Level.Width,
		Height:    f.Level.Height,
		Seed:      f.Level.Seed,
		Placement: pc,
	}, nil
}

// Tuning converts the enemy section into FSM constants.
func (f File) Tuning() enemy.Tuning {
	e := f.Enemy
	return enemy.Tuning{
		Speed:              e.Speed,
		IdleSpeedFactor:    e.IdleSpeedFactor,
		AttackRange:        e.AttackRange,
		SightRange:         e.SightRange,
		LoseInterestFactor: e.LoseInterestFactor,
		ProbeDistance:      e.ProbeDistance,
		LungeDistance:      e.LungeDistance,
		IdleTurnMin:        time.Duration(e.IdleTurnMin),
		IdleTurnMax:        time.Duration(e.IdleTurnMax),
		AttackCooldown:     time.Duration(e.AttackCooldown),
		LungeDuration:      time.Duration(e.LungeDuration),
	}
}
