// Package enemy implements the per-enemy behaviour state machine. The host
// engine advances each enemy once per frame with the elapsed time, the player
// position and a Senses collaborator for sight and collision queries.
package enemy

import (
	"time"

	"darkmaze/pkg/engine/world"
)

// State is a behaviour state of the enemy FSM.
type State int

const (
	Idle State = iota
	Chase
	Attack
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Chase:
		return "chase"
	case Attack:
		return "attack"
	default:
		return "unknown"
	}
}

// Tuning holds the movement and perception constants of an enemy.
type Tuning struct {
	Speed              float64 // world units per second while chasing
	IdleSpeedFactor    float64 // fraction of Speed used while wandering
	AttackRange        float64
	SightRange         float64
	LoseInterestFactor float64 // chase ends beyond SightRange * LoseInterestFactor
	ProbeDistance      float64 // look-ahead for wall collisions while wandering
	LungeDistance      float64

	IdleTurnMin    time.Duration
	IdleTurnMax    time.Duration
	AttackCooldown time.Duration
	LungeDuration  time.Duration
}

// DefaultTuning returns the stock monster values.
func DefaultTuning() Tuning {
	return Tuning{
		Speed:              4,
		IdleSpeedFactor:    0.5,
		AttackRange:        1.5,
		SightRange:         15,
		LoseInterestFactor: 1.5,
		ProbeDistance:      1,
		LungeDistance:      2,
		IdleTurnMin:        2 * time.Second,
		IdleTurnMax:        5 * time.Second,
		AttackCooldown:     time.Second,
		LungeDuration:      200 * time.Millisecond,
	}
}

// LoseInterestRange is the distance beyond which a chase is abandoned.
func (t Tuning) LoseInterestRange() float64 {
	return t.SightRange * t.LoseInterestFactor
}

// Senses answers spatial queries the FSM cannot answer itself. In a 3D host
// these are raycasts; GridSenses answers them from the maze grid.
type Senses interface {
	// LineOfSight reports an unobstructed view from one point to another
	// within maxDist.
	LineOfSight(from, to world.Vec2, maxDist float64) bool
	// Blocked reports an obstacle within dist along heading.
	Blocked(from world.Vec2, heading, dist float64) bool
}

// Listener receives behaviour events, typically to drive sound and animation.
type Listener interface {
	OnStateChange(e *Enemy, from, to State)
	OnAttack(e *Enemy)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	StateChange func(e *Enemy, from, to State)
	Attack      func(e *Enemy)
}

// OnStateChange implements Listener.
func (l ListenerFuncs) OnStateChange(e *Enemy, from, to State) {
	if l.StateChange != nil {
		l.StateChange(e, from, to)
	}
}

// OnAttack implements Listener.
func (l ListenerFuncs) OnAttack(e *Enemy) {
	if l.Attack != nil {
		l.Attack(e)
	}
}
