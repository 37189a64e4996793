package enemy

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"darkmaze/pkg/engine/world"
)

// Enemy is one monster and its behaviour state. Each enemy owns its state
// exclusively; the player position is only read.
type Enemy struct {
	ID       uuid.UUID
	Position world.Vec2
	Heading  float64 // radians, see world.Forward

	tuning   Tuning
	rng      *rand.Rand
	listener Listener

	state     State
	idleTimer time.Duration

	attackElapsed time.Duration
	lungeFrom     world.Vec2
	lungeTo       world.Vec2
}

// New creates an idle enemy at pos. rng drives wandering and the enemy ID.
func New(pos world.Vec2, tuning Tuning, rng *rand.Rand) *Enemy {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		id = uuid.New()
	}
	return &Enemy{
		ID:       id,
		Position: pos,
		tuning:   tuning,
		rng:      rng,
		state:    Idle,
	}
}

// SetListener installs the event listener. nil removes it.
func (e *Enemy) SetListener(l Listener) {
	e.listener = l
}

// State returns the current behaviour state.
func (e *Enemy) State() State {
	return e.state
}

// Tuning returns the enemy's constants.
func (e *Enemy) Tuning() Tuning {
	return e.tuning
}

// Attacking returns true while an attack is locking the state.
func (e *Enemy) Attacking() bool {
	return e.state == Attack
}

// Update advances the enemy by dt.
func (e *Enemy) Update(dt time.Duration, player world.Vec2, senses Senses) {
	dist := e.Position.Dist(player)

	switch e.state {
	case Idle:
		e.wander(dt, senses)
		if dist < e.tuning.SightRange && senses.LineOfSight(e.Position, player, e.tuning.SightRange) {
			e.setState(Chase)
		}

	case Chase:
		e.chase(dt, player, dist, senses)
		if e.state == Chase && dist > e.tuning.LoseInterestRange() {
			e.setState(Idle)
		}

	case Attack:
		e.attack(dt)
	}
}

// wander drifts forward slowly, turning at random intervals and reversing on
// collision.
func (e *Enemy) wander(dt time.Duration, senses Senses) {
	e.idleTimer -= dt
	if e.idleTimer <= 0 {
		span := e.tuning.IdleTurnMax - e.tuning.IdleTurnMin
		e.idleTimer = e.tuning.IdleTurnMin + time.Duration(e.rng.Float64()*float64(span))
		e.Heading = e.rng.Float64() * 2 * math.Pi
	}

	if senses.Blocked(e.Position, e.Heading, e.tuning.ProbeDistance) {
		e.Heading = normalizeAngle(e.Heading + math.Pi)
		e.idleTimer = 0
		return
	}

	step := e.tuning.Speed * e.tuning.IdleSpeedFactor * dt.Seconds()
	e.Position = e.Position.Add(world.Forward(e.Heading).Scale(step))
}

// chase faces the player and closes in, switching to Attack once in range.
func (e *Enemy) chase(dt time.Duration, player world.Vec2, dist float64, senses Senses) {
	if dist > 0 {
		e.Heading = player.Sub(e.Position).Heading()
	}

	if dist > e.tuning.AttackRange {
		step := math.Min(e.tuning.Speed*dt.Seconds(), dist)
		e.Position = e.Position.Add(world.Forward(e.Heading).Scale(step))
		return
	}

	e.startAttack(senses)
}

// startAttack locks the Attack state and aims the lunge. A lunge that would
// pass through a wall stays in place.
func (e *Enemy) startAttack(senses Senses) {
	e.setState(Attack)
	e.attackElapsed = 0
	e.lungeFrom = e.Position
	e.lungeTo = e.Position
	if !senses.Blocked(e.Position, e.Heading, e.tuning.LungeDistance) {
		e.lungeTo = e.Position.Add(world.Forward(e.Heading).Scale(e.tuning.LungeDistance))
	}
	if e.listener != nil {
		e.listener.OnAttack(e)
	}
}

// attack plays the lunge and waits out the cooldown. Triggers are ignored.
func (e *Enemy) attack(dt time.Duration) {
	e.attackElapsed += dt

	if e.tuning.LungeDuration > 0 {
		t := math.Min(float64(e.attackElapsed)/float64(e.tuning.LungeDuration), 1)
		e.Position = e.lungeFrom.Add(e.lungeTo.Sub(e.lungeFrom).Scale(t))
	} else {
		e.Position = e.lungeTo
	}

	if e.attackElapsed >= e.tuning.AttackCooldown {
		e.setState(Chase)
	}
}

func (e *Enemy) setState(to State) {
	from := e.state
	if from == to {
		return
	}
	e.state = to
	if e.listener != nil {
		e.listener.OnStateChange(e, from, to)
	}
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
