package enemy

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"darkmaze/pkg/engine/world"
)

const tick = 100 * time.Millisecond

// fakeSenses answers every query with fixed values.
type fakeSenses struct {
	sight   bool
	blocked bool
}

func (f fakeSenses) LineOfSight(from, to world.Vec2, maxDist float64) bool {
	return f.sight && from.Dist(to) <= maxDist
}

func (f fakeSenses) Blocked(world.Vec2, float64, float64) bool {
	return f.blocked
}

type transition struct {
	from, to State
}

// recorder collects listener events.
type recorder struct {
	transitions []transition
	attacks     int
}

func (r *recorder) OnStateChange(_ *Enemy, from, to State) {
	r.transitions = append(r.transitions, transition{from, to})
}

func (r *recorder) OnAttack(*Enemy) {
	r.attacks++
}

func newEnemy(t *testing.T) (*Enemy, *recorder) {
	t.Helper()
	e := New(world.Vec2{}, DefaultTuning(), rand.New(rand.NewSource(1)))
	rec := &recorder{}
	e.SetListener(rec)
	return e, rec
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestIdle_SpotsPlayer(t *testing.T) {
	e, rec := newEnemy(t)
	e.Update(tick, world.Vec2{X: 10}, fakeSenses{sight: true})

	if e.State() != Chase {
		t.Fatalf("got %v, want Chase", e.State())
	}
	if len(rec.transitions) != 1 || rec.transitions[0] != (transition{Idle, Chase}) {
		t.Errorf("got transitions %v, want [Idle->Chase]", rec.transitions)
	}
}

func TestIdle_IgnoresHiddenOrDistantPlayer(t *testing.T) {
	tests := []struct {
		name   string
		player world.Vec2
		senses fakeSenses
	}{
		{"no line of sight", world.Vec2{X: 5}, fakeSenses{sight: false}},
		{"beyond sight range", world.Vec2{X: 20}, fakeSenses{sight: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newEnemy(t)
			for i := 0; i < 20; i++ {
				e.Update(tick, tt.player, tt.senses)
			}
			if e.State() != Idle || len(rec.transitions) != 0 {
				t.Errorf("got %v with transitions %v, want Idle", e.State(), rec.transitions)
			}
		})
	}
}

func TestIdle_WandersAtReducedSpeed(t *testing.T) {
	e, _ := newEnemy(t)
	before := e.Position
	e.Update(tick, world.Vec2{X: 100}, fakeSenses{})

	tu := e.Tuning()
	want := tu.Speed * tu.IdleSpeedFactor * tick.Seconds()
	if got := e.Position.Dist(before); !approx(got, want) {
		t.Errorf("moved %v, want %v", got, want)
	}
}

func TestIdle_TurnsAroundWhenBlocked(t *testing.T) {
	e, _ := newEnemy(t)
	e.Heading = 1
	e.idleTimer = time.Hour

	e.Update(tick, world.Vec2{X: 100}, fakeSenses{blocked: true})

	if e.Position != (world.Vec2{}) {
		t.Errorf("blocked enemy moved to %v", e.Position)
	}
	if want := 1 + math.Pi; !approx(e.Heading, want) {
		t.Errorf("heading = %v, want %v", e.Heading, want)
	}
	if e.idleTimer != 0 {
		t.Errorf("turn timer = %v, want reset to 0", e.idleTimer)
	}
}

func TestChase_ClosesDistance(t *testing.T) {
	e, _ := newEnemy(t)
	player := world.Vec2{X: 10}
	senses := fakeSenses{sight: true}
	e.Update(tick, player, senses)

	before := e.Position.Dist(player)
	e.Update(tick, player, senses)
	after := e.Position.Dist(player)

	if want := before - e.Tuning().Speed*tick.Seconds(); !approx(after, want) {
		t.Errorf("distance %v -> %v, want %v", before, after, want)
	}
	if e.State() != Chase {
		t.Errorf("got %v, want Chase", e.State())
	}
}

func TestChase_Hysteresis(t *testing.T) {
	e, rec := newEnemy(t)
	senses := fakeSenses{sight: true}
	e.Update(tick, world.Vec2{X: 10}, senses)

	// Beyond sight range but inside the lose-interest range: keep chasing
	e.Update(tick, e.Position.Add(world.Vec2{X: 20}), senses)
	if e.State() != Chase {
		t.Fatalf("got %v at 20 units, want Chase", e.State())
	}

	e.Update(tick, e.Position.Add(world.Vec2{X: 30}), senses)
	if e.State() != Idle {
		t.Fatalf("got %v at 30 units, want Idle", e.State())
	}
	if last := rec.transitions[len(rec.transitions)-1]; last != (transition{Chase, Idle}) {
		t.Errorf("last transition %v, want Chase->Idle", last)
	}
}

// startAttack drives a fresh enemy into Attack with the player one unit away.
func startAttack(t *testing.T, senses fakeSenses) (*Enemy, *recorder, world.Vec2) {
	t.Helper()
	e, rec := newEnemy(t)
	e.idleTimer = time.Hour
	player := world.Vec2{X: 1}

	e.Update(tick, player, senses)
	if e.State() != Chase {
		t.Fatalf("got %v, want Chase", e.State())
	}
	e.Update(tick, player, senses)
	if e.State() != Attack {
		t.Fatalf("got %v, want Attack", e.State())
	}
	return e, rec, player
}

func TestAttack_CooldownLocksState(t *testing.T) {
	// Ten ticks make up the one second cooldown
	e, rec, _ := startAttack(t, fakeSenses{sight: true})
	if rec.attacks != 1 {
		t.Fatalf("got %d attack events, want 1", rec.attacks)
	}

	// Player runs away: the attack still plays out
	far := world.Vec2{X: 100}
	for i := 0; i < 9; i++ {
		e.Update(tick, far, fakeSenses{sight: true})
		if e.State() != Attack {
			t.Fatalf("tick %d: got %v, want Attack during cooldown", i, e.State())
		}
	}
	e.Update(tick, far, fakeSenses{sight: true})
	if e.State() != Chase {
		t.Fatalf("got %v after cooldown, want Chase", e.State())
	}
	if rec.attacks != 1 {
		t.Errorf("got %d attack events, want 1", rec.attacks)
	}
}

func TestAttack_Lunge(t *testing.T) {
	e, _, _ := startAttack(t, fakeSenses{sight: true})
	from := e.Position

	// Lunge completes after LungeDuration
	e.Update(tick, world.Vec2{X: 1}, fakeSenses{sight: true})
	e.Update(tick, world.Vec2{X: 1}, fakeSenses{sight: true})

	if got, want := e.Position.Dist(from), e.Tuning().LungeDistance; !approx(got, want) {
		t.Errorf("lunged %v, want %v", got, want)
	}
	if e.Position.X <= from.X {
		t.Errorf("lunge went from %v to %v, want towards the player", from, e.Position)
	}
}

func TestAttack_BlockedLungeStaysInPlace(t *testing.T) {
	e, _, _ := startAttack(t, fakeSenses{sight: true, blocked: true})
	from := e.Position
	for i := 0; i < 3; i++ {
		e.Update(tick, world.Vec2{X: 1}, fakeSenses{sight: true, blocked: true})
	}
	if e.Position != from {
		t.Errorf("blocked lunge moved from %v to %v", from, e.Position)
	}
}

func TestNew_DeterministicIDs(t *testing.T) {
	a := New(world.Vec2{}, DefaultTuning(), rand.New(rand.NewSource(7)))
	b := New(world.Vec2{}, DefaultTuning(), rand.New(rand.NewSource(7)))
	if a.ID != b.ID {
		t.Errorf("same seed gave IDs %s and %s", a.ID, b.ID)
	}

	rng := rand.New(rand.NewSource(7))
	c, d := New(world.Vec2{}, DefaultTuning(), rng), New(world.Vec2{}, DefaultTuning(), rng)
	if c.ID == d.ID {
		t.Error("enemies sharing a source got the same ID")
	}
}

func TestListenerFuncs_NilFieldsSkipped(t *testing.T) {
	e := New(world.Vec2{}, DefaultTuning(), rand.New(rand.NewSource(1)))
	e.SetListener(ListenerFuncs{})
	e.Update(tick, world.Vec2{X: 1}, fakeSenses{sight: true})
	e.Update(tick, world.Vec2{X: 1}, fakeSenses{sight: true})
	if e.State() != Attack {
		t.Errorf("got %v, want Attack", e.State())
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{Idle: "idle", Chase: "chase", Attack: "attack"} {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
