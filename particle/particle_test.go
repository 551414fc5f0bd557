package particle

import (
	"math"
	"testing"
	"time"

	"github.com/dotille/dotille"
)

func TestGravityPullsDown(t *testing.T) {
	p := NewParticle().WithLife(time.Minute).WithTrail(4)
	f := NewForce()
	p.Update(time.Second, f)
	if p.Pos.Y >= 0 {
		t.Errorf("Pos.Y = %v after 1s of gravity, want negative", p.Pos.Y)
	}
	if p.Vel.Y >= 0 {
		t.Errorf("Vel.Y = %v after 1s of gravity, want negative", p.Vel.Y)
	}
	// v = g*t with 1ms sub-steps lands very close to -9.8.
	if math.Abs(p.Vel.Y+9.8) > 0.1 {
		t.Errorf("Vel.Y = %v, want about -9.8", p.Vel.Y)
	}
}

func TestZeroGravityKeepsVelocity(t *testing.T) {
	p := NewParticle().
		WithVel(dotille.V3(3, 0, 0)).
		WithLife(time.Minute).
		WithTrail(2)
	f := NewForce().WithGravity(0)
	p.Update(2*time.Second, f)
	if math.Abs(p.Pos.X-6) > 1e-6 {
		t.Errorf("Pos.X = %v after 2s at vx=3, want 6", p.Pos.X)
	}
	if math.Abs(p.Vel.X-3) > 1e-9 {
		t.Errorf("Vel.X = %v, want unchanged 3", p.Vel.X)
	}
}

func TestDragSlowsParticle(t *testing.T) {
	p := NewParticle().
		WithVel(dotille.V3(10, 0, 0)).
		WithLife(time.Minute).
		WithTrail(2)
	f := NewForce().WithGravity(0).WithDrag(0.5)
	p.Update(time.Second, f)
	if p.Vel.X >= 10 || p.Vel.X <= 0 {
		t.Errorf("Vel.X = %v after drag, want between 0 and 10", p.Vel.X)
	}
}

func TestExtraForce(t *testing.T) {
	p := NewParticle().WithLife(time.Minute).WithTrail(2)
	// Cancel gravity exactly; the particle must not move.
	f := NewForce().WithForce(func(*Particle) dotille.Vec3 {
		return dotille.V3(0, 9.8, 0)
	})
	p.Update(time.Second, f)
	if math.Abs(p.Pos.Y) > 1e-9 {
		t.Errorf("Pos.Y = %v with cancelled gravity, want 0", p.Pos.Y)
	}
}

func TestTrailBoundedAndFades(t *testing.T) {
	p := NewParticle().WithLife(50 * time.Millisecond).WithTrail(3)
	f := NewForce()
	for i := 0; i < 4; i++ {
		p.Update(10*time.Millisecond, f)
	}
	if got := len(p.Trail()); got != 3 {
		t.Fatalf("trail length = %d, want capped at 3", got)
	}

	// Push past the lifetime; the trail then drains one per update.
	p.Update(20*time.Millisecond, f)
	if !p.Dead() {
		t.Fatal("particle still alive past its lifetime")
	}
	drained := 0
	for !p.Update(10*time.Millisecond, f) {
		drained++
		if drained > 10 {
			t.Fatal("trail never drained")
		}
	}
}

func TestSystemRemovesGoneParticles(t *testing.T) {
	s := NewSystem()
	s.Add(
		NewParticle().WithLife(10*time.Millisecond).WithTrail(1),
		NewParticle().WithLife(time.Hour).WithTrail(1),
	)
	if done := s.Advance(50 * time.Millisecond); done {
		t.Fatal("Advance() reported done with a long-lived particle present")
	}
	// Next advance drains the dead particle's trail entry.
	s.Advance(50 * time.Millisecond)
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after short-lived particle drained", s.Len())
	}
}

func TestPaintDrawsTrail(t *testing.T) {
	s := NewSystem().WithForce(NewForce().WithGravity(0))
	p := NewParticle().
		WithPos(dotille.V3(5, 5, 0)).
		WithVel(dotille.V3(10, 0, 0)).
		WithLife(time.Hour).
		WithTrail(8)
	s.Add(p)
	s.Advance(time.Second)

	c := dotille.New()
	if err := c.Paint(s, 0, 0); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if !c.Dot(15, 5) {
		t.Error("current particle position not painted")
	}
	if w, h := c.Size(); w == 0 || h == 0 {
		t.Error("paint produced an empty frame")
	}
}
