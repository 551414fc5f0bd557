// Package particle provides a small particle simulator as a dotille
// drawable. A System owns particles and a Force; each update integrates
// velocities and positions with fixed-size sub-steps, and painting
// projects every particle and its trail onto the canvas plane.
package particle

import (
	"time"

	"github.com/dotille/dotille"
)

// Particle is one simulated point mass with a bounded position trail.
type Particle struct {
	Pos  dotille.Vec3
	Vel  dotille.Vec3
	Mass float64

	life     time.Duration
	alive    time.Duration
	dead     bool
	trailLen int
	trail    []dotille.Vec3
}

// NewParticle returns a particle at the origin with unit mass and no
// lifetime (it dies on its first update unless WithLife is used).
func NewParticle() *Particle {
	return &Particle{Mass: 1}
}

// WithPos sets the starting position.
func (p *Particle) WithPos(pos dotille.Vec3) *Particle {
	p.Pos = pos
	return p
}

// WithVel sets the starting velocity.
func (p *Particle) WithVel(vel dotille.Vec3) *Particle {
	p.Vel = vel
	return p
}

// WithLife sets how long the particle stays alive.
func (p *Particle) WithLife(d time.Duration) *Particle {
	p.life = d
	return p
}

// WithTrail sets how many past positions the particle keeps; the trail is
// what gets painted, so 0 makes the particle invisible.
func (p *Particle) WithTrail(n int) *Particle {
	p.trailLen = n
	return p
}

// Update advances the particle by dt under the force and reports whether
// it is gone: dead and with its trail fully drained.
func (p *Particle) Update(dt time.Duration, f *Force) bool {
	if !p.dead {
		p.alive += dt
		if p.alive >= p.life {
			p.dead = true
		}
		f.apply(p, dt)
		p.trail = append(p.trail, p.Pos)
	}
	// The trail drains one position per update once the particle dies,
	// so it fades instead of vanishing.
	if len(p.trail) > p.trailLen || (p.dead && len(p.trail) > 0) {
		p.trail = p.trail[1:]
	}
	return p.dead && len(p.trail) == 0
}

// Dead reports whether the particle has exceeded its lifetime. A dead
// particle may still have trail left to fade out.
func (p *Particle) Dead() bool {
	return p.dead
}

// Trail returns the retained past positions, oldest first.
func (p *Particle) Trail() []dotille.Vec3 {
	return p.trail
}

// Force integrates gravity, quadratic air drag and any extra caller
// forces. Integration runs in fixed sub-steps so the result does not
// depend on frame timing.
type Force struct {
	gravity float64
	drag    float64
	extra   []func(*Particle) dotille.Vec3
	dt      float64
}

// NewForce returns a force with earth gravity scale 1, no drag, and a
// 1ms integration sub-step.
func NewForce() *Force {
	return &Force{gravity: 1, dt: 0.001}
}

// WithGravity sets the gravity scale (1 is 9.8 units per second squared,
// pulling toward negative y).
func (f *Force) WithGravity(g float64) *Force {
	f.gravity = g
	return f
}

// WithDrag sets the quadratic air drag coefficient.
func (f *Force) WithDrag(drag float64) *Force {
	f.drag = drag
	return f
}

// WithForce adds an extra acceleration, evaluated per particle per
// sub-step.
func (f *Force) WithForce(fn func(*Particle) dotille.Vec3) *Force {
	f.extra = append(f.extra, fn)
	return f
}

// apply integrates p's velocity and position over dt.
func (f *Force) apply(p *Particle, dt time.Duration) {
	vel, pos := p.Vel, p.Pos
	remaining := dt.Seconds()
	for remaining > 0 {
		step := f.dt
		if remaining < step {
			step = remaining
		}
		acc := dotille.V3(0, -9.8*f.gravity, 0)
		if f.drag != 0 {
			speed := vel.Length()
			acc = acc.Sub(vel.Normalize().Mul(speed * speed * f.drag))
		}
		for _, fn := range f.extra {
			acc = acc.Add(fn(p))
		}
		vel = vel.Add(acc.Mul(step))
		pos = pos.Add(vel.Mul(step))
		remaining -= step
	}
	p.Vel = vel
	p.Pos = pos
}

// System owns a set of particles and steps them against one force.
type System struct {
	particles []*Particle
	force     *Force
	last      time.Time
}

// NewSystem returns an empty system with the default force.
func NewSystem() *System {
	return &System{force: NewForce(), last: time.Now()}
}

// WithForce replaces the system's force.
func (s *System) WithForce(f *Force) *System {
	s.force = f
	return s
}

// Add appends particles to the system.
func (s *System) Add(ps ...*Particle) {
	s.particles = append(s.particles, ps...)
}

// Len returns the live particle count.
func (s *System) Len() int {
	return len(s.particles)
}

// Update advances the simulation by the wall-clock time since the last
// update and reports whether every particle is gone.
func (s *System) Update() bool {
	now := time.Now()
	dt := now.Sub(s.last)
	s.last = now
	return s.Advance(dt)
}

// Advance advances the simulation by an explicit dt and reports whether
// every particle is gone. Animation loops use Update; tests and
// deterministic replays use Advance.
func (s *System) Advance(dt time.Duration) bool {
	kept := s.particles[:0]
	for _, p := range s.particles {
		if gone := p.Update(dt, s.force); !gone {
			kept = append(kept, p)
		}
	}
	s.particles = kept
	return len(s.particles) == 0
}

// Paint draws every particle's current position and trail as dots,
// projected onto (x, y) of the canvas plane and translated by the offset.
func (s *System) Paint(c *dotille.Canvas, x, y float64) error {
	for _, p := range s.particles {
		if !p.dead {
			c.Set(x+p.Pos.X, y+p.Pos.Y)
		}
		for _, t := range p.trail {
			c.Set(x+t.X, y+t.Y)
		}
	}
	return nil
}
