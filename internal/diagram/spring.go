package diagram

import "math"

// SpringConfig tunes a Spring.
type SpringConfig struct {
	Stiffness float64
	Damping   float64

	// Precision is how close to rest both velocity and displacement must be
	// before the spring snaps to its target.
	Precision float64
}

// DefaultSpringConfig returns stiffness 170 and damping 26.
func DefaultSpringConfig() SpringConfig {
	return SpringConfig{Stiffness: 170, Damping: 26, Precision: 0.01}
}

// springStep is the fixed integration step in seconds.
const springStep = 1.0 / 60

// Spring animates a scalar toward a target with damped harmonic motion.
// The zero value, once given a Config, rests at 0.
type Spring struct {
	Config SpringConfig

	value    float64
	velocity float64
	target   float64
	carry    float64
}

// SetTarget changes the value the spring moves toward.
func (s *Spring) SetTarget(v float64) {
	s.target = v
}

// Target returns the current target.
func (s *Spring) Target() float64 {
	return s.target
}

// Value returns the current animated value.
func (s *Spring) Value() float64 {
	return s.value
}

// AtRest reports whether the spring has settled on its target.
func (s *Spring) AtRest() bool {
	return s.value == s.target && s.velocity == 0
}

// Step advances the animation by dt seconds using fixed sub-steps, so the
// result does not depend on the frame rate.
func (s *Spring) Step(dt float64) {
	if s.AtRest() || dt <= 0 {
		s.carry = 0
		return
	}

	s.carry += dt
	for s.carry >= springStep {
		s.carry -= springStep
		s.integrate(springStep)
		if s.AtRest() {
			s.carry = 0
			return
		}
	}
}

func (s *Spring) integrate(dt float64) {
	cfg := s.Config
	if cfg.Stiffness <= 0 {
		s.value, s.velocity = s.target, 0
		return
	}

	force := -cfg.Stiffness * (s.value - s.target)
	damper := -cfg.Damping * s.velocity
	s.velocity += (force + damper) * dt
	s.value += s.velocity * dt

	if math.Abs(s.velocity) < cfg.Precision && math.Abs(s.value-s.target) < cfg.Precision {
		s.value, s.velocity = s.target, 0
	}
}
