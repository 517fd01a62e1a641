package look

import "math"

// minSmoothTime keeps the spring stiffness finite.
const minSmoothTime = 1e-4

// Smoother is a critically damped spring that follows a moving target.
// Both fields are plain state so a smoother can be copied, stored and
// replayed.
type Smoother struct {
	Current  float64
	Velocity float64
}

// Step advances the spring by dt seconds toward target and returns the new
// value. The target is reached in roughly smoothTime seconds.
//
// The update is the exact solution of the critically damped oscillator
// over dt, so splitting an interval into more steps yields the same result.
func (s *Smoother) Step(target, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return s.Current
	}
	if !(smoothTime >= minSmoothTime) {
		smoothTime = minSmoothTime
	}
	omega := 2 / smoothTime
	decay := math.Exp(-omega * dt)

	change := s.Current - target
	temp := (s.Velocity + omega*change) * dt
	s.Velocity = (s.Velocity - omega*temp) * decay
	out := target + (change+temp)*decay

	// Never cross the target.
	if (target-s.Current > 0) == (out > target) {
		out = target
		s.Velocity = 0
	}
	s.Current = out
	return out
}

// StepAngle is Step for angles in degrees: the target is first moved to
// the shortest rotation away from the current value.
func (s *Smoother) StepAngle(target, smoothTime, dt float64) float64 {
	return s.Step(s.Current+DeltaAngle(s.Current, target), smoothTime, dt)
}
