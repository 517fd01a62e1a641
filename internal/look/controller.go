// Package look turns raw per-tick look input into a smoothed first-person
// orientation with a clamped pitch.
package look

import "github.com/go-gl/mathgl/mgl64"

// clampMargin keeps the pitch step strictly inside its limits. A step that
// lands exactly on a limit becomes the next smoothing target and the
// smoother oscillates around it.
const clampMargin = 0.01

// State is everything a Controller mutates between ticks.
type State struct {
	Orientation
	YawSmoother   Smoother
	PitchSmoother Smoother
}

// Controller smooths yaw and pitch input and accumulates it into an
// Orientation. It is not safe for concurrent use.
type Controller struct {
	cfg      Config
	warnings []error
	state    State
}

// New builds a Controller from cfg. Invalid pitch limits are corrected, not
// rejected; the corrections are available from Warnings.
func New(cfg Config) *Controller {
	cfg, warnings := cfg.Validate()
	c := &Controller{cfg: cfg, warnings: warnings}
	c.state.Yaw = cfg.InitialYaw
	lo, hi := c.pitchRange(0)
	c.state.Pitch = mgl64.Clamp(NormalizeAngle(cfg.InitialPitch), lo, hi)
	return c
}

// Config returns the validated configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Warnings returns the corrections made to the configuration by New.
func (c *Controller) Warnings() []error {
	return c.warnings
}

func (c *Controller) Orientation() Orientation {
	return c.state.Orientation
}

// State returns a copy of the controller state.
func (c *Controller) State() State {
	return c.state
}

// Restore replaces the controller state, e.g. to replay recorded input.
func (c *Controller) Restore(s State) {
	c.state = s
}

// Update advances the controller by one tick of dt seconds given the raw
// input deltas for the tick. It returns the smoothed yaw and pitch rotation
// applied this tick, in degrees. Yaw accumulates without bound; pitch stays
// within the configured limits. A non-positive dt changes nothing.
func (c *Controller) Update(rawYaw, rawPitch, dt float64) (yaw, pitch float64) {
	if dt <= 0 {
		return 0, 0
	}
	targetYaw, targetPitch := c.targets(rawYaw, rawPitch)

	yaw = c.state.YawSmoother.StepAngle(targetYaw, c.cfg.Smoothing, dt)
	pitch = c.state.PitchSmoother.StepAngle(targetPitch, c.cfg.Smoothing, dt)

	pitch = c.clampPitch(pitch)
	c.state.PitchSmoother.Current = pitch

	c.state.Yaw += yaw
	c.state.Pitch += pitch
	return yaw, pitch
}

func (c *Controller) targets(rawYaw, rawPitch float64) (yaw, pitch float64) {
	yaw = rawYaw * c.cfg.Sensitivity
	pitch = rawPitch * c.cfg.Sensitivity
	if c.cfg.InvertYaw {
		yaw = -yaw
	}
	if c.cfg.InvertPitch {
		pitch = -pitch
	}
	switch c.cfg.Axes {
	case AxesYaw:
		pitch = 0
	case AxesPitch:
		yaw = 0
	}
	return yaw, pitch
}

// clampPitch limits a pitch step relative to the tilt at the start of the
// tick, so the accumulated pitch stays inside [MinPitch, MaxPitch].
func (c *Controller) clampPitch(step float64) float64 {
	lo, hi := c.pitchRange(NormalizeAngle(c.state.Tilt()))
	return mgl64.Clamp(step, lo, hi)
}

// pitchRange returns the allowed pitch step for a tilt baseline. When the
// limits are closer than twice the margin the range shrinks to hi, so pitch
// settles just under MaxPitch.
func (c *Controller) pitchRange(baseline float64) (lo, hi float64) {
	lo = c.cfg.MinPitch + baseline + clampMargin
	hi = c.cfg.MaxPitch + baseline - clampMargin
	if lo > hi {
		lo = hi
	}
	return lo, hi
}
