package look

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-gl/mathgl/mgl64"
)

// Pitch limits accepted by the controller, in degrees.
const (
	PitchFloor   = -90.0
	PitchCeiling = 90.0
)

var (
	// ErrPitchLimit reports a pitch limit outside [PitchFloor, PitchCeiling].
	ErrPitchLimit = errors.New("pitch limit out of range")
	// ErrPitchOrder reports a minimum pitch above the maximum.
	ErrPitchOrder = errors.New("min pitch greater than max pitch")
	// ErrSmoothing reports a smoothing time that is not a finite,
	// non-negative number.
	ErrSmoothing = errors.New("invalid smoothing time")
)

// Axes selects which axes respond to input.
type Axes int

const (
	AxesBoth Axes = iota
	AxesYaw
	AxesPitch
)

func (a Axes) String() string {
	switch a {
	case AxesYaw:
		return "yaw"
	case AxesPitch:
		return "pitch"
	default:
		return "both"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Axes) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "both", "xy":
		*a = AxesBoth
	case "yaw", "x":
		*a = AxesYaw
	case "pitch", "y":
		*a = AxesPitch
	default:
		return fmt.Errorf("unknown axes %q", text)
	}
	return nil
}

// Config holds the look settings. All angles are in degrees.
type Config struct {
	// Sensitivity scales raw input deltas into degrees per tick.
	Sensitivity float64 `env:"SENSITIVITY" envDefault:"4"`
	// Smoothing is approximately the time in seconds to reach the input rate.
	Smoothing float64 `env:"SMOOTHING" envDefault:"0.05"`
	MinPitch  float64 `env:"MIN_PITCH" envDefault:"-90"`
	MaxPitch  float64 `env:"MAX_PITCH" envDefault:"90"`

	InvertYaw   bool `env:"INVERT_YAW"`
	InvertPitch bool `env:"INVERT_PITCH"`
	Axes        Axes `env:"AXES" envDefault:"both"`

	InitialYaw   float64 `env:"INITIAL_YAW"`
	InitialPitch float64 `env:"INITIAL_PITCH"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Sensitivity: 4,
		Smoothing:   0.05,
		MinPitch:    PitchFloor,
		MaxPitch:    PitchCeiling,
	}
}

// LoadConfig reads a Config from environment variables named with prefix,
// e.g. LOOK_SENSITIVITY for prefix "LOOK_".
func LoadConfig(prefix string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: prefix}); err != nil {
		return Config{}, fmt.Errorf("parse look config: %w", err)
	}
	return cfg, nil
}

// Validate returns a copy of c with usable pitch limits and smoothing.
// Limits outside [PitchFloor, PitchCeiling] are clamped, a NaN limit falls
// back to the bound it stands for, and inverted limits are swapped. A bad
// smoothing time reverts to the default. Each correction is reported as a
// warning instead of failing.
func (c Config) Validate() (Config, []error) {
	var warnings []error

	var err error
	if c.MinPitch, err = clampLimit("min pitch", c.MinPitch, PitchFloor); err != nil {
		warnings = append(warnings, err)
	}
	if c.MaxPitch, err = clampLimit("max pitch", c.MaxPitch, PitchCeiling); err != nil {
		warnings = append(warnings, err)
	}

	if c.MinPitch > c.MaxPitch {
		warnings = append(warnings, fmt.Errorf("%w: %g > %g, swapping", ErrPitchOrder, c.MinPitch, c.MaxPitch))
		c.MinPitch, c.MaxPitch = c.MaxPitch, c.MinPitch
	}

	if math.IsNaN(c.Smoothing) || math.IsInf(c.Smoothing, 0) || c.Smoothing < 0 {
		warnings = append(warnings, fmt.Errorf("%w: %g", ErrSmoothing, c.Smoothing))
		c.Smoothing = DefaultConfig().Smoothing
	}
	return c, warnings
}

func clampLimit(name string, v, fallback float64) (float64, error) {
	if v >= PitchFloor && v <= PitchCeiling {
		return v, nil
	}
	err := fmt.Errorf("%w: %s %g not in [%g, %g]", ErrPitchLimit, name, v, PitchFloor, PitchCeiling)
	if math.IsNaN(v) {
		return fallback, err
	}
	return mgl64.Clamp(v, PitchFloor, PitchCeiling), err
}
