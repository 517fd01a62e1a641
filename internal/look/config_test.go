package look

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		min, max     float64
		wantMin      float64
		wantMax      float64
		wantWarnings []error
	}{
		{"valid", -90, 90, -90, 90, nil},
		{"narrow", -30, 60, -30, 60, nil},
		{"equal", 10, 10, 10, 10, nil},
		{"both above range", 100, 200, 90, 90, []error{ErrPitchLimit, ErrPitchLimit}},
		{"both outside range", -120, 200, -90, 90, []error{ErrPitchLimit, ErrPitchLimit}},
		{"inverted", 50, -50, -50, 50, []error{ErrPitchOrder}},
		{"inverted and out of range", 80, -100, -90, 80, []error{ErrPitchLimit, ErrPitchOrder}},
		{"nan min", math.NaN(), 45, -90, 45, []error{ErrPitchLimit}},
		{"nan max", 10, math.NaN(), 10, 90, []error{ErrPitchLimit}},
		{"nan both", math.NaN(), math.NaN(), -90, 90, []error{ErrPitchLimit, ErrPitchLimit}},
		{"infinite", math.Inf(1), math.Inf(-1), -90, 90, []error{ErrPitchLimit, ErrPitchLimit, ErrPitchOrder}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.MinPitch, cfg.MaxPitch = tt.min, tt.max

			got, warnings := cfg.Validate()
			if got.MinPitch != tt.wantMin || got.MaxPitch != tt.wantMax {
				t.Fatalf("limits = [%v, %v], want [%v, %v]", got.MinPitch, got.MaxPitch, tt.wantMin, tt.wantMax)
			}
			if len(warnings) != len(tt.wantWarnings) {
				t.Fatalf("got %d warnings %v, want %d", len(warnings), warnings, len(tt.wantWarnings))
			}
			for i, want := range tt.wantWarnings {
				if !errors.Is(warnings[i], want) {
					t.Errorf("warning %d = %v, want %v", i, warnings[i], want)
				}
			}
		})
	}
}

func TestValidateInvariant(t *testing.T) {
	for min := -400.0; min <= 400; min += 37 {
		for max := -400.0; max <= 400; max += 41 {
			cfg := Config{MinPitch: min, MaxPitch: max}
			got, _ := cfg.Validate()
			if got.MinPitch > got.MaxPitch {
				t.Fatalf("Validate(%v, %v): min %v > max %v", min, max, got.MinPitch, got.MaxPitch)
			}
			if got.MinPitch < PitchFloor || got.MaxPitch > PitchCeiling {
				t.Fatalf("Validate(%v, %v) = [%v, %v], outside range", min, max, got.MinPitch, got.MaxPitch)
			}
		}
	}
}

func TestValidateSmoothing(t *testing.T) {
	tests := []struct {
		in       float64
		want     float64
		wantWarn bool
	}{
		{0.05, 0.05, false},
		{0, 0, false},
		{1, 1, false},
		{-0.1, 0.05, true},
		{math.NaN(), 0.05, true},
		{math.Inf(1), 0.05, true},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Smoothing = tt.in
		got, warnings := cfg.Validate()
		if got.Smoothing != tt.want {
			t.Errorf("Smoothing %v validated to %v, want %v", tt.in, got.Smoothing, tt.want)
		}
		if warned := len(warnings) == 1 && errors.Is(warnings[0], ErrSmoothing); warned != tt.wantWarn {
			t.Errorf("Smoothing %v: warnings = %v", tt.in, warnings)
		}
	}
}

func TestLoadConfigNaNLimit(t *testing.T) {
	t.Setenv("LOOKTEST_NANLIMIT_MIN_PITCH", "NaN")
	cfg, err := LoadConfig("LOOKTEST_NANLIMIT_")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	got, warnings := cfg.Validate()
	if got.MinPitch != PitchFloor || got.MaxPitch != PitchCeiling {
		t.Fatalf("limits = [%v, %v], want [%v, %v]", got.MinPitch, got.MaxPitch, PitchFloor, PitchCeiling)
	}
	if len(warnings) != 1 || !errors.Is(warnings[0], ErrPitchLimit) {
		t.Fatalf("warnings = %v, want ErrPitchLimit", warnings)
	}
}

func TestValidateLeavesOtherFields(t *testing.T) {
	cfg := Config{Sensitivity: 2, Smoothing: 0.1, MinPitch: 60, MaxPitch: 10, InvertYaw: true, Axes: AxesPitch}
	got, _ := cfg.Validate()
	if got.Sensitivity != 2 || got.Smoothing != 0.1 || !got.InvertYaw || got.Axes != AxesPitch {
		t.Fatalf("Validate changed unrelated fields: %+v", got)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("LOOKTEST_DEFAULTS_")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("LoadConfig() = %+v, want %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LOOKTEST_SENSITIVITY", "2.5")
	t.Setenv("LOOKTEST_MAX_PITCH", "45")
	t.Setenv("LOOKTEST_INVERT_PITCH", "true")
	t.Setenv("LOOKTEST_AXES", "yaw")

	cfg, err := LoadConfig("LOOKTEST_")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Sensitivity != 2.5 {
		t.Errorf("Sensitivity = %v, want 2.5", cfg.Sensitivity)
	}
	if cfg.MaxPitch != 45 {
		t.Errorf("MaxPitch = %v, want 45", cfg.MaxPitch)
	}
	if cfg.MinPitch != -90 {
		t.Errorf("MinPitch = %v, want default -90", cfg.MinPitch)
	}
	if !cfg.InvertPitch || cfg.InvertYaw {
		t.Errorf("InvertPitch = %v, InvertYaw = %v", cfg.InvertPitch, cfg.InvertYaw)
	}
	if cfg.Axes != AxesYaw {
		t.Errorf("Axes = %v, want yaw", cfg.Axes)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("LOOKTEST_BAD_AXES", "roll")
	if _, err := LoadConfig("LOOKTEST_BAD_"); err == nil {
		t.Fatal("expected error for unknown axes")
	}

	t.Setenv("LOOKTEST_NAN_SMOOTHING", "slow")
	if _, err := LoadConfig("LOOKTEST_NAN_"); err == nil {
		t.Fatal("expected error for non-numeric smoothing")
	}
}

func TestAxesText(t *testing.T) {
	for _, a := range []Axes{AxesBoth, AxesYaw, AxesPitch} {
		var got Axes
		if err := got.UnmarshalText([]byte(a.String())); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", a, err)
		}
		if got != a {
			t.Errorf("round trip %v = %v", a, got)
		}
	}
}
