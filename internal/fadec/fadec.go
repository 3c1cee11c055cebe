// Package fadec implements the full-authority digital engine control
// for a single engine: a thrust schedule over altitude and air
// density, and a mode-dependent mapping from lever position to the
// commanded engine throttle.
package fadec

import (
	"math"
	"time"

	"github.com/jetforge/fadecd/internal/controlparams"
	"github.com/jetforge/fadecd/internal/pid"
)

// Readings bundles the instrument values one control step consumes.
type Readings struct {
	// Thrust is the engine's current net thrust in poundals.
	Thrust float64

	// Mach is the current flight Mach number.
	Mach float64

	// AmbientDensity is the ambient air density in slug/ft³.
	AmbientDensity float64

	// PressureAltitude is the pressure altitude in ft.
	PressureAltitude float64
}

// ClimbPidConfig returns the tuning of the climb-thrust loop:
// 1.2% of lever travel per 1000 pdl of error, 0.0001% per pdl*s
// retained, 0.018 s per 1000 pdl derivative, lever changes limited to
// +-2% per step with the derivative contribution capped at +-20%.
func ClimbPidConfig() pid.IntegralZeroingConfig {
	return pid.IntegralZeroingConfig{
		GainProportion:  0.012 / 1000,
		GainIntegral:    0.000001,
		GainDerivative:  0.018 / 1000,
		OutputRange:     pid.Range{Min: -0.02, Max: 0.02},
		DerivativeRange: pid.Range{Min: -0.20, Max: 0.20},
		Tolerance:       0,
	}
}

// Controller is the FADEC for one engine. It owns the selected lever
// ratio it steers during climb, so the caller feeds it the raw axis
// and mode each tick and forwards whatever it commands.
type Controller struct {
	pidState         pid.Controller
	throttleSelected float64
	enabled          bool
}

// NewController creates an enabled controller steering its climb loop
// with the given strategy.
func NewController(pidState pid.Controller) *Controller {
	return &Controller{
		pidState: pidState,
		enabled:  true,
	}
}

// NewDefaultController creates an enabled controller with the
// integral-zeroing climb tuning.
func NewDefaultController() *Controller {
	return NewController(pid.NewIntegralZeroing(ClimbPidConfig()))
}

// Enabled reports whether the FADEC is steering the engine.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// SetEnabled switches the FADEC between steering the engine and the
// passthrough exponential lever curve.
func (c *Controller) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// ThrottleSelected returns the lever ratio the controller currently
// commands, in [0..1] of full travel.
func (c *Controller) ThrottleSelected() float64 {
	return c.throttleSelected
}

// RetainedError returns the climb loop's integral accumulator in
// pdl*s, for diagnostics.
func (c *Controller) RetainedError() float64 {
	return c.pidState.RetainedError()
}

// DesiredThrottle computes the thrust target and the engine throttle
// command for one control step.
//
// The PID state deliberately survives mode transitions: momentum from
// an interrupted climb resumes where it left off instead of starting
// from a cold loop.
func (c *Controller) DesiredThrottle(
	axis controlparams.ThrottleAxis,
	mode controlparams.ThrottleMode,
	readings Readings,
	dt time.Duration,
) (controlparams.ThrustValue, controlparams.ThrottlePercent) {
	if !c.enabled {
		// Passthrough: the lever drives the engine directly through an
		// exponential curve for finer resolution at low power.
		c.throttleSelected = axis.Ratio()
		throttleExp := math.Pow(c.throttleSelected, 3.5)
		return controlparams.ThrustFromRatio(throttleExp),
			controlparams.PercentFromRatio(throttleExp)
	}

	switch mode {
	case controlparams.ModeTakeoff:
		return controlparams.ThrustValue(controlparams.ThrustMax),
			controlparams.ThrottlePercent(controlparams.PercentMax)

	case controlparams.ModeClimb:
		grossThrust := GrossThrust(readings.Thrust, readings.Mach)
		thrustTarget := TargetThrust(readings.AmbientDensity, readings.PressureAltitude)

		output := c.pidState.Step(thrustTarget-grossThrust, grossThrust, dt)
		c.throttleSelected += output

		return controlparams.NewThrustValue(thrustTarget),
			controlparams.PercentFromRatio(c.throttleSelected)

	default:
		// Cruise and the undefined band below it: the lever commands
		// thrust directly, normalized over the cruise range and capped
		// at the continuous efficiency limit.
		c.throttleSelected = axis.Ratio()
		effectiveThrust := axis.NormalizeCruise() * thrustEfficiency

		return controlparams.ThrustFromRatio(effectiveThrust),
			controlparams.PercentFromRatio(effectiveThrust)
	}
}

// VisualThrottle returns the lever position the cockpit animation
// should show, as a percent of forward travel: pinned to the detent in
// the detented modes, tracking the physical axis otherwise.
func (c *Controller) VisualThrottle(mode controlparams.ThrottleMode, axis controlparams.ThrottleAxis) controlparams.ThrottlePercent {
	target := axis
	switch mode {
	case controlparams.ModeTakeoff:
		target = controlparams.NewThrottleAxis(controlparams.AxisTakeoffDetent)
	case controlparams.ModeClimb:
		target = controlparams.NewThrottleAxis(controlparams.AxisClimbDetent)
	}
	return controlparams.PercentFromRatio(target.Ratio())
}
