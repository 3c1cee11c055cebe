// Package pid implements proportional-integral-derivative controllers
// with two interchangeable anti-windup strategies.
//
// Gains and state values are plain float64 with their physical unit
// documented on every field; the boundary packages own all unit
// conversions so no two quantities of different units are ever mixed
// without an explicit factor.
package pid

import "time"

// Components holds the three independently computed controller terms
// of a single step, before the final output clamp is applied.
type Components struct {
	// Proportional is the error signal multiplied by the proportional gain.
	Proportional float64

	// Integral is the retained (accumulated) error multiplied by the
	// integral gain.
	Integral float64

	// Derivative is the rate of change in the system (of the error
	// signal or of the plant value, depending on the strategy)
	// multiplied by the derivative gain.
	Derivative float64
}

// Sum returns the raw controller output before clamping.
func (c Components) Sum() float64 {
	return c.Proportional + c.Integral + c.Derivative
}

// Range is an inclusive [Min, Max] clamp interval.
type Range struct {
	Min float64
	Max float64
}

// Clamp coerces the given value into the range.
func (r Range) Clamp(value float64) float64 {
	if value > r.Max {
		return r.Max
	}
	if value < r.Min {
		return r.Min
	}
	return value
}

// Configuration is the capability shared by all controller
// configurations: constraining the raw output to the commandable range.
type Configuration interface {
	// ClampOutput constrains the output command value.
	ClampOutput(output float64) float64
}

// Controller advances a PID control loop by discrete time steps.
//
// Step never blocks and never fails. A non-positive or zero dt is a
// caller contract violation; implementations saturate by returning a
// zero output without mutating controller state rather than dividing
// by zero. NaN inputs are not guarded and will poison the integral
// accumulator until Reset is called.
type Controller interface {
	// StepComponents advances the controller by one tick and returns
	// the three output terms for diagnostics. The error signal and the
	// plant value share the same physical unit.
	StepComponents(err float64, plantValue float64, dt time.Duration) Components

	// Step advances the controller by one tick and returns the summed
	// output clamped to the configured output range.
	Step(err float64, plantValue float64, dt time.Duration) float64

	// RetainedError returns the current integral accumulator value,
	// for diagnostics and monitoring.
	RetainedError() float64

	// Reset returns the controller to its zeroed initial state.
	Reset()
}
