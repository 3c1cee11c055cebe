package pid

import (
	"math"
	"time"
)

// IntegralZeroingConfig tunes an IntegralZeroing controller.
// Created once at startup and never mutated afterwards.
type IntegralZeroingConfig struct {
	// GainProportion is the proportional gain in output ratio per input unit.
	GainProportion float64

	// GainIntegral is the integral gain in output ratio per
	// (input unit * second) of retained error.
	GainIntegral float64

	// GainDerivative is the derivative gain in seconds per input unit.
	GainDerivative float64

	// OutputRange bounds the summed controller output.
	OutputRange Range

	// DerivativeRange bounds the derivative term's contribution before
	// it is added to the output, so a differentiator spike from a
	// sudden large error cannot dominate the command.
	DerivativeRange Range

	// Tolerance is the deadband half-width in input units. While the
	// error magnitude stays below it the controller commands no change
	// at all and sloughs off any retained integral momentum, which
	// keeps measurement noise around the setpoint from causing chatter.
	Tolerance float64
}

// ClampOutput constrains the output command value.
func (c *IntegralZeroingConfig) ClampOutput(output float64) float64 {
	return c.OutputRange.Clamp(output)
}

// IntegralZeroing is a PID controller that discards its accumulated
// integral momentum whenever the error signal changes sign. This is a
// crude but effective anti-windup heuristic: momentum built up while
// approaching the setpoint from one side cannot push the system into
// overshoot once the error reverses.
//
// Integration uses the trapezoidal rule and the derivative is computed
// on the error signal.
type IntegralZeroing struct {
	config IntegralZeroingConfig

	// priorError is the error identified during the last step, in input units.
	priorError float64

	// retainedError is the accumulated error over time, in input units * seconds.
	retainedError float64
}

// NewIntegralZeroing creates a zero-state controller with the given configuration.
func NewIntegralZeroing(config IntegralZeroingConfig) *IntegralZeroing {
	return &IntegralZeroing{config: config}
}

// Config returns the immutable tuning of this controller.
func (p *IntegralZeroing) Config() IntegralZeroingConfig {
	return p.config
}

// PriorError returns the error seen during the last step.
func (p *IntegralZeroing) PriorError() float64 {
	return p.priorError
}

// RetainedError returns the current integral accumulator value.
func (p *IntegralZeroing) RetainedError() float64 {
	return p.retainedError
}

// Reset returns the controller to its zeroed initial state.
func (p *IntegralZeroing) Reset() {
	p.priorError = 0
	p.retainedError = 0
}

// StepComponents advances the controller by one tick.
func (p *IntegralZeroing) StepComponents(err float64, plantValue float64, dt time.Duration) Components {
	deltaT := dt.Seconds()
	if deltaT <= 0 {
		return Components{}
	}

	// Inside the deadband the controller deactivates entirely: no
	// output terms, and the retained momentum is discarded so it
	// cannot act after reactivation.
	if math.Abs(err) < p.config.Tolerance {
		p.retainedError = 0
		return Components{}
	}

	proportional := p.config.GainProportion * err

	// If the error has changed signs, remove momentum; otherwise
	// accumulate via the trapezoidal rule.
	var retainedError float64
	if (err > 0) != (p.priorError >= 0) {
		retainedError = 0
	} else {
		retainedError = p.retainedError + deltaT*err + deltaT*(err-p.priorError)/2
	}
	integral := retainedError * p.config.GainIntegral

	errorRate := (err - p.priorError) / deltaT
	derivative := p.config.DerivativeRange.Clamp(p.config.GainDerivative * errorRate)

	p.priorError = err
	p.retainedError = retainedError

	return Components{
		Proportional: proportional,
		Integral:     integral,
		Derivative:   derivative,
	}
}

// Step advances the controller by one tick and returns the clamped output.
func (p *IntegralZeroing) Step(err float64, plantValue float64, dt time.Duration) float64 {
	return p.config.ClampOutput(p.StepComponents(err, plantValue, dt).Sum())
}
