package pid

import "time"

// WescottConfig tunes a Wescott controller.
// Created once at startup and never mutated afterwards.
type WescottConfig struct {
	// GainProportion is the proportional gain in output ratio per input unit.
	GainProportion float64

	// GainIntegral is the integral gain in output ratio per
	// (input unit * second) of retained error.
	GainIntegral float64

	// GainDerivative is the derivative gain in seconds per input unit.
	GainDerivative float64

	// OutputRange bounds the summed controller output.
	OutputRange Range

	// IntegralRange bounds the retained-error accumulator itself, in
	// input units * seconds. Bounding the accumulator rather than just
	// the output is the classic anti-windup measure: momentum cannot
	// keep growing while the actuator is saturated.
	IntegralRange Range
}

// ClampOutput constrains the output command value.
func (c *WescottConfig) ClampOutput(output float64) float64 {
	return c.OutputRange.Clamp(output)
}

// Wescott is a PID controller following the model described by Tim
// Wescott in the free "PID Without a Ph.D." paper
// (https://www.wescottdesign.com/articles/pid/pidWithoutAPhd.pdf).
//
// The integral accumulator is hard-clamped every step, and the
// derivative is computed from the plant value's rate of change rather
// than the error's, which avoids derivative kick when the setpoint
// changes abruptly.
type Wescott struct {
	config WescottConfig

	// priorPlantValue is the plant value from the last step, in input units.
	priorPlantValue float64

	// retainedError is the accumulated error over time, in input units * seconds.
	retainedError float64
}

// NewWescott creates a zero-state controller with the given configuration.
func NewWescott(config WescottConfig) *Wescott {
	return &Wescott{config: config}
}

// Config returns the immutable tuning of this controller.
func (p *Wescott) Config() WescottConfig {
	return p.config
}

// PriorPlantValue returns the plant value from the previous step.
func (p *Wescott) PriorPlantValue() float64 {
	return p.priorPlantValue
}

// RetainedError returns the current integral accumulator value.
func (p *Wescott) RetainedError() float64 {
	return p.retainedError
}

// Reset returns the controller to its zeroed initial state.
func (p *Wescott) Reset() {
	p.priorPlantValue = 0
	p.retainedError = 0
}

// StepComponents advances the controller by one tick.
func (p *Wescott) StepComponents(err float64, plantValue float64, dt time.Duration) Components {
	deltaT := dt.Seconds()
	if deltaT <= 0 {
		return Components{}
	}

	proportional := p.config.GainProportion * err

	p.retainedError = p.config.IntegralRange.Clamp(p.retainedError + err*deltaT)
	integral := p.config.GainIntegral * p.retainedError

	rateOfChange := (plantValue - p.priorPlantValue) / deltaT
	derivative := p.config.GainDerivative * rateOfChange

	p.priorPlantValue = plantValue

	return Components{
		Proportional: proportional,
		Integral:     integral,
		Derivative:   derivative,
	}
}

// Step advances the controller by one tick and returns the clamped output.
func (p *Wescott) Step(err float64, plantValue float64, dt time.Duration) float64 {
	return p.config.ClampOutput(p.StepComponents(err, plantValue, dt).Sum())
}
