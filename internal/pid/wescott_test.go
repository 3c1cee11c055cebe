package pid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func wescottTuning() WescottConfig {
	return WescottConfig{
		GainProportion: 0.012 / 1000,
		GainIntegral:   0.000001,
		GainDerivative: 0.018 / 1000,
		OutputRange:    Range{Min: -0.02, Max: 0.02},
		IntegralRange:  Range{Min: -100, Max: 100},
	}
}

func TestWescott_AccumulatorHardClamped(t *testing.T) {
	// GIVEN a constant error that would integrate far past the bound
	pid := NewWescott(wescottTuning())

	for i := 0; i < 1000; i++ {
		// WHEN
		pid.Step(500, 0, time.Second/10)

		// THEN the accumulator never exceeds the configured range
		assert.LessOrEqual(t, pid.RetainedError(), 100.0)
	}
	assert.Equal(t, 100.0, pid.RetainedError())

	// AND a single opposing error immediately bleeds it off again
	pid.Step(-500, 0, time.Second/10)
	assert.Equal(t, 50.0, pid.RetainedError())
}

func TestWescott_NoDerivativeKickOnErrorJump(t *testing.T) {
	// GIVEN a controller tracking a steady plant value
	pid := NewWescott(wescottTuning())
	pid.Step(10, 1000, time.Second/60)

	// WHEN the error jumps (setpoint change) while the plant holds still
	components := pid.StepComponents(2000, 1000, time.Second/60)

	// THEN the derivative term stays zero because it follows the
	// plant value, not the error signal
	assert.Equal(t, 0.0, components.Derivative)
	assert.InDelta(t, 0.024, components.Proportional, 1e-9)
}

func TestWescott_DerivativeFollowsPlantValue(t *testing.T) {
	// GIVEN
	pid := NewWescott(wescottTuning())
	pid.Step(0, 1000, time.Second/60)

	// WHEN the plant value rises by 60 units over 1/60 s
	components := pid.StepComponents(0, 1060, time.Second/60)

	// THEN the derivative reflects a rate of 3600 units/s, within the
	// resolution the nanosecond tick duration can represent
	assert.InDelta(t, 0.018/1000*3600, components.Derivative, 1e-6)
}

func TestWescott_OutputAlwaysInRange(t *testing.T) {
	// GIVEN
	pid := NewWescott(wescottTuning())
	errors := []float64{0, 1e9, -1e9, 3600, -3600, 0.0001, 42}

	for _, err := range errors {
		// WHEN
		output := pid.Step(err, err/2, time.Second/60)

		// THEN
		assert.GreaterOrEqual(t, output, -0.02)
		assert.LessOrEqual(t, output, 0.02)
	}
}

func TestWescott_NonPositiveDeltaT(t *testing.T) {
	// GIVEN
	pid := NewWescott(wescottTuning())
	pid.Step(100, 50, time.Second/60)
	retained := pid.RetainedError()
	prior := pid.PriorPlantValue()

	// WHEN stepped with a zero interval
	output := pid.Step(100, 70, 0)

	// THEN the controller saturates to a zero output without touching state
	assert.Equal(t, 0.0, output)
	assert.Equal(t, retained, pid.RetainedError())
	assert.Equal(t, prior, pid.PriorPlantValue())
}

func TestWescott_Reset(t *testing.T) {
	// GIVEN
	pid := NewWescott(wescottTuning())
	pid.Step(123, 456, time.Second/60)

	// WHEN
	pid.Reset()

	// THEN
	assert.Equal(t, 0.0, pid.PriorPlantValue())
	assert.Equal(t, 0.0, pid.RetainedError())
}

func TestControllers_ImplementController(t *testing.T) {
	// GIVEN / THEN
	var _ Controller = NewIntegralZeroing(IntegralZeroingConfig{})
	var _ Controller = NewWescott(WescottConfig{})
	var _ Configuration = &IntegralZeroingConfig{}
	var _ Configuration = &WescottConfig{}
}
