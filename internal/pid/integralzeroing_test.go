package pid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// climbTuning mirrors the climb-thrust tuning used by the FADEC:
// 1.2% per 1000 pdl proportional, 0.0001% per pdl*s integral,
// 0.018 s per 1000 pdl derivative, output clamped to +-2%.
func climbTuning() IntegralZeroingConfig {
	return IntegralZeroingConfig{
		GainProportion:  0.012 / 1000,
		GainIntegral:    0.000001,
		GainDerivative:  0.018 / 1000,
		OutputRange:     Range{Min: -0.02, Max: 0.02},
		DerivativeRange: Range{Min: -0.20, Max: 0.20},
		Tolerance:       0,
	}
}

func TestIntegralZeroing_StepSequence(t *testing.T) {
	// GIVEN
	pid := NewIntegralZeroing(climbTuning())

	steps := []struct {
		err              float64
		dt               time.Duration
		expectedOutput   float64
		expectedRetained float64
	}{
		{200, time.Second / 60, 0.02, 4.9999999999999805},
		{180, time.Second / 60, -0.019432166666666753, 7.833333333333302},
		{20, 46666666 * time.Nanosecond, -0.02, 5.033333333333306},
		{50, time.Second / 60, 0.02, 6.116666666666635},
		{90, 13666666 * time.Nanosecond, 0.02, 7.619999999999961},
		{-100, time.Second / 60, -0.02, 0.0},
		{-10, time.Second / 60, 0.02, 0.583333333333331},
		{-9, time.Second / 60, 0.000972441666666671, 0.44166666666666493},
		{-3, time.Second / 60, 0.006444441666666693, 0.44166666666666493},
		{-1, time.Second / 60, 0.0021484416666666753, 0.44166666666666493},
		{0.5, time.Second, 0.000033, 0.0},
	}

	for i, step := range steps {
		// WHEN
		output := pid.Step(step.err, 0, step.dt)

		// THEN
		assert.InDelta(t, step.expectedOutput, output, 1e-5, "step %d output", i+1)
		assert.InDelta(t, step.expectedRetained, pid.RetainedError(), 1e-3, "step %d retained error", i+1)
	}
}

func TestIntegralZeroing_SaturatedFirstStep(t *testing.T) {
	// GIVEN a fresh controller and a large positive error
	pid := NewIntegralZeroing(climbTuning())

	// WHEN
	output := pid.Step(200, 0, time.Second/60)

	// THEN the output saturates at +2% and the trapezoidal rule has
	// accumulated 1.5 * dt * error of retained momentum
	assert.Equal(t, 0.02, output)
	assert.InDelta(t, 5.0, pid.RetainedError(), 1e-3)
}

func TestIntegralZeroing_OutputAlwaysInRange(t *testing.T) {
	// GIVEN
	pid := NewIntegralZeroing(climbTuning())
	errors := []float64{0, 1e9, -1e9, 3600, -3600, 0.0001, 42}

	for _, err := range errors {
		// WHEN
		output := pid.Step(err, 0, time.Second/60)

		// THEN
		assert.GreaterOrEqual(t, output, -0.02)
		assert.LessOrEqual(t, output, 0.02)
	}
}

func TestIntegralZeroing_DeadbandIdempotence(t *testing.T) {
	// GIVEN a controller with a deadband and built-up momentum
	config := climbTuning()
	config.Tolerance = 10
	pid := NewIntegralZeroing(config)
	pid.Step(200, 0, time.Second/60)
	assert.NotZero(t, pid.RetainedError())

	for i := 0; i < 100; i++ {
		// WHEN the error stays inside the deadband
		output := pid.Step(5, 0, time.Second/60)

		// THEN the output is zero and the retained error stays zero
		assert.Equal(t, 0.0, output)
		assert.Equal(t, 0.0, pid.RetainedError())
	}
}

func TestIntegralZeroing_SignReversalResetsRetainedError(t *testing.T) {
	// GIVEN momentum accumulated from positive errors
	pid := NewIntegralZeroing(climbTuning())
	pid.Step(100, 0, time.Second/60)
	pid.Step(100, 0, time.Second/60)
	assert.Greater(t, pid.RetainedError(), 0.0)

	// WHEN the error crosses zero
	pid.Step(-50, 0, time.Second/60)

	// THEN the momentum is discarded on exactly that tick
	assert.Equal(t, 0.0, pid.RetainedError())
}

func TestIntegralZeroing_DerivativeClamped(t *testing.T) {
	// GIVEN a sudden large error over a short interval
	pid := NewIntegralZeroing(climbTuning())

	// WHEN
	components := pid.StepComponents(200, 0, time.Second/60)

	// THEN the raw derivative (0.018/1000 * 200 * 60 = 0.216) is
	// clamped to the configured +-20% contribution limit
	assert.Equal(t, 0.20, components.Derivative)
}

func TestIntegralZeroing_NonPositiveDeltaT(t *testing.T) {
	// GIVEN
	pid := NewIntegralZeroing(climbTuning())
	pid.Step(100, 0, time.Second/60)
	retained := pid.RetainedError()

	// WHEN stepped with a zero interval
	output := pid.Step(100, 0, 0)

	// THEN the controller saturates to a zero output without touching state
	assert.Equal(t, 0.0, output)
	assert.Equal(t, retained, pid.RetainedError())
}

func TestIntegralZeroing_Reset(t *testing.T) {
	// GIVEN
	pid := NewIntegralZeroing(climbTuning())
	pid.Step(123, 0, time.Second/60)

	// WHEN
	pid.Reset()

	// THEN
	assert.Equal(t, 0.0, pid.PriorError())
	assert.Equal(t, 0.0, pid.RetainedError())
}
