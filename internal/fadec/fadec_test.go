package fadec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jetforge/fadecd/internal/controlparams"
	"github.com/jetforge/fadecd/internal/pid"
)

const tick = time.Second / 60

func seaLevelReadings(netThrust float64) Readings {
	return Readings{
		Thrust:           netThrust,
		Mach:             0,
		AmbientDensity:   0.0023769,
		PressureAltitude: 0,
	}
}

func TestDesiredThrottle_TakeoffCommandsFullPower(t *testing.T) {
	// GIVEN
	controller := NewDefaultController()
	axis := controlparams.NewThrottleAxis(16000)

	// WHEN
	thrust, percent := controller.DesiredThrottle(
		axis, controlparams.ModeTakeoff, seaLevelReadings(1500), tick)

	// THEN full rated power is commanded without consulting the loop
	assert.Equal(t, controlparams.ThrustValue(controlparams.ThrustMax), thrust)
	assert.Equal(t, controlparams.ThrottlePercent(controlparams.PercentMax), percent)
}

func TestDesiredThrottle_ClimbStepsLeverTowardTarget(t *testing.T) {
	// GIVEN a cold engine far below the climb target
	controller := NewDefaultController()
	axis := controlparams.NewThrottleAxis(12030)

	// WHEN
	thrust, percent := controller.DesiredThrottle(
		axis, controlparams.ModeClimb, seaLevelReadings(0), tick)

	// THEN the published target is the sea-level schedule value
	assert.InDelta(t, 2050+7000.0/24, float64(thrust), 1e-6)

	// AND the loop advances the lever by its full +2% step
	assert.InDelta(t, 2.0, float64(percent), 1e-9)
	assert.InDelta(t, 0.02, controller.ThrottleSelected(), 1e-12)
}

func TestDesiredThrottle_ClimbLeverAccumulatesAcrossSteps(t *testing.T) {
	// GIVEN
	controller := NewDefaultController()
	axis := controlparams.NewThrottleAxis(12030)

	// WHEN stepping repeatedly with thrust still far below target
	for i := 0; i < 10; i++ {
		controller.DesiredThrottle(axis, controlparams.ModeClimb, seaLevelReadings(0), tick)
	}

	// THEN the lever has walked up by at most 2% per step
	assert.InDelta(t, 0.20, controller.ThrottleSelected(), 1e-9)
}

func TestDesiredThrottle_CruiseMapsLeverOverCruiseRange(t *testing.T) {
	// GIVEN a lever at the top of the cruise band
	controller := NewDefaultController()
	axis := controlparams.NewThrottleAxis(9060)

	// WHEN
	thrust, percent := controller.DesiredThrottle(
		axis, controlparams.ModeCruise, seaLevelReadings(1500), tick)

	// THEN the command is the continuous efficiency limit
	assert.InDelta(t, 93.0, float64(percent), 1e-9)
	assert.InDelta(t, 0.93*3600, float64(thrust), 1e-6)
	assert.Equal(t, axis.Ratio(), controller.ThrottleSelected())
}

func TestDesiredThrottle_UndefinedBehavesLikeCruise(t *testing.T) {
	// GIVEN a lever at the aft stop
	controller := NewDefaultController()
	axis := controlparams.NewThrottleAxis(controlparams.AxisMin)

	// WHEN
	thrust, percent := controller.DesiredThrottle(
		axis, controlparams.ModeUndefined, seaLevelReadings(0), tick)

	// THEN the engine is commanded to idle
	assert.Equal(t, controlparams.ThrottlePercent(0), percent)
	assert.Equal(t, controlparams.ThrustValue(0), thrust)
}

func TestDesiredThrottle_DisabledPassthroughCurve(t *testing.T) {
	// GIVEN a disengaged FADEC with the lever at mid travel
	controller := NewDefaultController()
	controller.SetEnabled(false)
	axis := controlparams.NewThrottleAxis(0)

	// WHEN
	thrust, percent := controller.DesiredThrottle(
		axis, controlparams.ModeClimb, seaLevelReadings(1500), tick)

	// THEN the command follows the exponential curve, 0.5^3.5 of full power
	assert.InDelta(t, 8.8388, float64(percent), 1e-3)
	assert.InDelta(t, 318.2, float64(thrust), 0.1)

	// AND the forward stop still reaches full power
	thrust, percent = controller.DesiredThrottle(
		controlparams.NewThrottleAxis(controlparams.AxisMax),
		controlparams.ModeClimb, seaLevelReadings(1500), tick)
	assert.Equal(t, controlparams.ThrottlePercent(100), percent)
	assert.Equal(t, controlparams.ThrustValue(3600), thrust)
}

func TestDesiredThrottle_PidStateSurvivesModeChanges(t *testing.T) {
	// GIVEN a climb with accumulated loop momentum
	loop := pid.NewIntegralZeroing(ClimbPidConfig())
	controller := NewController(loop)
	climbAxis := controlparams.NewThrottleAxis(12030)
	controller.DesiredThrottle(climbAxis, controlparams.ModeClimb, seaLevelReadings(2000), tick)
	retained := loop.RetainedError()
	assert.NotZero(t, retained)

	// WHEN the lever briefly drops to cruise and back
	controller.DesiredThrottle(
		controlparams.NewThrottleAxis(5000), controlparams.ModeCruise, seaLevelReadings(2000), tick)

	// THEN the momentum is still there for the next climb step
	assert.Equal(t, retained, loop.RetainedError())
}

func TestVisualThrottle_PinnedToDetents(t *testing.T) {
	// GIVEN
	controller := NewDefaultController()
	axis := controlparams.NewThrottleAxis(10000)

	// THEN detented modes pin the animation, manual modes track the
	// axis, and every published value is a percent of forward travel
	assert.Equal(t,
		controlparams.ThrottlePercent(controlparams.PercentMax),
		controller.VisualThrottle(controlparams.ModeTakeoff, axis))
	assert.InDelta(t, 86.712646484375,
		float64(controller.VisualThrottle(controlparams.ModeClimb, axis)), 1e-9)
	assert.InDelta(t, 80.517578125,
		float64(controller.VisualThrottle(controlparams.ModeCruise, axis)), 1e-9)
	assert.InDelta(t, 80.517578125,
		float64(controller.VisualThrottle(controlparams.ModeUndefined, axis)), 1e-9)
}
