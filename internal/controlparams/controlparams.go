package controlparams

import (
	"fmt"

	"github.com/jetforge/fadecd/internal/util"
)

// ThrottleMode is the FADEC operating regime selected by the physical
// position of the throttle lever. The lever detents carry the mode
// boundaries, so classification is a pure function of the axis value:
// there is no hysteresis and no memory. An axis value jittering around
// a band boundary will re-classify every tick; the physical detents of
// the real lever are what keep that from happening in practice.
type ThrottleMode int

const (
	ModeUndefined ThrottleMode = iota
	ModeCruise
	ModeClimb
	ModeTakeoff
)

func (m ThrottleMode) String() string {
	switch m {
	case ModeCruise:
		return "CRU"
	case ModeClimb:
		return "CLB"
	case ModeTakeoff:
		return "TO"
	default:
		return "UNDEF"
	}
}

// GaugeValue returns the numeric encoding of the mode used on the
// mode indicator channel (0=Undefined, 1=Cruise, 2=Climb, 3=Takeoff).
func (m ThrottleMode) GaugeValue() float64 {
	return float64(m)
}

// ThrottleAxis is the raw bidirectional lever position as delivered by
// the input axis, always within [AxisMin, AxisMax].
type ThrottleAxis float64

const (
	AxisMin float64 = -16384
	AxisMax float64 = 16384

	axisRange = AxisMax - AxisMin

	// AxisStep is the axis distance covered by a single
	// increase/decrease throttle input event.
	AxisStep float64 = 256

	// Mode band boundaries. A value is classified into the lowest band
	// whose upper boundary it does not exceed:
	// Undefined <= AxisUndefinedMax < Cruise <= AxisCruiseMax < Climb <= AxisClimbMax < Takeoff
	AxisUndefinedMax float64 = -15250
	AxisCruiseMax    float64 = 9060
	AxisClimbMax     float64 = 15000

	// AxisClimbDetent is the fixed lever position displayed while the
	// FADEC holds climb thrust, centered in the climb band.
	AxisClimbDetent = (AxisClimbMax-AxisCruiseMax)/2 + AxisCruiseMax

	// AxisTakeoffDetent is the fixed lever position displayed in takeoff mode.
	AxisTakeoffDetent = AxisMax
)

// NewThrottleAxis clamps the given raw axis value into the valid range.
func NewThrottleAxis(raw float64) ThrottleAxis {
	return ThrottleAxis(util.Coerce(raw, AxisMin, AxisMax))
}

// AxisFromInt32 converts a signed raw event value to an axis position.
func AxisFromInt32(raw int32) ThrottleAxis {
	return NewThrottleAxis(float64(raw))
}

// AxisFromUint32 converts an unsigned raw event value covering
// [0, 16384] to the full bidirectional axis range.
func AxisFromUint32(raw uint32) ThrottleAxis {
	return NewThrottleAxis(float64(raw)*2 + AxisMin)
}

// AxisFromRatio maps a [0..1] ratio onto the full axis range.
func AxisFromRatio(ratio float64) ThrottleAxis {
	return NewThrottleAxis(ratio*axisRange + AxisMin)
}

// Inc advances the axis by one throttle step.
func (a ThrottleAxis) Inc() ThrottleAxis {
	return NewThrottleAxis(float64(a) + AxisStep)
}

// Dec retards the axis by one throttle step.
func (a ThrottleAxis) Dec() ThrottleAxis {
	return NewThrottleAxis(float64(a) - AxisStep)
}

// Ratio normalizes the axis position against the full axis range to [0..1].
func (a ThrottleAxis) Ratio() float64 {
	return util.Ratio(float64(a), AxisMin, AxisMax)
}

// NormalizeCruise normalizes the axis position against the cruise
// sub-range only. Values above the cruise band yield ratios > 1.
func (a ThrottleAxis) NormalizeCruise() float64 {
	return util.Ratio(float64(a), AxisMin, AxisCruiseMax)
}

func (a ThrottleAxis) String() string {
	return fmt.Sprintf("%.1f", float64(a))
}

// Classify maps a lever axis position to its throttle mode by strict
// threshold comparison. Total over the whole axis range and monotonic
// non-decreasing in mode ordinal as the axis increases.
func Classify(axis ThrottleAxis) ThrottleMode {
	value := float64(axis)
	switch {
	case value > AxisClimbMax:
		return ModeTakeoff
	case value > AxisCruiseMax:
		return ModeClimb
	case value > AxisUndefinedMax:
		return ModeCruise
	default:
		return ModeUndefined
	}
}

// ThrottlePercent is the engine-facing commanded throttle value in [0, 100].
type ThrottlePercent float64

const (
	PercentMin float64 = 0
	PercentMax float64 = 100
)

// NewThrottlePercent clamps the given percent value into [0, 100].
func NewThrottlePercent(value float64) ThrottlePercent {
	return ThrottlePercent(util.Coerce(value, PercentMin, PercentMax))
}

// PercentFromRatio converts a [0..1] ratio to a clamped throttle percent.
func PercentFromRatio(ratio float64) ThrottlePercent {
	return NewThrottlePercent(ratio * PercentMax)
}

// Ratio converts the percent back to a [0..1] ratio.
func (p ThrottlePercent) Ratio() float64 {
	return float64(p) / PercentMax
}

func (p ThrottlePercent) String() string {
	return fmt.Sprintf("%.3f pct", float64(p))
}

// ThrustValue is a physical thrust magnitude in poundals, clamped to
// the engine's rated range [0, 3600].
type ThrustValue float64

const (
	ThrustMin float64 = 0
	ThrustMax float64 = 3600

	thrustRange = ThrustMax - ThrustMin
)

// NewThrustValue clamps the given thrust in poundals to the valid range.
func NewThrustValue(poundals float64) ThrustValue {
	return ThrustValue(util.Coerce(poundals, ThrustMin, ThrustMax))
}

// ThrustFromRatio maps a [0..1] ratio onto the thrust range.
func ThrustFromRatio(ratio float64) ThrustValue {
	return NewThrustValue(ratio*thrustRange + ThrustMin)
}

// Ratio normalizes the thrust against the full thrust range to [0..1].
func (t ThrustValue) Ratio() float64 {
	return util.Ratio(float64(t), ThrustMin, ThrustMax)
}

func (t ThrustValue) String() string {
	return fmt.Sprintf("%.3f pdl", float64(t))
}
