package fadec

import (
	"math"

	"github.com/jetforge/fadecd/internal/util"
)

const (
	// baseThrust is the climb thrust target at the low-altitude
	// ceiling, in poundals.
	baseThrust = 2050.0

	// lowAltitudeCeiling is the altitude in ft below which the climb
	// target is raised to compensate for the engine model's low-level
	// behavior.
	lowAltitudeCeiling = 7000.0

	// lowAltitudeGainRate is the target gain in poundals per ft below
	// the ceiling.
	lowAltitudeGainRate = 1.0 / 24.0

	// highAltitudeFloor is the altitude in ft above which the
	// density-limited target is further derated.
	highAltitudeFloor = 35000.0

	// highAltitudeLossRate is the derate in poundals per ft above the floor.
	highAltitudeLossRate = 1.0 / 64.0

	// maxHighAltitudeLoss caps the high-altitude derate in poundals.
	maxHighAltitudeLoss = 110.0

	// densityThrustFactor converts ambient density in slug/ft³ to the
	// maximum thrust the engines can produce in that air, in poundals.
	densityThrustFactor = 1_351_600.0

	// densityThrustOffset is the residual thrust floor in poundals.
	densityThrustOffset = 250.0

	// thrustEfficiency is the fraction of the density-limited maximum
	// the engines sustain continuously.
	thrustEfficiency = 0.93
)

// GrossThrust converts the net thrust reported by the engine model, in
// poundals, to gross thrust by backing out the ram drag of the current
// Mach number.
func GrossThrust(netThrust float64, mach float64) float64 {
	return netThrust * math.Pow(1+mach*mach/5, 3.5)
}

// MaxDensityThrust returns the maximum gross thrust in poundals the
// engines can produce in air of the given density in slug/ft³.
func MaxDensityThrust(ambientDensity float64) float64 {
	return ambientDensity*densityThrustFactor + densityThrustOffset
}

// lowAltitudeThrustGain raises the climb target below the low-altitude
// ceiling, in poundals.
func lowAltitudeThrustGain(pressureAltitude float64) float64 {
	if pressureAltitude > lowAltitudeCeiling {
		return 0
	}
	return math.Max(0, (lowAltitudeCeiling-pressureAltitude)*lowAltitudeGainRate)
}

// highAltitudeThrustLoss derates the density-limited target above the
// high-altitude floor, in poundals.
func highAltitudeThrustLoss(pressureAltitude float64) float64 {
	if pressureAltitude < highAltitudeFloor {
		return 0
	}
	return util.Coerce((pressureAltitude-highAltitudeFloor)*highAltitudeLossRate, 0, maxHighAltitudeLoss)
}

// TargetThrust returns the climb-mode gross thrust target in poundals
// for the given ambient density in slug/ft³ and pressure altitude in
// ft. The target follows the fixed low-altitude schedule until the air
// becomes too thin to sustain it, then tracks the density limit.
func TargetThrust(ambientDensity float64, pressureAltitude float64) float64 {
	maxEffectiveThrust := MaxDensityThrust(ambientDensity) * thrustEfficiency
	lowAltitudeTarget := baseThrust + lowAltitudeThrustGain(pressureAltitude)

	if maxEffectiveThrust < lowAltitudeTarget {
		return maxEffectiveThrust - highAltitudeThrustLoss(pressureAltitude)
	}
	return lowAltitudeTarget
}
