// Package atmosphere models the International Standard Atmosphere in
// imperial aviation units: feet for altitude, degrees Rankine for
// temperature, pounds per square foot for pressure and slugs per cubic
// foot for density.
package atmosphere

import "math"

const (
	// SeaLevelTemperature is the standard day temperature in °R (15 °C).
	SeaLevelTemperature = 518.67

	// SeaLevelPressure is the standard day static pressure in lbf/ft².
	SeaLevelPressure = 2116.22

	// SeaLevelDensity is the standard day air density in slug/ft³.
	SeaLevelDensity = 0.0023769

	// TropopauseAltitude is the top of the troposphere in ft.
	TropopauseAltitude = 36089.24

	// temperatureLapseRate is the tropospheric lapse in °R per ft.
	temperatureLapseRate = 0.0035662

	// specificGasConstant for dry air in ft·lbf/(slug·°R).
	specificGasConstant = 1716.59

	// gravity is standard gravitational acceleration in ft/s².
	gravity = 32.17405

	// pressureExponent is gravity / (lapse rate * gas constant).
	pressureExponent = gravity / (temperatureLapseRate * specificGasConstant)
)

// Temperature returns the standard day temperature in °R at the given
// pressure altitude in ft. Above the tropopause the temperature is
// isothermal.
func Temperature(altitude float64) float64 {
	if altitude >= TropopauseAltitude {
		return SeaLevelTemperature - temperatureLapseRate*TropopauseAltitude
	}
	return SeaLevelTemperature - temperatureLapseRate*altitude
}

// Pressure returns the standard day static pressure in lbf/ft² at the
// given pressure altitude in ft.
func Pressure(altitude float64) float64 {
	if altitude >= TropopauseAltitude {
		tropopausePressure := SeaLevelPressure *
			math.Pow(Temperature(TropopauseAltitude)/SeaLevelTemperature, pressureExponent)
		scale := -gravity * (altitude - TropopauseAltitude) /
			(specificGasConstant * Temperature(altitude))
		return tropopausePressure * math.Exp(scale)
	}
	return SeaLevelPressure * math.Pow(Temperature(altitude)/SeaLevelTemperature, pressureExponent)
}

// Density returns the standard day air density in slug/ft³ at the
// given pressure altitude in ft, via the ideal gas law.
func Density(altitude float64) float64 {
	return Pressure(altitude) / (specificGasConstant * Temperature(altitude))
}

// PressureAltitude inverts Pressure for tropospheric pressures: it
// returns the standard day altitude in ft at which the given static
// pressure in lbf/ft² occurs.
func PressureAltitude(pressure float64) float64 {
	return (SeaLevelTemperature / temperatureLapseRate) *
		(1 - math.Pow(pressure/SeaLevelPressure, 1/pressureExponent))
}

// SpeedOfSound returns the speed of sound in ft/s at the given
// pressure altitude in ft.
func SpeedOfSound(altitude float64) float64 {
	// gamma = 1.4 for dry air
	return math.Sqrt(1.4 * specificGasConstant * Temperature(altitude))
}
