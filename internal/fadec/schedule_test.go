package fadec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxDensityThrust(t *testing.T) {
	// GIVEN densities spanning sea level to cruise altitude
	for _, density := range []float64{0.00241899350658059, 0.00141899350658059} {
		// WHEN
		actual := MaxDensityThrust(density)

		// THEN
		assert.InDelta(t, density*1000*1351.6+250, actual, 1e-9)
	}
}

func TestGrossThrust(t *testing.T) {
	// GIVEN a static engine
	assert.Equal(t, 1000.0, GrossThrust(1000, 0))

	// THEN ram-drag compensation grows with Mach number
	assert.Greater(t, GrossThrust(1000, 0.3), 1000.0)
	assert.Greater(t, GrossThrust(1000, 0.6), GrossThrust(1000, 0.3))

	// AND the compensation factor at M0.6 is (1 + 0.36/5)^3.5
	assert.InDelta(t, 1275.5, GrossThrust(1000, 0.6), 0.1)
}

func TestTargetThrust_LowAltitudeSchedule(t *testing.T) {
	// GIVEN dense sea-level air
	density := 0.0023769

	// WHEN
	target := TargetThrust(density, 0)

	// THEN the target is the base plus the full low-altitude gain
	assert.InDelta(t, 2050+7000.0/24, target, 1e-6)

	// AND the gain fades out linearly up to the ceiling
	assert.InDelta(t, 2050+3500.0/24, TargetThrust(density, 3500), 1e-6)
	assert.InDelta(t, 2050, TargetThrust(density, 7000), 1e-6)
	assert.InDelta(t, 2050, TargetThrust(density, 20000), 1e-6)
}

func TestTargetThrust_DensityLimited(t *testing.T) {
	// GIVEN thin air at 35000 ft
	density := 0.0007382

	// WHEN
	target := TargetThrust(density, 35000)

	// THEN the target tracks the derated density limit instead of the schedule
	maxEffective := (density*1351600 + 250) * 0.93
	assert.InDelta(t, maxEffective, target, 1e-6)
	assert.Less(t, target, 2050.0)
}

func TestTargetThrust_HighAltitudeDerate(t *testing.T) {
	// GIVEN density-limited air
	density := 0.0005

	// WHEN climbing above the derate floor
	atFloor := TargetThrust(density, 35000)
	above := TargetThrust(density, 38200)
	far := TargetThrust(density, 60000)

	// THEN the derate grows at 1 pdl per 64 ft and caps at 110 pdl
	assert.InDelta(t, atFloor-3200.0/64, above, 1e-6)
	assert.InDelta(t, atFloor-110, far, 1e-6)
}

func TestTargetThrust_ContinuousAtScheduleBoundaries(t *testing.T) {
	// GIVEN
	density := 0.0023769

	// THEN no jump at the low-altitude ceiling
	assert.InDelta(t, TargetThrust(density, 6999.9), TargetThrust(density, 7000.1), 0.01)

	// AND no jump at the high-altitude derate floor
	thin := 0.0007
	assert.InDelta(t, TargetThrust(thin, 34999.9), TargetThrust(thin, 35000.1), 0.01)
}
