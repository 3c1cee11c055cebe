package configuration

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func reflectTypeOfStrategy() reflect.Type {
	return reflect.TypeOf(PidStrategy(""))
}

func reflectTypeOfString() reflect.Type {
	return reflect.TypeOf("")
}

func validConfig() Configuration {
	return Configuration{
		DbPath: "/tmp/fadecd.db",
		Fadec: FadecConfig{
			Enabled:     true,
			PidStrategy: PidStrategyIntegralZeroing,
			Pid: PidTuningConfig{
				GainProportion:  0.012 / 1000,
				GainIntegral:    0.000001,
				GainDerivative:  0.018 / 1000,
				OutputLimit:     0.02,
				DerivativeLimit: 0.20,
				IntegralLimit:   100,
				Tolerance:       0,
			},
		},
		Controller: ControllerConfig{
			UpdateRate:             50 * time.Millisecond,
			ThrustSmoothingSamples: 10,
		},
		Recorder: RecorderConfig{
			Enabled:      true,
			MaxSessions:  10,
			SnapshotRate: time.Second,
		},
		Api:        ApiConfig{Enabled: true, Host: "localhost", Port: 9612},
		Statistics: StatisticsConfig{Enabled: true, Port: 9613},
	}
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	// GIVEN
	config := validConfig()

	// WHEN
	err := Validate(&config)

	// THEN
	assert.NoError(t, err)
}

func TestValidate_RejectsUnknownStrategy(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Fadec.PidStrategy = "fuzzy-logic"

	// WHEN
	err := Validate(&config)

	// THEN
	assert.ErrorContains(t, err, "unknown pid strategy")
}

func TestValidate_RejectsNonPositiveOutputLimit(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Fadec.Pid.OutputLimit = 0

	// WHEN
	err := Validate(&config)

	// THEN
	assert.ErrorContains(t, err, "output limit")
}

func TestValidate_StrategySpecificLimits(t *testing.T) {
	// GIVEN a wescott config without an integral limit
	config := validConfig()
	config.Fadec.PidStrategy = PidStrategyWescott
	config.Fadec.Pid.IntegralLimit = 0

	// WHEN / THEN
	assert.ErrorContains(t, Validate(&config), "integral limit")

	// AND the derivative limit is not required for wescott
	config.Fadec.Pid.IntegralLimit = 100
	config.Fadec.Pid.DerivativeLimit = 0
	assert.NoError(t, Validate(&config))
}

func TestValidate_RejectsNonPositiveUpdateRate(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Controller.UpdateRate = 0

	// WHEN
	err := Validate(&config)

	// THEN
	assert.ErrorContains(t, err, "update rate")
}

func TestValidate_RecorderChecksOnlyWhenEnabled(t *testing.T) {
	// GIVEN a disabled recorder with a broken config
	config := validConfig()
	config.Recorder.Enabled = false
	config.Recorder.MaxSessions = 0

	// WHEN / THEN
	assert.NoError(t, Validate(&config))

	// AND the same config fails once enabled
	config.Recorder.Enabled = true
	assert.ErrorContains(t, Validate(&config), "maxSessions")
}

func TestValidate_RejectsPortCollision(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Statistics.Port = config.Api.Port

	// WHEN
	err := Validate(&config)

	// THEN
	assert.ErrorContains(t, err, "collides")
}

func TestPidStrategyHookFunc_NormalizesAliases(t *testing.T) {
	// GIVEN
	hook := PidStrategyHookFunc()
	strategyType := reflectTypeOfStrategy()

	for input, expected := range map[string]PidStrategy{
		"wescott":          PidStrategyWescott,
		"Wescott":          PidStrategyWescott,
		"zeroing":          PidStrategyIntegralZeroing,
		"integral-zeroing": PidStrategyIntegralZeroing,
		"INTEGRAL_ZEROING": PidStrategyIntegralZeroing,
	} {
		// WHEN
		decoded, err := hook(reflectTypeOfString(), strategyType, input)

		// THEN
		assert.NoError(t, err)
		assert.Equal(t, expected, decoded, "input %q", input)
	}
}

func TestPidStrategyHookFunc_PassesUnknownValuesThrough(t *testing.T) {
	// GIVEN
	hook := PidStrategyHookFunc()

	// WHEN
	decoded, err := hook(reflectTypeOfString(), reflectTypeOfStrategy(), "fuzzy")

	// THEN validation gets to see the raw value
	assert.NoError(t, err)
	assert.Equal(t, PidStrategy("fuzzy"), decoded)
}
