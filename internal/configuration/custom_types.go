package configuration

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// PidStrategyHookFunc returns a mapstructure decode hook that
// normalizes strategy names: case-insensitive, with "zeroing" and
// "integralzeroing" accepted as aliases for the integral-zeroing
// strategy.
func PidStrategyHookFunc() mapstructure.DecodeHookFuncType {
	strategyType := reflect.TypeOf(PidStrategy(""))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != strategyType {
			return data, nil
		}

		raw, ok := data.(string)
		if !ok {
			return data, nil
		}

		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "zeroing", "integralzeroing", "integral-zeroing", "integral_zeroing":
			return PidStrategyIntegralZeroing, nil
		case "wescott":
			return PidStrategyWescott, nil
		default:
			// leave unknown values for validation to reject
			return PidStrategy(raw), nil
		}
	}
}
