package fadec

import (
	"fmt"

	"github.com/jetforge/fadecd/internal/configuration"
	"github.com/jetforge/fadecd/internal/pid"
)

// NewControllerFromConfig creates a controller with the configured
// strategy and tuning, honoring the configured enabled state.
func NewControllerFromConfig(config configuration.FadecConfig) (*Controller, error) {
	loop, err := newLoop(config)
	if err != nil {
		return nil, err
	}

	controller := NewController(loop)
	controller.SetEnabled(config.Enabled)
	return controller, nil
}

func newLoop(config configuration.FadecConfig) (pid.Controller, error) {
	tuning := config.Pid

	switch config.PidStrategy {
	case configuration.PidStrategyWescott:
		return pid.NewWescott(pid.WescottConfig{
			GainProportion: tuning.GainProportion,
			GainIntegral:   tuning.GainIntegral,
			GainDerivative: tuning.GainDerivative,
			OutputRange:    pid.Range{Min: -tuning.OutputLimit, Max: tuning.OutputLimit},
			IntegralRange:  pid.Range{Min: -tuning.IntegralLimit, Max: tuning.IntegralLimit},
		}), nil
	case configuration.PidStrategyIntegralZeroing:
		return pid.NewIntegralZeroing(pid.IntegralZeroingConfig{
			GainProportion:  tuning.GainProportion,
			GainIntegral:    tuning.GainIntegral,
			GainDerivative:  tuning.GainDerivative,
			OutputRange:     pid.Range{Min: -tuning.OutputLimit, Max: tuning.OutputLimit},
			DerivativeRange: pid.Range{Min: -tuning.DerivativeLimit, Max: tuning.DerivativeLimit},
			Tolerance:       tuning.Tolerance,
		}), nil
	default:
		return nil, fmt.Errorf("unknown pid strategy: %q", config.PidStrategy)
	}
}
