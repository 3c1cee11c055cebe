package configuration

import "fmt"

func Validate(config *Configuration) error {
	if err := validateFadec(config); err != nil {
		return err
	}
	if err := validateController(config); err != nil {
		return err
	}
	if err := validateRecorder(config); err != nil {
		return err
	}
	return validatePorts(config)
}

func validateFadec(config *Configuration) error {
	switch config.Fadec.PidStrategy {
	case PidStrategyIntegralZeroing, PidStrategyWescott:
	default:
		return fmt.Errorf("fadec: unknown pid strategy %q", config.Fadec.PidStrategy)
	}

	pid := config.Fadec.Pid
	if pid.OutputLimit <= 0 {
		return fmt.Errorf("fadec: pid output limit must be positive, got %f", pid.OutputLimit)
	}
	if config.Fadec.PidStrategy == PidStrategyIntegralZeroing && pid.DerivativeLimit <= 0 {
		return fmt.Errorf("fadec: pid derivative limit must be positive, got %f", pid.DerivativeLimit)
	}
	if config.Fadec.PidStrategy == PidStrategyWescott && pid.IntegralLimit <= 0 {
		return fmt.Errorf("fadec: pid integral limit must be positive, got %f", pid.IntegralLimit)
	}
	if pid.Tolerance < 0 {
		return fmt.Errorf("fadec: pid tolerance must not be negative, got %f", pid.Tolerance)
	}
	return nil
}

func validateController(config *Configuration) error {
	if config.Controller.UpdateRate <= 0 {
		return fmt.Errorf("controller: update rate must be positive, got %s", config.Controller.UpdateRate)
	}
	if config.Controller.ThrustSmoothingSamples < 0 {
		return fmt.Errorf("controller: thrust smoothing samples must not be negative, got %d",
			config.Controller.ThrustSmoothingSamples)
	}
	return nil
}

func validateRecorder(config *Configuration) error {
	if !config.Recorder.Enabled {
		return nil
	}
	if config.DbPath == "" {
		return fmt.Errorf("recorder: dbPath must be set when the recorder is enabled")
	}
	if config.Recorder.MaxSessions < 1 {
		return fmt.Errorf("recorder: maxSessions must be at least 1, got %d", config.Recorder.MaxSessions)
	}
	if config.Recorder.SnapshotRate <= 0 {
		return fmt.Errorf("recorder: snapshot rate must be positive, got %s", config.Recorder.SnapshotRate)
	}
	return nil
}

func validatePorts(config *Configuration) error {
	if config.Api.Enabled {
		if config.Api.Port < 1 || config.Api.Port > 65535 {
			return fmt.Errorf("api: invalid port %d", config.Api.Port)
		}
	}
	if config.Statistics.Enabled {
		if config.Statistics.Port < 1 || config.Statistics.Port > 65535 {
			return fmt.Errorf("statistics: invalid port %d", config.Statistics.Port)
		}
		if config.Api.Enabled && config.Api.Port == config.Statistics.Port {
			return fmt.Errorf("statistics: port %d collides with the api port", config.Statistics.Port)
		}
	}
	return nil
}
