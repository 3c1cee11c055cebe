package configuration

// PidStrategy selects the anti-windup behavior of the climb loop.
type PidStrategy string

const (
	// PidStrategyIntegralZeroing discards integral momentum on error
	// sign changes and supports a deadband.
	PidStrategyIntegralZeroing PidStrategy = "integral-zeroing"

	// PidStrategyWescott hard-clamps the integral accumulator and
	// computes the derivative on the plant value.
	PidStrategyWescott PidStrategy = "wescott"
)

type FadecConfig struct {
	// Enabled selects closed-loop control at startup. When false the
	// levers drive the engines through the passthrough curve until
	// re-enabled at runtime.
	Enabled bool `json:"enabled"`

	PidStrategy PidStrategy     `json:"pidStrategy"`
	Pid         PidTuningConfig `json:"pid"`
}

// PidTuningConfig carries the climb loop tuning. DerivativeLimit and
// Tolerance only apply to the integral-zeroing strategy,
// IntegralLimit only to the Wescott strategy.
type PidTuningConfig struct {
	GainProportion  float64 `json:"gainProportion"`
	GainIntegral    float64 `json:"gainIntegral"`
	GainDerivative  float64 `json:"gainDerivative"`
	OutputLimit     float64 `json:"outputLimit"`
	DerivativeLimit float64 `json:"derivativeLimit"`
	IntegralLimit   float64 `json:"integralLimit"`
	Tolerance       float64 `json:"tolerance"`
}
