package configuration

import "time"

type ControllerConfig struct {
	// UpdateRate limits how often lever commands are recomputed.
	// Instrument reads and input events still happen every tick.
	UpdateRate time.Duration `json:"updateRate"`

	// ThrustSmoothingSamples is the rolling window size for thrust
	// instrument readings. A value below 2 disables smoothing.
	ThrustSmoothingSamples int `json:"thrustSmoothingSamples"`
}
