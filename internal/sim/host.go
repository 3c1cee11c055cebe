// Package sim abstracts the simulation variable store and throttle
// event stream the controller runs against.
package sim

import (
	"github.com/jetforge/fadecd/internal/controlparams"
	"github.com/jetforge/fadecd/internal/engines"
)

// Variable names in the simulation namespace. Indexed variables take a
// one-based engine index.
const (
	// VarThrust is the current net thrust of an engine in poundals (indexed).
	VarThrust = "TURB ENG JET THRUST"

	// VarThrottlePosition is the engine model's throttle lever input as
	// a percent (indexed, written by SendThrottleCommand).
	VarThrottlePosition = "GENERAL ENG THROTTLE LEVER POSITION"

	// VarVisualThrottle is the cockpit lever animation position as a
	// percent (indexed, display only).
	VarVisualThrottle = "THROTTLE LOWER LIMIT"

	// VarThrottleMode is the published throttle mode gauge value (indexed).
	VarThrottleMode = "THROTTLE MODE"

	// VarMach is the current flight Mach number.
	VarMach = "AIRSPEED MACH"

	// VarAmbientDensity is the ambient air density in slug/ft³.
	VarAmbientDensity = "AMBIENT DENSITY"

	// VarPressureAltitude is the pressure altitude in ft.
	VarPressureAltitude = "PRESSURE ALTITUDE"

	// VarOnGround indicates whether the aircraft is on the ground (0/1).
	VarOnGround = "SIM ON GROUND"
)

// Host is the connection to the running simulation: a variable store
// for instrument readings and published state, a throttle command sink
// and an intercepted input event stream.
//
// Implementations must be safe for use from a single control loop
// goroutine plus any number of concurrent readers.
type Host interface {
	// Read returns the current value of a global variable.
	Read(name string) (float64, error)

	// ReadIndexed returns the current value of a per-engine variable.
	ReadIndexed(name string, engine engines.Number) (float64, error)

	// SetNamed publishes a per-engine variable back to the simulation.
	SetNamed(name string, engine engines.Number, value float64) error

	// SendThrottleCommand forwards the computed lever positions for
	// both engines to the engine model in a single batch.
	SendThrottleCommand(levers engines.Data[controlparams.ThrottlePercent]) error

	// PollEvents drains and returns all throttle input events that
	// arrived since the last call, in arrival order. It never blocks.
	PollEvents() []Event
}
