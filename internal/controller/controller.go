// Package controller drives both engine FADECs against a simulation
// host: it drains throttle input events, reads the instruments,
// advances each engine's control loop and forwards the resulting
// lever commands.
package controller

import (
	"context"
	"sync"
	"time"

	"github.com/jetforge/fadecd/internal/controlparams"
	"github.com/jetforge/fadecd/internal/engines"
	"github.com/jetforge/fadecd/internal/fadec"
	"github.com/jetforge/fadecd/internal/sim"
	"github.com/jetforge/fadecd/internal/ui"
)

// EngineState is the published outcome of the most recent control
// step for one engine.
type EngineState struct {
	Mode              controlparams.ThrottleMode    `json:"mode"`
	Axis              controlparams.ThrottleAxis    `json:"axis"`
	ThrustTarget      controlparams.ThrustValue     `json:"thrustTarget"`
	MeasuredThrust    float64                       `json:"measuredThrust"`
	CommandedThrottle controlparams.ThrottlePercent `json:"commandedThrottle"`
	VisualThrottle    controlparams.ThrottlePercent `json:"visualThrottle"`
	RetainedError     float64                       `json:"retainedError"`
	FadecEnabled      bool                          `json:"fadecEnabled"`
}

// Snapshot is the full published outcome of the most recent control
// step: the instrument readings the step consumed, the elapsed
// interval it integrated over and the resulting per-engine state.
type Snapshot struct {
	Dt               time.Duration `json:"dt"`
	Mach             float64       `json:"mach"`
	AmbientDensity   float64       `json:"ambientDensity"`
	PressureAltitude float64       `json:"pressureAltitude"`

	Engines engines.Data[EngineState]
}

// Driver owns the control loop for both engines.
type Driver struct {
	host       sim.Host
	fadecs     engines.Data[*fadec.Controller]
	updateRate time.Duration

	axes       engines.Data[controlparams.ThrottleAxis]
	lastUpdate time.Time

	stateMu sync.Mutex
	state   Snapshot
}

// NewDriver creates a driver with both levers at the aft stop.
// updateRate limits how often lever commands are recomputed.
func NewDriver(host sim.Host, fadecs engines.Data[*fadec.Controller], updateRate time.Duration) *Driver {
	return &Driver{
		host:       host,
		fadecs:     fadecs,
		updateRate: updateRate,
		axes:       engines.New(controlparams.NewThrottleAxis(controlparams.AxisMin)),
	}
}

// Run executes the control loop until the context is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	// Poll faster than the command rate so input events are folded in
	// promptly; step itself enforces the command rate limit.
	pollRate := d.updateRate / 4
	if pollRate < time.Millisecond {
		pollRate = time.Millisecond
	}
	tick := time.NewTicker(pollRate)
	defer tick.Stop()

	d.lastUpdate = time.Now()

	for {
		select {
		case <-ctx.Done():
			ui.Info("Stopping FADEC control loop...")
			return nil
		case now := <-tick.C:
			d.step(now)
		}
	}
}

// step advances both engines by one control interval. All pending
// input events are folded into the lever axes first so the step sees
// the final lever positions, then the loop runs with the true elapsed
// time since the last step.
func (d *Driver) step(now time.Time) {
	sim.ApplyAll(d.host.PollEvents(), &d.axes)

	dt := now.Sub(d.lastUpdate)
	if dt < d.updateRate {
		return
	}

	// lastUpdate only advances once a step completes, so an interval
	// lost to a failed instrument read is integrated into the dt of
	// the next successful step instead of vanishing from the loop.
	mach, err := d.host.Read(sim.VarMach)
	if err != nil {
		ui.Warning("Skipping control step, unable to read mach number: %v", err)
		return
	}
	density, err := d.host.Read(sim.VarAmbientDensity)
	if err != nil {
		ui.Warning("Skipping control step, unable to read ambient density: %v", err)
		return
	}
	altitude, err := d.host.Read(sim.VarPressureAltitude)
	if err != nil {
		ui.Warning("Skipping control step, unable to read pressure altitude: %v", err)
		return
	}

	// All reads happen before any loop steps so a failed read cannot
	// leave one engine's controller stepped and the other's not.
	var thrusts engines.Data[float64]
	for _, n := range engines.Numbers() {
		thrust, err := d.host.ReadIndexed(sim.VarThrust, n)
		if err != nil {
			ui.Warning("Skipping control step, unable to read thrust of %s: %v", n, err)
			return
		}
		thrusts.Set(n, thrust)
	}

	var levers engines.Data[controlparams.ThrottlePercent]
	var nextState engines.Data[EngineState]

	for _, n := range engines.Numbers() {
		axis := d.axes.Get(n)
		mode := controlparams.Classify(axis)
		controller := d.fadecs.Get(n)
		thrust := thrusts.Get(n)

		readings := fadec.Readings{
			Thrust:           thrust,
			Mach:             mach,
			AmbientDensity:   density,
			PressureAltitude: altitude,
		}

		target, command := controller.DesiredThrottle(axis, mode, readings, dt)
		visual := controller.VisualThrottle(mode, axis)

		levers.Set(n, command)
		nextState.Set(n, EngineState{
			Mode:              mode,
			Axis:              axis,
			ThrustTarget:      target,
			MeasuredThrust:    thrust,
			CommandedThrottle: command,
			VisualThrottle:    visual,
			RetainedError:     controller.RetainedError(),
			FadecEnabled:      controller.Enabled(),
		})
	}

	d.lastUpdate = now

	if err := d.host.SendThrottleCommand(levers); err != nil {
		ui.Warning("Unable to send throttle command: %v", err)
	}

	nextState.ForEach(func(n engines.Number, state EngineState) {
		if err := d.host.SetNamed(sim.VarVisualThrottle, n, float64(state.VisualThrottle)); err != nil {
			ui.Warning("Unable to publish visual throttle of %s: %v", n, err)
		}
		if err := d.host.SetNamed(sim.VarThrottleMode, n, state.Mode.GaugeValue()); err != nil {
			ui.Warning("Unable to publish throttle mode of %s: %v", n, err)
		}
	})

	d.stateMu.Lock()
	d.state = Snapshot{
		Dt:               dt,
		Mach:             mach,
		AmbientDensity:   density,
		PressureAltitude: altitude,
		Engines:          nextState,
	}
	d.stateMu.Unlock()
}

// Snapshot returns the published state of both engines as of the most
// recent control step.
func (d *Driver) Snapshot() Snapshot {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	return d.state
}

// SetFadecEnabled switches both FADECs between closed-loop control
// and the passthrough lever curve.
func (d *Driver) SetFadecEnabled(enabled bool) {
	d.fadecs.ForEach(func(n engines.Number, controller *fadec.Controller) {
		controller.SetEnabled(enabled)
	})
	ui.Info("FADEC enabled: %t", enabled)
}

// FadecEnabled reports whether closed-loop control is active.
func (d *Driver) FadecEnabled() bool {
	return d.fadecs.Get(engines.Engine1).Enabled()
}
