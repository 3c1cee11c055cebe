package statistics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jetforge/fadecd/internal/controller"
	"github.com/jetforge/fadecd/internal/engines"
)

const engineSubsystem = "engine"

type EngineCollector struct {
	driver *controller.Driver

	throttleMode      *prometheus.Desc
	throttleAxis      *prometheus.Desc
	thrustTarget      *prometheus.Desc
	measuredThrust    *prometheus.Desc
	commandedThrottle *prometheus.Desc
	retainedError     *prometheus.Desc
}

func NewEngineCollector(driver *controller.Driver) *EngineCollector {
	return &EngineCollector{
		driver: driver,
		throttleMode: prometheus.NewDesc(prometheus.BuildFQName(namespace, engineSubsystem, "throttle_mode"),
			"Current throttle mode of this engine (0=undefined, 1=cruise, 2=climb, 3=takeoff)",
			[]string{"engine"}, nil,
		),
		throttleAxis: prometheus.NewDesc(prometheus.BuildFQName(namespace, engineSubsystem, "throttle_axis"),
			"Raw throttle lever axis position of this engine",
			[]string{"engine"}, nil,
		),
		thrustTarget: prometheus.NewDesc(prometheus.BuildFQName(namespace, engineSubsystem, "thrust_target_poundal"),
			"Thrust target commanded by the FADEC for this engine",
			[]string{"engine"}, nil,
		),
		measuredThrust: prometheus.NewDesc(prometheus.BuildFQName(namespace, engineSubsystem, "measured_thrust_poundal"),
			"Net thrust reported by the engine model",
			[]string{"engine"}, nil,
		),
		commandedThrottle: prometheus.NewDesc(prometheus.BuildFQName(namespace, engineSubsystem, "commanded_throttle_percent"),
			"Throttle lever position commanded to the engine model",
			[]string{"engine"}, nil,
		),
		retainedError: prometheus.NewDesc(prometheus.BuildFQName(namespace, engineSubsystem, "pid_retained_error"),
			"Integral accumulator of the climb thrust loop of this engine",
			[]string{"engine"}, nil,
		),
	}
}

func (collector *EngineCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.throttleMode
	ch <- collector.throttleAxis
	ch <- collector.thrustTarget
	ch <- collector.measuredThrust
	ch <- collector.commandedThrottle
	ch <- collector.retainedError
}

// Collect implements required collect function for all prometheus collectors
func (collector *EngineCollector) Collect(ch chan<- prometheus.Metric) {
	snapshot := collector.driver.Snapshot()
	snapshot.Engines.ForEach(func(n engines.Number, state controller.EngineState) {
		engineId := strconv.Itoa(n.SimIndex())
		ch <- prometheus.MustNewConstMetric(collector.throttleMode, prometheus.GaugeValue, state.Mode.GaugeValue(), engineId)
		ch <- prometheus.MustNewConstMetric(collector.throttleAxis, prometheus.GaugeValue, float64(state.Axis), engineId)
		ch <- prometheus.MustNewConstMetric(collector.thrustTarget, prometheus.GaugeValue, float64(state.ThrustTarget), engineId)
		ch <- prometheus.MustNewConstMetric(collector.measuredThrust, prometheus.GaugeValue, state.MeasuredThrust, engineId)
		ch <- prometheus.MustNewConstMetric(collector.commandedThrottle, prometheus.GaugeValue, float64(state.CommandedThrottle), engineId)
		ch <- prometheus.MustNewConstMetric(collector.retainedError, prometheus.GaugeValue, state.RetainedError, engineId)
	})
}
