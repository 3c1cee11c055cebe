package statistics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jetforge/fadecd/internal/controller"
)

const controllerSubsystem = "controller"

type ControllerCollector struct {
	driver *controller.Driver

	fadecEnabled *prometheus.Desc
}

func NewControllerCollector(driver *controller.Driver) *ControllerCollector {
	return &ControllerCollector{
		driver: driver,
		fadecEnabled: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "fadec_enabled"),
			"Whether closed-loop engine control is currently active (1) or the levers pass through directly (0)",
			nil, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.fadecEnabled
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	enabled := 0.0
	if collector.driver.FadecEnabled() {
		enabled = 1.0
	}
	ch <- prometheus.MustNewConstMetric(collector.fadecEnabled, prometheus.GaugeValue, enabled)
}
