package recorder

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/natefinch/atomic"
)

var csvHeader = []string{
	"timestamp", "dt", "mach", "ambient_density", "pressure_altitude",
	"engine1_mode", "engine1_axis", "engine1_thrust_target",
	"engine1_measured_thrust", "engine1_commanded_throttle", "engine1_visual_throttle",
	"engine2_mode", "engine2_axis", "engine2_thrust_target",
	"engine2_measured_thrust", "engine2_commanded_throttle", "engine2_visual_throttle",
}

// ExportCSV writes the given records to the given path as CSV. The
// file is replaced atomically so a partially written export can never
// be observed.
func ExportCSV(records []Record, path string) error {
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, record := range records {
		row := []string{
			record.Timestamp.UTC().Format(time.RFC3339Nano),
			fmt.Sprintf("%.4f", record.Dt),
			fmt.Sprintf("%.4f", record.Mach),
			fmt.Sprintf("%.7f", record.AmbientDensity),
			fmt.Sprintf("%.1f", record.PressureAltitude),
		}
		for _, engine := range []EngineRecord{record.Engine1, record.Engine2} {
			row = append(row,
				engine.Mode,
				fmt.Sprintf("%.1f", engine.Axis),
				fmt.Sprintf("%.3f", engine.ThrustTarget),
				fmt.Sprintf("%.3f", engine.MeasuredThrust),
				fmt.Sprintf("%.4f", engine.CommandedThrottle),
				fmt.Sprintf("%.4f", engine.VisualThrottle),
			)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	return atomic.WriteFile(path, &buffer)
}
