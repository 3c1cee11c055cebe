package curve

import (
	"bytes"
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"

	"github.com/jetforge/fadecd/cmd/global"
	"github.com/jetforge/fadecd/internal/atmosphere"
	"github.com/jetforge/fadecd/internal/fadec"
	"github.com/jetforge/fadecd/internal/ui"
)

const (
	graphMaxAltitude  = 45000.0
	graphAltitudeStep = 500.0
)

var Command = &cobra.Command{
	Use:   "curve",
	Short: "Print the climb thrust schedule over altitude to console",
	Run: func(cmd *cobra.Command, args []string) {
		printScheduleTable()
		printScheduleGraph()
	},
}

func printScheduleTable() {
	rows := [][]string{}
	for _, altitude := range []float64{0, 7000, 15000, 25000, 35000, 41000} {
		density := atmosphere.Density(altitude)
		target := fadec.TargetThrust(density, altitude)
		rows = append(rows, []string{
			fmt.Sprintf("%.0f ft", altitude),
			fmt.Sprintf("%.5f slug/ft3", density),
			fmt.Sprintf("%.1f pdl", target),
		})
	}

	tab := table.Table{
		Headers: []string{"Altitude", "Density (standard day)", "Thrust target"},
		Rows:    rows,
	}
	var buf bytes.Buffer
	tableErr := tab.WriteTable(&buf, &table.Config{
		ShowIndex:       false,
		Color:           !global.NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	})
	if tableErr != nil {
		panic(tableErr)
	}
	ui.Printfln(buf.String())
}

func printScheduleGraph() {
	var values []float64
	for altitude := 0.0; altitude <= graphMaxAltitude; altitude += graphAltitudeStep {
		values = append(values, fadec.TargetThrust(atmosphere.Density(altitude), altitude))
	}

	caption := fmt.Sprintf("Thrust target (pdl) / Altitude (0..%.0f ft)", graphMaxAltitude)
	graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
	ui.Printfln(graph)
}
