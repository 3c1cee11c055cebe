package mode

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"

	"github.com/jetforge/fadecd/cmd/global"
	"github.com/jetforge/fadecd/internal/controlparams"
	"github.com/jetforge/fadecd/internal/ui"
)

var Command = &cobra.Command{
	Use:   "mode [axis]",
	Short: "Print the throttle mode bands, or classify a raw axis value",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			raw, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("not a valid axis value: %q", args[0])
			}

			axis := controlparams.NewThrottleAxis(raw)
			mode := controlparams.Classify(axis)
			ui.Printfln("%s -> %s", axis, mode)
			return nil
		}

		printBandTable()
		return nil
	},
}

func printBandTable() {
	formatAxis := func(value float64) string {
		return strconv.FormatFloat(value, 'f', 0, 64)
	}

	tab := table.Table{
		Headers: []string{"Mode", "Axis range", "Behavior"},
		Rows: [][]string{
			{
				controlparams.ModeUndefined.String(),
				fmt.Sprintf("%s .. %s", formatAxis(controlparams.AxisMin), formatAxis(controlparams.AxisUndefinedMax)),
				"lever commands thrust directly",
			},
			{
				controlparams.ModeCruise.String(),
				fmt.Sprintf("%s .. %s", formatAxis(controlparams.AxisUndefinedMax), formatAxis(controlparams.AxisCruiseMax)),
				"lever commands thrust directly",
			},
			{
				controlparams.ModeClimb.String(),
				fmt.Sprintf("%s .. %s", formatAxis(controlparams.AxisCruiseMax), formatAxis(controlparams.AxisClimbMax)),
				"closed loop holds the thrust schedule",
			},
			{
				controlparams.ModeTakeoff.String(),
				fmt.Sprintf("%s .. %s", formatAxis(controlparams.AxisClimbMax), formatAxis(controlparams.AxisMax)),
				"full rated power",
			},
		},
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
