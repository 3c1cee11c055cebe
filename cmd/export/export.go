package export

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/jetforge/fadecd/internal/configuration"
	"github.com/jetforge/fadecd/internal/recorder"
	"github.com/jetforge/fadecd/internal/ui"
)

var outputPath string

var Command = &cobra.Command{
	Use:   "export",
	Short: "Flight data recorder related commands",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded flight data sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configuration.ReadConfigFile()
		pers := recorder.NewPersistence(configuration.CurrentConfig.DbPath)

		sessions, err := pers.Sessions()
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			ui.Info("No recorded sessions.")
			return nil
		}
		for _, session := range sessions {
			ui.Printfln("%s", session)
		}
		return nil
	},
}

var csvCmd = &cobra.Command{
	Use:   "csv <session>",
	Short: "Export a recorded session as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configuration.ReadConfigFile()
		pers := recorder.NewPersistence(configuration.CurrentConfig.DbPath)

		sessionId := args[0]
		sessions, err := pers.Sessions()
		if err != nil {
			return err
		}
		if !slices.Contains(sessions, sessionId) {
			return fmt.Errorf("no such session: %s", sessionId)
		}

		records, err := pers.LoadSession(sessionId)
		if err != nil {
			return err
		}

		path := outputPath
		if path == "" {
			path = sessionId + ".csv"
		}
		if err := recorder.ExportCSV(records, path); err != nil {
			return err
		}

		ui.Success("Exported %d records to %s", len(records), path)
		return nil
	},
}

func init() {
	csvCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default <session>.csv)")

	Command.AddCommand(listCmd)
	Command.AddCommand(csvCmd)
}
