package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Bitcoinera/aragon/routing"
)

// PrefsCmd parses the global-preferences portion of a search string
var PrefsCmd = &cobra.Command{
	Use:   "prefs <search>",
	Short: "Parse global preferences from a search string",
	Long: `Parse the global-preferences sub-path and shared-label payload from a
search string.

Examples:
  aragon prefs "?preferences=/network"
  aragon prefs "?preferences=/admin&labels=xyz"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs := routing.ParsePreferences(args[0])

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			output, err := json.MarshalIndent(prefs, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return nil
		}

		out := cmd.OutOrStdout()
		if prefs.Path == "" {
			fmt.Fprintln(out, "Path: (none)")
		} else {
			fmt.Fprintf(out, "Path: %s\n", prefs.Path)
		}
		if labels, ok := prefs.Params[routing.LabelsMarker]; ok {
			fmt.Fprintf(out, "Labels: %s\n", labels)
		}
		return nil
	},
}
