package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Bitcoinera/aragon/routing"
)

// ParseCmd classifies a navigation path into a locator
var ParseCmd = &cobra.Command{
	Use:   "parse <pathname> [search]",
	Short: "Parse a dashboard URL into a locator",
	Long: `Parse a pathname (and optional search string) into a structured locator.

The locator describes which application mode the URL addresses: the
onboarding landing page, the setup wizard, or an organization dashboard.

Examples:
  aragon parse /
  aragon parse /setup/2/foo
  aragon parse /mydao/voting "?p=%7B%22a%22%3A1%7D"
  aragon parse /mydao.aragonid.eth    # reports the canonical redirect`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pathname := args[0]
		search := ""
		if len(args) > 1 {
			search = args[1]
		}

		locator := routing.Parse(pathname, search)

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			output, err := json.MarshalIndent(locator, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return nil
		}

		printLocator(cmd, locator)
		return nil
	},
}

func printLocator(cmd *cobra.Command, locator *routing.Locator) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Mode: %s\n", locator.Mode)

	switch locator.Mode {
	case routing.ModeStart:
		if locator.Start.Action != "" {
			fmt.Fprintf(out, "Action: %s\n", locator.Start.Action)
		}
	case routing.ModeSetup:
		if locator.Setup.Step != "" {
			fmt.Fprintf(out, "Step: %s\n", locator.Setup.Step)
		}
		if len(locator.Setup.Parts) > 0 {
			fmt.Fprintf(out, "Parts: %s\n", strings.Join(locator.Setup.Parts, " "))
		}
	case routing.ModeOrg:
		fmt.Fprintf(out, "Organization: %s\n", locator.Org.DAO)
		fmt.Fprintf(out, "App: %s\n", locator.Org.InstanceID)
		if locator.Org.Params != nil {
			fmt.Fprintf(out, "Params: %s\n", *locator.Org.Params)
		}
		if len(locator.Org.Parts) > 0 {
			fmt.Fprintf(out, "Parts: %s\n", strings.Join(locator.Org.Parts, " "))
		}
		if locator.Org.Preferences.Path != "" {
			fmt.Fprintf(out, "Preferences: %s\n", locator.Org.Preferences.Path)
		}
	}

	if locator.Redirect != nil {
		fmt.Fprintf(out, "Redirect: %s%s\n", locator.Redirect.Pathname, locator.Redirect.Search)
	}
}
