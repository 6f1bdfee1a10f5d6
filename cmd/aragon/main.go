package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Bitcoinera/aragon/cmd/aragon/commands"
	"github.com/Bitcoinera/aragon/logger"
)

var rootCmd = &cobra.Command{
	Use:   "aragon",
	Short: "Aragon dashboard URL tooling",
	Long: `Aragon dashboard URL tooling.

Converts dashboard URLs to and from structured locators: onboarding
landing, setup wizard, and organization dashboard navigations.

Available commands:
  parse   - Parse a pathname (and optional search) into a locator
  build   - Build the canonical path for an organization and app
  prefs   - Parse the global-preferences portion of a search string
  serve   - Start the HTTP locator/redirect service

Examples:
  aragon parse /mydao/voting            # Classify a navigation path
  aragon build mydao.aragonid.eth voting
  aragon prefs "?preferences=/network&labels=xyz"
  aragon serve                          # Start the resolver service`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		verbosity, _ := cmd.Flags().GetCount("verbose")
		level := logger.VerbosityToLevel(verbosity)
		if err := logger.InitializeWithLevel(jsonOutput, level); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (-v, -vv)")

	rootCmd.AddCommand(commands.ParseCmd)
	rootCmd.AddCommand(commands.BuildCmd)
	rootCmd.AddCommand(commands.PrefsCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
