package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Bitcoinera/aragon/apps"
	"github.com/Bitcoinera/aragon/config"
	"github.com/Bitcoinera/aragon/routing"
)

// BuildCmd builds the canonical path for an organization and app
var BuildCmd = &cobra.Command{
	Use:   "build <dao> [instance-id]",
	Short: "Build the canonical path for an organization",
	Long: `Build the canonical dashboard path for an organization and an optional
application instance. Suffixed domains are shortened to their bare label;
registered system apps use their canonical route segment.

Examples:
  aragon build mydao.aragonid.eth            # /mydao/
  aragon build mydao.aragonid.eth voting     # /mydao/voting
  aragon build mydao.aragonid.eth voting --params '{"a":1}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := routing.OrgFields{DAO: args[0]}
		if len(args) > 1 {
			fields.InstanceID = args[1]
		}
		if cmd.Flags().Changed("params") {
			params, _ := cmd.Flags().GetString("params")
			fields.Params = &params
		}

		registry, err := loadRegistry()
		if err != nil {
			return err
		}

		builder := routing.NewBuilder(registry)
		fmt.Fprintln(cmd.OutOrStdout(), builder.BuildPath(fields))
		return nil
	},
}

func init() {
	BuildCmd.Flags().String("params", "", "Opaque app parameter blob to percent-encode into the path")
}

// loadRegistry resolves the application registry from configuration:
// the configured TOML file merged over the builtins, or builtins only.
func loadRegistry() (*apps.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.Registry.Path == "" {
		return apps.Builtin(), nil
	}
	return apps.LoadFile(cfg.Registry.Path)
}
