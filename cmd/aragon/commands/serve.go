package commands

import (
	"github.com/spf13/cobra"

	"github.com/Bitcoinera/aragon/apps"
	"github.com/Bitcoinera/aragon/config"
	"github.com/Bitcoinera/aragon/logger"
	"github.com/Bitcoinera/aragon/routing"
	"github.com/Bitcoinera/aragon/server"
)

// ServeCmd starts the HTTP locator/redirect service
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP locator service",
	Long: `Start the HTTP locator service.

The service parses dashboard URLs into locators, builds canonical paths,
and answers legacy suffixed-domain URLs with a permanent redirect to the
canonical short form. When a registry file is configured it is watched
for changes and reloaded live.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		registry, err := loadRegistry()
		if err != nil {
			return err
		}

		parser := routing.NewParser()
		parser.Suffix = cfg.ENSSuffix

		srv := server.New(cfg.Server, parser, registry)

		if cfg.Registry.Path != "" && cfg.Registry.Watch {
			watcher, err := apps.NewWatcher(cfg.Registry.Path)
			if err != nil {
				return err
			}
			defer watcher.Stop()

			watcher.OnReload(func(reloaded *apps.Registry) error {
				srv.SetRegistry(reloaded)
				return nil
			})
			watcher.Start()
			logger.Infow("Watching registry file",
				"path", cfg.Registry.Path)
		}

		return srv.Run()
	},
}

func init() {
	ServeCmd.Flags().String("addr", "", "Listen address (overrides config)")
}
