package config

import (
	"github.com/spf13/viper"

	"github.com/Bitcoinera/aragon/routing"
)

// DefaultServerAddr is the resolver service listen address
const DefaultServerAddr = ":8700"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("ens_suffix", routing.AragonSuffix)

	// Registry defaults: builtins only, live reload on when a file is set
	v.SetDefault("registry.path", "")
	v.SetDefault("registry.watch", true)

	// Server defaults
	v.SetDefault("server.addr", DefaultServerAddr)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
}
