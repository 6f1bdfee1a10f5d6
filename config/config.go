// Package config loads the dashboard routing configuration via Viper,
// merging defaults, TOML config files, and ARAGON_* environment variables.
package config

// Config is the module's configuration.
type Config struct {
	// ENSSuffix is the name-service domain appended to bare organization labels
	ENSSuffix string `mapstructure:"ens_suffix"`

	Registry RegistryConfig `mapstructure:"registry"`
	Server   ServerConfig   `mapstructure:"server"`
}

// RegistryConfig configures the application registry source.
type RegistryConfig struct {
	// Path is a TOML registry file merged over the builtin system apps.
	// Empty means builtins only.
	Path string `mapstructure:"path"`

	// Watch enables live reload of the registry file
	Watch bool `mapstructure:"watch"`
}

// ServerConfig configures the resolver HTTP service.
type ServerConfig struct {
	// Addr is the listen address (host:port)
	Addr string `mapstructure:"addr"`

	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
