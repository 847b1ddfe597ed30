// Package config loads server settings from defaults, an optional
// hunt-ballistics.yaml file and HUNT_BALLISTICS_* environment variables.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

const (
	// EnvPrefix prefixes every environment override, e.g. HUNT_BALLISTICS_SERVER_PORT
	EnvPrefix = "HUNT_BALLISTICS"

	// FileName is the config file searched for in the config directory
	FileName = "hunt-ballistics"
)

// Keys
const (
	KeyServerPort     = "server.port"
	KeyLogLevel       = "log.level"
	KeyLogPretty      = "log.pretty"
	KeyCatalogPath    = "catalog.path"
	KeyCacheEnabled   = "cache.enabled"
	KeyCacheRedisAddr = "cache.redisAddr"
	KeyCacheTTL       = "cache.ttl"
)

// ServerConfig holds gRPC listener settings
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// CatalogConfig points at an alternative weapon catalog. Empty uses the
// embedded one.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// CacheConfig holds the lethality search cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	RedisAddr string        `mapstructure:"redisAddr"`
	TTL       time.Duration `mapstructure:"ttl"`
}

// Config is the full server configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

// SetDefaults registers the default value of every key on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyServerPort, 50051)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogPretty, false)
	v.SetDefault(KeyCatalogPath, "")
	v.SetDefault(KeyCacheEnabled, false)
	v.SetDefault(KeyCacheRedisAddr, "localhost:6379")
	v.SetDefault(KeyCacheTTL, "10m")
}

// Load reads configuration into a Config. A missing config file is not an
// error; a malformed one is. Pass a viper instance with flags already bound
// to let them take precedence, or nil for a fresh one.
func Load(v *viper.Viper, configDir string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configDir != "" {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)

		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "error reading config file")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "error decoding config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange(KeyServerPort, c.Server.Port, 1, 65535, vb)
	errors.ValidateEnum(KeyLogLevel, strings.ToLower(c.Log.Level),
		[]string{"trace", "debug", "info", "warn", "error"}, vb)
	if c.Cache.Enabled {
		errors.ValidateRequired(KeyCacheRedisAddr, c.Cache.RedisAddr, vb)
	}
	if c.Cache.TTL < 0 {
		vb.Fieldf(KeyCacheTTL, "must not be negative, got %s", c.Cache.TTL)
	}

	return vb.Build()
}
