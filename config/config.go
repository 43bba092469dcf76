package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Store struct {
		// Backend selects the transaction store implementation: "rest" talks
		// to the managed table service, "postgres" goes straight to a database.
		Backend string `mapstructure:"backend"`
		URL     string `mapstructure:"url"`
		Key     string `mapstructure:"key"`
	} `mapstructure:"store"`
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
}

// Load reads configuration from an optional config.yml in path and from the
// environment (SERVER_PORT, STORE_BACKEND, STORE_URL, STORE_KEY, DATABASE_*).
// The returned struct is built once at startup and passed by reference; there
// is no package-level config state.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "3000")
	v.SetDefault("store.backend", "rest")
	v.SetDefault("store.url", "")
	v.SetDefault("store.key", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "expenses")

	// PORT is what the hosting platform sets.
	v.BindEnv("server.port", "PORT", "SERVER_PORT")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// HasStoreURL reports whether the store endpoint URL is configured. Only the
// presence is ever exposed, never the value.
func (c *Config) HasStoreURL() bool { return c.Store.URL != "" }

// HasStoreKey reports whether the store access key is configured.
func (c *Config) HasStoreKey() bool { return c.Store.Key != "" }
