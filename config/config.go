package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Rail        RailConfig        `mapstructure:"rail"`
	Provisioner ProvisionerConfig `mapstructure:"provisioner"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// RailConfig holds credentials and endpoint for the payment rail.
// APIKey and EntitySecret are injected secrets, read-only for the process
// lifetime; the rail owns timeout and retry policy beyond Timeout here.
type RailConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	APIKey       string        `mapstructure:"api_key"`
	EntitySecret string        `mapstructure:"entity_secret"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// Validate checks that the rail credentials are present.
func (r RailConfig) Validate() error {
	if r.APIKey == "" {
		return fmt.Errorf("rail.api_key is required")
	}
	if r.EntitySecret == "" {
		return fmt.Errorf("rail.entity_secret is required")
	}
	return nil
}

// ProvisionerConfig controls multi-chain wallet provisioning.
type ProvisionerConfig struct {
	// PrimaryChain is the chain key the merchant wallet is created on first.
	PrimaryChain string `mapstructure:"primary_chain"`
	// SettleDelay is the wait after cross-chain fan-out for the rail's
	// asynchronous replication to converge.
	SettleDelay time.Duration `mapstructure:"settle_delay"`
	// Faucet requests testnet funds for the primary wallet after provisioning.
	Faucet bool `mapstructure:"faucet"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SPR_ (Stablecoin Payment Rail).
// Nested keys use underscore: SPR_DATABASE_HOST, SPR_RAIL_API_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "payment_rail")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("rail.base_url", "https://api.circle.com/v1/w3s")
	v.SetDefault("rail.api_key", "")
	v.SetDefault("rail.entity_secret", "")
	v.SetDefault("rail.timeout", "30s")
	v.SetDefault("provisioner.primary_chain", "ETH_SEPOLIA")
	v.SetDefault("provisioner.settle_delay", "2s")
	v.SetDefault("provisioner.faucet", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: SPR_RAIL_API_KEY -> rail.api_key
	v.SetEnvPrefix("SPR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
