package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	House   HouseConfig   `mapstructure:"house"`
	Summary SummaryConfig `mapstructure:"summary"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type HouseConfig struct {
	Name string `mapstructure:"name"`
	// Zero means unbounded. When a cap is set, additions beyond it fail with
	// an explicit error instead of being dropped.
	MaxParticipants int  `mapstructure:"max_participants"`
	MaxAuctions     int  `mapstructure:"max_auctions"`
	SeedDemoData    bool `mapstructure:"seed_demo_data"`
}

type SummaryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	CronSpec string `mapstructure:"cron_spec"`
}

func Load() (*Config, error) {
	// Set default values
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("house.name", "Auction House")
	viper.SetDefault("house.max_participants", 0)
	viper.SetDefault("house.max_auctions", 0)
	viper.SetDefault("house.seed_demo_data", false)
	viper.SetDefault("summary.enabled", true)
	viper.SetDefault("summary.cron_spec", "0 0 18 * * *")

	// Configuration file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/auction-house/")

	// Environment variable support
	viper.AutomaticEnv()

	// Environment variable mappings
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.host", "SERVER_HOST")
	viper.BindEnv("redis.enabled", "REDIS_ENABLED")
	viper.BindEnv("redis.address", "REDIS_ADDRESS")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")
	viper.BindEnv("house.name", "HOUSE_NAME")
	viper.BindEnv("house.max_participants", "HOUSE_MAX_PARTICIPANTS")
	viper.BindEnv("house.max_auctions", "HOUSE_MAX_AUCTIONS")
	viper.BindEnv("house.seed_demo_data", "HOUSE_SEED_DEMO_DATA")
	viper.BindEnv("summary.enabled", "SUMMARY_ENABLED")
	viper.BindEnv("summary.cron_spec", "SUMMARY_CRON_SPEC")

	// Read configuration file (optional - will use defaults/env vars if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found, continue with defaults and environment variables
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// GetConfigString returns a formatted string representation of the config
func (c *Config) GetConfigString() string {
	return fmt.Sprintf(
		"Server: %s:%d, Redis enabled: %t, House: %s",
		c.Server.Host,
		c.Server.Port,
		c.Redis.Enabled,
		c.House.Name,
	)
}
