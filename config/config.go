package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

type SeedConfig struct {
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
}

type EmergencyConfig struct {
	DispatchDelay time.Duration `mapstructure:"dispatch_delay"`
}

type PharmacyConfig struct {
	CatalogCacheTTL time.Duration `mapstructure:"catalog_cache_ttl"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Seed      SeedConfig      `mapstructure:"seed"`
	Emergency EmergencyConfig `mapstructure:"emergency"`
	Pharmacy  PharmacyConfig  `mapstructure:"pharmacy"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	LogLevel  string          `mapstructure:"log_level"`
}

// envOverrides are the settings operators most often set per deployment;
// they win over the config file.
type envOverrides struct {
	Port      int    `envconfig:"PORT"`
	JWTSecret string `envconfig:"JWT_SECRET"`
	DataDir   string `envconfig:"DATA_DIR"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 15*time.Second)
	viper.SetDefault("server.write_timeout", 15*time.Second)
	viper.SetDefault("jwt.expiry_hours", 24)
	viper.SetDefault("storage.data_dir", "data")
	viper.SetDefault("seed.admin_email", "admin@medic.com")
	viper.SetDefault("emergency.dispatch_delay", 2*time.Second)
	viper.SetDefault("pharmacy.catalog_cache_ttl", 5*time.Minute)
	viper.SetDefault("log_level", "info")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("medic", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if env.Port != 0 {
		cfg.Server.Port = env.Port
	}
	if env.JWTSecret != "" {
		cfg.JWT.Secret = env.JWTSecret
	}
	if env.DataDir != "" {
		cfg.Storage.DataDir = env.DataDir
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if cfg.Seed.AdminPassword == "" {
		return nil, fmt.Errorf("seed admin password is required")
	}

	return &cfg, nil
}
