package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application settings. RabbitMQ is optional: with an
// empty host the server runs without event publishing.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type RabbitMQConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

func (c RabbitMQConfig) Enabled() bool { return c.Host != "" }

// Load reads settings from the given YAML file with environment
// variables taking precedence (ORDIFY_SERVER_PORT, ORDIFY_RABBITMQ_HOST,
// ...). An empty path skips the file and uses defaults plus env.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.port", 3000)
	v.SetDefault("rabbitmq.port", 5672)
	v.SetDefault("rabbitmq.user", "guest")
	v.SetDefault("rabbitmq.password", "guest")

	v.SetEnvPrefix("ordify")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}
	return &cfg, nil
}
