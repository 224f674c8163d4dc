package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DatasetSourceFile     = "file"
	DatasetSourcePostgres = "postgres"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Database DatabaseConfig `yaml:"database"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address                string   `yaml:"address"`
	AllowedOrigins         []string `yaml:"allowed_origins"`
	ShutdownTimeoutSeconds int      `yaml:"shutdown_timeout_seconds"`
}

func (h HTTPConfig) ShutdownTimeout() time.Duration {
	return time.Duration(h.ShutdownTimeoutSeconds) * time.Second
}

type DatasetConfig struct {
	Source string `yaml:"source"`
	Path   string `yaml:"path"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type KafkaConfig struct {
	Brokers           []string `yaml:"brokers"`
	SearchEventsTopic string   `yaml:"search_events_topic"`
}

// Enabled reports whether search events should be published.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.SearchEventsTopic != ""
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.HTTP.ShutdownTimeoutSeconds == 0 {
		c.HTTP.ShutdownTimeoutSeconds = 5
	}
	if c.Dataset.Source == "" {
		c.Dataset.Source = DatasetSourceFile
	}
	if c.Dataset.Path == "" {
		c.Dataset.Path = "flights.json"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

func (c *Config) validate() error {
	switch c.Dataset.Source {
	case DatasetSourceFile, DatasetSourcePostgres:
	default:
		return fmt.Errorf("unknown dataset source %q", c.Dataset.Source)
	}
	return nil
}
