package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Dataset source kinds.
const (
	SourceFile     = "file"
	SourceMinio    = "minio"
	SourcePostgres = "postgres"
	SourceMySQL    = "mysql"
)

type Config struct {
	Server struct {
		Host  string `yaml:"host"`
		Port  int    `yaml:"port"`
		Debug bool   `yaml:"debug"`
	} `yaml:"server"`

	Agent struct {
		APIKey  string        `yaml:"apiKey"`
		AgentID string        `yaml:"agentID"`
		BaseURL string        `yaml:"baseURL"`
		Model   string        `yaml:"model"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"agent"`

	Data struct {
		Source string `yaml:"source"`
		Path   string `yaml:"path"`
	} `yaml:"data"`

	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslMode"`
	} `yaml:"database"`

	Minio struct {
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
		Object     string `yaml:"object"`
	} `yaml:"minio"`

	RateLimit struct {
		Capacity   int `yaml:"capacity"`
		RefillRate int `yaml:"refillRate"`
	} `yaml:"rateLimit"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8000
	cfg.Server.Debug = true
	cfg.Agent.Timeout = 30 * time.Second
	cfg.Data.Source = SourceFile
	cfg.Data.Path = "data/sample_health_data.json"
	cfg.Database.SSLMode = "disable"
	cfg.Minio.Region = "us-east-1"
	cfg.Minio.Object = "sample_health_data.json"
	cfg.RateLimit.Capacity = 30
	cfg.RateLimit.RefillRate = 1
	return &cfg
}

// Load baca file config.yaml over the defaults. An empty path, or a missing
// file when optional is set, yields the defaults.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings needed by the selected dataset source.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Data.Source {
	case SourceFile:
		if c.Data.Path == "" {
			return errors.New("data.path is required for the file source")
		}
	case SourceMinio:
		if c.Minio.Endpoint == "" || c.Minio.BucketName == "" || c.Minio.Object == "" {
			return errors.New("minio endpoint, bucketName and object are required for the minio source")
		}
	case SourcePostgres, SourceMySQL:
		if c.Database.Host == "" || c.Database.Name == "" {
			return errors.New("database host and name are required for database sources")
		}
	default:
		return fmt.Errorf("unknown data source %q", c.Data.Source)
	}
	return nil
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// AgentEnabled reports whether platform credentials are present.
func (c *Config) AgentEnabled() bool { return c.Agent.APIKey != "" }

// Helper untuk build DSN MySQL
func (c *Config) MySQLDSN() string {
	port := c.Database.Port
	if port == 0 {
		port = 3306
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		port,
		c.Database.Name,
	)
}

// PostgresDSN builds a lib/pq connection string.
func (c *Config) PostgresDSN() string {
	port := c.Database.Port
	if port == 0 {
		port = 5432
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
