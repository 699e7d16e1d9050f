package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/bryanwahyu/health-agent/internal/config"
)

func appFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Value:   "config.yaml",
			Sources: cli.EnvVars("CONFIG_PATH"),
			Usage:   "path to the YAML config file (optional)",
		},
		&cli.StringFlag{
			Name:    "host",
			Sources: cli.EnvVars("HOST"),
			Usage:   "HTTP bind host (default 0.0.0.0)",
		},
		&cli.StringFlag{
			Name:    "port",
			Sources: cli.EnvVars("PORT"),
			Usage:   "HTTP port (default 8000)",
		},
		&cli.BoolFlag{
			Name:    "debug",
			Sources: cli.EnvVars("DEBUG"),
			Usage:   "debug logging (default true)",
		},
		&cli.StringFlag{
			Name:    "agent-api-key",
			Sources: cli.EnvVars("PINAI_API_KEY", "AGENT_API_KEY"),
			Usage:   "API key of the external agent platform",
		},
		&cli.StringFlag{
			Name:    "agent-id",
			Sources: cli.EnvVars("PINAI_AGENT_ID", "AGENT_ID"),
			Usage:   "registered agent id; registered on first use when empty",
		},
		&cli.StringFlag{
			Name:    "agent-base-url",
			Sources: cli.EnvVars("AGENT_BASE_URL"),
			Usage:   "base URL of an OpenAI-compatible agent API",
		},
		&cli.StringFlag{
			Name:    "agent-model",
			Sources: cli.EnvVars("AGENT_MODEL"),
			Usage:   "model used by the agent",
		},
		&cli.DurationFlag{
			Name:    "agent-timeout",
			Sources: cli.EnvVars("AGENT_TIMEOUT"),
			Usage:   "timeout for each agent platform call",
		},
		&cli.StringFlag{
			Name:    "data-source",
			Sources: cli.EnvVars("DATA_SOURCE"),
			Usage:   "dataset source: file, minio, postgres or mysql",
		},
		&cli.StringFlag{
			Name:    "data-path",
			Sources: cli.EnvVars("DATA_PATH"),
			Usage:   "dataset file for the file source",
		},
		&cli.StringFlag{
			Name:    "minio-endpoint",
			Sources: cli.EnvVars("MINIO_ENDPOINT"),
		},
		&cli.StringFlag{
			Name:    "minio-access-key",
			Sources: cli.EnvVars("MINIO_ACCESS_KEY"),
		},
		&cli.StringFlag{
			Name:    "minio-secret-key",
			Sources: cli.EnvVars("MINIO_SECRET_KEY"),
		},
		&cli.StringFlag{
			Name:    "minio-bucket",
			Sources: cli.EnvVars("MINIO_BUCKET"),
		},
		&cli.StringFlag{
			Name:    "minio-object",
			Sources: cli.EnvVars("MINIO_OBJECT"),
		},
		&cli.StringFlag{
			Name:    "db-host",
			Sources: cli.EnvVars("DB_HOST"),
		},
		&cli.StringFlag{
			Name:    "db-user",
			Sources: cli.EnvVars("DB_USER"),
		},
		&cli.StringFlag{
			Name:    "db-password",
			Sources: cli.EnvVars("DB_PASSWORD"),
		},
		&cli.StringFlag{
			Name:    "db-name",
			Sources: cli.EnvVars("DB_NAME"),
		},
	}
}

// loadConfig reads the YAML file and lets flags and env vars override it.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"), !cmd.IsSet("config"))
	if err != nil {
		return nil, fmt.Errorf("config load error: %w", err)
	}

	str := map[string]*string{
		"host":             &cfg.Server.Host,
		"agent-api-key":    &cfg.Agent.APIKey,
		"agent-id":         &cfg.Agent.AgentID,
		"agent-base-url":   &cfg.Agent.BaseURL,
		"agent-model":      &cfg.Agent.Model,
		"data-source":      &cfg.Data.Source,
		"data-path":        &cfg.Data.Path,
		"minio-endpoint":   &cfg.Minio.Endpoint,
		"minio-access-key": &cfg.Minio.AccessKey,
		"minio-secret-key": &cfg.Minio.SecretKey,
		"minio-bucket":     &cfg.Minio.BucketName,
		"minio-object":     &cfg.Minio.Object,
		"db-host":          &cfg.Database.Host,
		"db-user":          &cfg.Database.User,
		"db-password":      &cfg.Database.Password,
		"db-name":          &cfg.Database.Name,
	}
	for name, dst := range str {
		if cmd.IsSet(name) {
			*dst = cmd.String(name)
		}
	}
	if cmd.IsSet("port") {
		port, err := strconv.Atoi(cmd.String("port"))
		if err != nil {
			return nil, fmt.Errorf("invalid port %q: %w", cmd.String("port"), err)
		}
		cfg.Server.Port = port
	}
	if cmd.IsSet("debug") {
		cfg.Server.Debug = cmd.Bool("debug")
	}
	if cmd.IsSet("agent-timeout") {
		cfg.Agent.Timeout = cmd.Duration("agent-timeout")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
