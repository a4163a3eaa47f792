package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Port      string `yaml:"port"`
	LogLevel  string `yaml:"log_level"`
	Namespace string `yaml:"namespace"`
	Storage   struct {
		DataDir         string `yaml:"data_dir"`
		BackupDir       string `yaml:"backup_dir"`
		SQLitePath      string `yaml:"sqlite_path"`
		DBConn          string `yaml:"db_conn"`
		RemoteServerURL string `yaml:"remote_server_url"`
	} `yaml:"storage"`
	Schedule struct {
		// Three fixed times of day for the automatic backup.
		BackupCrons []string `yaml:"backup_crons"`
	} `yaml:"schedule"`
	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
		To       string `yaml:"to"`
	} `yaml:"smtp"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine; env and defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.Namespace = getEnv("DASHBOARD_NAMESPACE", cfg.Namespace)
	cfg.Storage.DataDir = getEnv("DATA_DIR", cfg.Storage.DataDir)
	cfg.Storage.BackupDir = getEnv("BACKUP_DIR", cfg.Storage.BackupDir)
	cfg.Storage.SQLitePath = getEnv("SQLITE_PATH", cfg.Storage.SQLitePath)
	cfg.Storage.DBConn = getEnv("DB_CONN", cfg.Storage.DBConn)
	cfg.Storage.RemoteServerURL = getEnv("REMOTE_SERVER_URL", cfg.Storage.RemoteServerURL)
	cfg.SMTP.Host = getEnv("SMTP_HOST", cfg.SMTP.Host)
	cfg.SMTP.Username = getEnv("SMTP_USERNAME", cfg.SMTP.Username)
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", cfg.SMTP.Password)
	cfg.SMTP.From = getEnv("SMTP_FROM", cfg.SMTP.From)
	cfg.SMTP.To = getEnv("SMTP_TO", cfg.SMTP.To)
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.SMTP.Port = port
		}
	}

	// Defaults
	if cfg.Port == "" {
		cfg.Port = "3001"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "default"
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "data"
	}
	if cfg.Storage.BackupDir == "" {
		cfg.Storage.BackupDir = "data/backups"
	}
	if len(cfg.Schedule.BackupCrons) == 0 {
		cfg.Schedule.BackupCrons = []string{
			"0 0 9 * * *",
			"0 0 14 * * *",
			"0 0 21 * * *",
		}
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}

	return cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Storage.DataDir == "" {
		return fmt.Errorf("storage.data_dir is required")
	}
	if c.Storage.DBConn != "" && c.Storage.RemoteServerURL != "" {
		return fmt.Errorf("storage.db_conn and storage.remote_server_url are mutually exclusive")
	}
	if c.MailEnabled() && c.SMTP.To == "" {
		return fmt.Errorf("smtp.to is required when smtp.host is set")
	}
	return nil
}

// MailEnabled reports whether backup emails are configured.
func (c *Config) MailEnabled() bool {
	return c.SMTP.Host != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
