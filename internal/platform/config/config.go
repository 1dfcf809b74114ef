package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Server captures process-level configuration. Env vars win over the
// optional YAML file so container deployments stay twelve-factor while a
// local install can keep a config file next to its database.
type Server struct {
	Addr        string
	DBPath      string
	SettleDelay time.Duration
	LogLevel    string
}

// fileConfig is the YAML shape. Durations are strings ("300ms") because
// yaml.v3 has no native time.Duration decoding; unset fields keep their
// defaults.
type fileConfig struct {
	Addr        string `yaml:"addr"`
	DBPath      string `yaml:"db_path"`
	SettleDelay string `yaml:"settle_delay"`
	LogLevel    string `yaml:"log_level"`
}

func defaults() Server {
	return Server{
		Addr:        ":8080",
		DBPath:      "chaincheck.db",
		SettleDelay: 300 * time.Millisecond,
		LogLevel:    "info",
	}
}

// FromEnv builds a Server config from environment variables so main stays lean.
// When CHAINCHECK_CONFIG points at a YAML file it is loaded first and the
// environment overrides individual fields.
func FromEnv() (Server, error) {
	cfg := defaults()

	if path := os.Getenv("CHAINCHECK_CONFIG"); path != "" {
		loaded, err := FromFile(path)
		if err != nil {
			return Server{}, err
		}
		cfg = loaded
	}

	if addr := os.Getenv("CHAINCHECK_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if dbPath := os.Getenv("CHAINCHECK_DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if level := os.Getenv("CHAINCHECK_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if delay := os.Getenv("CHAINCHECK_SETTLE_DELAY"); delay != "" {
		d, err := time.ParseDuration(delay)
		if err != nil {
			return Server{}, fmt.Errorf("config: CHAINCHECK_SETTLE_DELAY: %w", err)
		}
		cfg.SettleDelay = d
	}

	return cfg, nil
}

// FromFile loads a YAML config file, filling unset fields with defaults.
func FromFile(path string) (Server, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return Server{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Server{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if file.Addr != "" {
		cfg.Addr = file.Addr
	}
	if file.DBPath != "" {
		cfg.DBPath = file.DBPath
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.SettleDelay != "" {
		d, err := time.ParseDuration(file.SettleDelay)
		if err != nil {
			return Server{}, fmt.Errorf("config: parse %s: settle_delay: %w", path, err)
		}
		cfg.SettleDelay = d
	}
	return cfg, nil
}
