// Package config loads application settings from an optional YAML file with
// environment-variable overrides on top of built-in defaults.
package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "WIKIWEIRD_CONFIG"
	listenAddrEnv  = "WIKIWEIRD_LISTEN"
	dataFileEnv    = "WIKIWEIRD_DATA_FILE"
	databaseDSNEnv = "DATABASE_DSN"
	userAgentEnv   = "WIKIWEIRD_USER_AGENT"
)

// Config holds high-level settings required across the application.
type Config struct {
	Listen   string         `yaml:"listen"`
	DataFile string         `yaml:"dataFile"`
	Database DatabaseConfig `yaml:"database"`
	Wiki     WikiConfig     `yaml:"wiki"`
	Extract  ExtractConfig  `yaml:"extract"`
	Serve    ServeConfig    `yaml:"serve"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DatabaseConfig describes the optional Postgres snapshot store; an empty DSN
// keeps persistence on the JSON data file.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// WikiConfig wires the Wikipedia endpoints and request policy.
type WikiConfig struct {
	APIURL    string        `yaml:"apiUrl"`
	RESTURL   string        `yaml:"restUrl"`
	UserAgent string        `yaml:"userAgent"`
	Timeout   time.Duration `yaml:"timeout"`
}

// ExtractConfig controls the extraction pipeline.
type ExtractConfig struct {
	// Subpage is the Wikipedia:Unusual_articles subpage to process.
	Subpage string `yaml:"subpage"`
	// Source selects the section-source strategy (wikitext or html).
	Source string `yaml:"source"`
	// MaxPerRegion caps titles per region; zero means no cap.
	MaxPerRegion int `yaml:"maxPerRegion"`
	// FetchDelay is the pause between successive per-title fetches.
	FetchDelay time.Duration `yaml:"fetchDelay"`
	// RefreshInterval re-runs extraction while serving; zero disables it.
	RefreshInterval time.Duration `yaml:"refreshInterval"`
}

// ServeConfig controls the read API.
type ServeConfig struct {
	// DefaultLimit bounds articles returned per country request.
	DefaultLimit int `yaml:"defaultLimit"`
	// DescriptionTTL is the refresh cache lifetime.
	DescriptionTTL time.Duration `yaml:"descriptionTtl"`
	// RefreshDelay paces description re-fetches within one request.
	RefreshDelay time.Duration `yaml:"refreshDelay"`
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(listenAddrEnv); v != "" {
		c.Listen = v
	}
	if v := os.Getenv(dataFileEnv); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv(userAgentEnv); v != "" {
		c.Wiki.UserAgent = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Listen != "" {
		base.Listen = override.Listen
	}
	if override.DataFile != "" {
		base.DataFile = override.DataFile
	}
	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Wiki.APIURL != "" {
		base.Wiki.APIURL = override.Wiki.APIURL
	}
	if override.Wiki.RESTURL != "" {
		base.Wiki.RESTURL = override.Wiki.RESTURL
	}
	if override.Wiki.UserAgent != "" {
		base.Wiki.UserAgent = override.Wiki.UserAgent
	}
	if override.Wiki.Timeout > 0 {
		base.Wiki.Timeout = override.Wiki.Timeout
	}

	if override.Extract.Subpage != "" {
		base.Extract.Subpage = override.Extract.Subpage
	}
	if override.Extract.Source != "" {
		base.Extract.Source = override.Extract.Source
	}
	if override.Extract.MaxPerRegion > 0 {
		base.Extract.MaxPerRegion = override.Extract.MaxPerRegion
	}
	if override.Extract.FetchDelay > 0 {
		base.Extract.FetchDelay = override.Extract.FetchDelay
	}
	if override.Extract.RefreshInterval > 0 {
		base.Extract.RefreshInterval = override.Extract.RefreshInterval
	}

	if override.Serve.DefaultLimit > 0 {
		base.Serve.DefaultLimit = override.Serve.DefaultLimit
	}
	if override.Serve.DescriptionTTL > 0 {
		base.Serve.DescriptionTTL = override.Serve.DescriptionTTL
	}
	if override.Serve.RefreshDelay > 0 {
		base.Serve.RefreshDelay = override.Serve.RefreshDelay
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Listen:   ":5000",
		DataFile: "data.json",
		Wiki: WikiConfig{
			APIURL:    "https://en.wikipedia.org/w/api.php",
			RESTURL:   "https://en.wikipedia.org/api/rest_v1",
			UserAgent: "wikiweird/1.0",
			Timeout:   20 * time.Second,
		},
		Extract: ExtractConfig{
			Subpage:    "Places and infrastructure",
			Source:     "wikitext",
			FetchDelay: 500 * time.Millisecond,
		},
		Serve: ServeConfig{
			DefaultLimit:   20,
			DescriptionTTL: 30 * time.Minute,
			RefreshDelay:   200 * time.Millisecond,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
