package config

import (
	"path/filepath"
	"time"
)

// Config holds runtime settings for the marketplace CLI.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DataDir        string
	LogLevel       string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5021"
	c.RequestTimeout = 10 * time.Second
	c.DataDir = "data"
	c.LogLevel = "info"
}

// SessionDBPath is the SQLite file that keeps the local session.
func (c *Config) SessionDBPath() string {
	return filepath.Join(c.DataDir, "session.db")
}

// LoadConfig applies defaults, then the JSON file named by -c/-config (if
// any), then flags. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
