// Package config handles configuration for the reference backend,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the marketplace server.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP API.
//   - DatabaseDSN: SQLite DSN (modernc.org/sqlite).
//   - PhotoDir: directory uploaded listing photos are written to.
//   - MaxUploadBytes: limit of a multipart listing upload.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddr   string
	DatabaseDSN    string
	PhotoDir       string
	MaxUploadBytes int64
	LogLevel       string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":5021"
	c.DatabaseDSN = "file:marketplace.db"
	c.PhotoDir = "photos"
	c.MaxUploadBytes = 8 << 20
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags. args
// excludes the program name.
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
