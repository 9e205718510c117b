package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/photocards/internal/flagx"
	"github.com/dmitrijs2005/photocards/internal/timex"
)

// JSONConfig is the on-disk shape of Config. Pointers tell absent keys from
// zero values.
type JSONConfig struct {
	ServerBaseURL  *string         `json:"server_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DataDir        *string         `json:"data_dir"`
	LogLevel       *string         `json:"log_level"`
}

// parseJSON overlays cfg with the file named by -c/-config. Without the
// flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
