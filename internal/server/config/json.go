package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/photocards/internal/flagx"
)

// JSONConfig is the on-disk shape of Config; absent keys keep their value.
type JSONConfig struct {
	EndpointAddr   *string `json:"endpoint_addr"`
	DatabaseDSN    *string `json:"database_dsn"`
	PhotoDir       *string `json:"photo_dir"`
	MaxUploadBytes *int64  `json:"max_upload_bytes"`
	LogLevel       *string `json:"log_level"`
}

// parseJSON overlays cfg with the file named by -c/-config, if any.
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

	if jc.EndpointAddr != nil {
		cfg.EndpointAddr = *jc.EndpointAddr
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.PhotoDir != nil {
		cfg.PhotoDir = *jc.PhotoDir
	}
	if jc.MaxUploadBytes != nil {
		cfg.MaxUploadBytes = *jc.MaxUploadBytes
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
