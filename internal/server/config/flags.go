package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/photocards/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5021")
//	-d string   SQLite DSN
//	-p string   photo directory
//	-m int      upload limit, MiB
//	-l string   log level
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-p", "-m", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.PhotoDir, "p", cfg.PhotoDir, "photo directory")
	maxUpload := fs.Int64("m", cfg.MaxUploadBytes>>20, "upload limit (in MiB)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if *maxUpload <= 0 {
		return fmt.Errorf("parse flags: upload limit must be positive, got %d", *maxUpload)
	}

	cfg.MaxUploadBytes = *maxUpload << 20
	return nil
}
