// Package config loads runtime configuration for the marketplace CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Flags
//
//	-a string   base URL of the marketplace API
//	-t int      request timeout (seconds)
//	-d string   directory for local data (session database)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// request_timeout accepts a string like "10s" or integer nanoseconds.
// Keys that are absent keep their previous value.
//
//	{
//	  "server_base_url": "http://localhost:5021",
//	  "request_timeout": "10s",
//	  "data_dir": "data",
//	  "log_level": "info"
//	}
package config
