// Package config loads runtime configuration for the API client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d string   sqlite DSN for the local credential store
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://api.example.com/api/v1",
//	  "request_timeout": "10s",
//	  "retry_attempts": 3,
//	  "retry_delay": "1s",
//	  "cache_ttl": "5m",
//	  "credentials_dsn": "credentials.db"
//	}
//
// Primary API
//
//   - type Config                     — consolidated client settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
