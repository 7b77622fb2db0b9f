package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/flagx"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "10s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	RetryAttempts  int            `json:"retry_attempts"`
	RetryDelay     timex.Duration `json:"retry_delay"`
	CacheTTL       timex.Duration `json:"cache_ttl"`
	CredentialsDSN string         `json:"credentials_dsn"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the file override the current values. Panics on read
// or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.RetryAttempts != 0 {
		cfg.RetryAttempts = jc.RetryAttempts
	}
	if jc.RetryDelay.Duration != 0 {
		cfg.RetryDelay = time.Duration(jc.RetryDelay.Duration)
	}
	if jc.CacheTTL.Duration != 0 {
		cfg.CacheTTL = time.Duration(jc.CacheTTL.Duration)
	}
	if jc.CredentialsDSN != "" {
		cfg.CredentialsDSN = jc.CredentialsDSN
	}
}
