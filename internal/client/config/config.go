package config

import "time"

// Config holds runtime settings for the API client.
//
// Fields:
//   - BaseURL: root of the backend REST API, including the version prefix.
//   - RequestTimeout: per-request deadline; a request past it counts as a
//     network failure and is eligible for the transient retry policy.
//   - RetryAttempts: retries after the initial attempt for requests that
//     failed without a response (3 means up to four exchanges in total).
//   - RetryDelay: fixed delay between transient retries.
//   - CacheTTL: freshness window for cached read responses.
//   - CredentialsDSN: sqlite DSN for the local credential store.
//
// All previously scattered per-call defaults (timeout, retry counts, cache
// windows) live here so call sites never guess.
type Config struct {
	BaseURL         string
	RequestTimeout  time.Duration
	RetryAttempts   int
	RetryDelay      time.Duration
	CacheTTL        time.Duration
	CredentialsDSN  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:4000/api/v1"
	c.RequestTimeout = 10 * time.Second
	c.RetryAttempts = 3
	c.RetryDelay = 1 * time.Second
	c.CacheTTL = 5 * time.Minute
	c.CredentialsDSN = "credentials.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
