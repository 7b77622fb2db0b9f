package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overrides defaults", func(t *testing.T) {
		os.Args = []string{"testbin", "-u", "https://api.example.com/api/v1", "-t", "20", "-d", "alt.db"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "https://api.example.com/api/v1", cfg.BaseURL)
		assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "alt.db", cfg.CredentialsDSN)
	})

	t.Run("keeps defaults when flags absent", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "http://127.0.0.1:4000/api/v1", cfg.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "credentials.db", cfg.CredentialsDSN)
	})
}
