package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFawaterakConfig(t *testing.T) {
	t.Run("loads credentials from env", func(t *testing.T) {
		t.Setenv("FAWATERAK_API_KEY", "api-key")
		t.Setenv("FAWATERAK_BASE_URL", "https://app.fawaterk.com/api/v2")
		t.Setenv("FAWATERAK_PROVIDER_KEY", "provider-key")

		cfg := LoadFawaterakConfig()

		assert.Equal(t, "api-key", cfg.APIKey)
		assert.Equal(t, "https://app.fawaterk.com/api/v2", cfg.BaseURL)
		assert.Equal(t, "provider-key", cfg.ProviderKey)
	})

	t.Run("defaults to the staging base URL", func(t *testing.T) {
		t.Setenv("FAWATERAK_API_KEY", "api-key")
		t.Setenv("FAWATERAK_BASE_URL", "")
		t.Setenv("FAWATERAK_PROVIDER_KEY", "provider-key")

		cfg := LoadFawaterakConfig()
		assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	})
}
