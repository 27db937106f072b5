package config

import (
	"log"
	"os"
)

// FawaterakConfig holds the credentials for the Fawaterak payment gateway.
// Loaded once at startup and never mutated afterwards.
type FawaterakConfig struct {
	APIKey      string
	BaseURL     string
	ProviderKey string
}

const defaultBaseURL = "https://staging.fawaterk.com/api/v2"

// LoadFawaterakConfig reads the Fawaterak credentials from environment variables
func LoadFawaterakConfig() FawaterakConfig {
	cfg := FawaterakConfig{
		APIKey:      os.Getenv("FAWATERAK_API_KEY"),
		BaseURL:     os.Getenv("FAWATERAK_BASE_URL"),
		ProviderKey: os.Getenv("FAWATERAK_PROVIDER_KEY"),
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	if cfg.APIKey == "" || cfg.ProviderKey == "" {
		log.Printf("WARNING: Fawaterak credentials not fully configured:")
		if cfg.APIKey == "" {
			log.Printf("  - FAWATERAK_API_KEY is missing")
		}
		if cfg.ProviderKey == "" {
			log.Printf("  - FAWATERAK_PROVIDER_KEY is missing")
		}
		log.Printf("Please set these environment variables for the Fawaterak payment service to work")
	} else {
		log.Printf("Fawaterak Service Configuration:")
		log.Printf("  Base URL: %s", cfg.BaseURL)
		log.Printf("  Provider Key: %s", cfg.ProviderKey)
		log.Printf("  API Key: [CONFIGURED]")
	}

	return cfg
}
