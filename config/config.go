package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port               string
	DBPath             string
	ChannelSecret      string
	ChannelAccessToken string
	LLMEndpoint        string
	LLMAPIKey          string
	LLMModel           string
	AdminPassword      string
	SessionSecret      string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:               get("PORT", "8080"),
		DBPath:             get("DB_PATH", "ribbon.db"),
		ChannelSecret:      get("CHANNEL_SECRET", ""),
		ChannelAccessToken: get("CHANNEL_ACCESS_TOKEN", ""),
		LLMEndpoint:        get("LLM_ENDPOINT", ""),
		LLMAPIKey:          get("LLM_API_KEY", ""),
		LLMModel:           get("LLM_MODEL", "gpt-4o-mini"),
		AdminPassword:      get("ADMIN_PASSWORD", ""),
		SessionSecret:      get("SESSION_SECRET", "dev-session-secret"),
	}
	log.Printf("[cfg] port=%s db=%s model=%s", cfg.Port, cfg.DBPath, cfg.LLMModel)
	return cfg
}
