package config

import (
	"os"
)

// Config holds all process configuration. It is built once at startup and
// passed explicitly to the components that need it; credentials are optional
// and their absence degrades the corresponding feature instead of crashing.
type Config struct {
	Port string

	// LLM gateway (OpenRouter)
	OpenRouterAPIKey string
	OpenRouterURL    string
	LLMModel         string
	Referer          string
	AppTitle         string

	// Image search (Pexels)
	PexelsAPIKey string
	PexelsURL    string

	// Paid TTS fallback (OpenAI speech API)
	OpenAIAPIKey string
	OpenAIURL    string

	// Speech-to-text (whisper.cpp)
	WhisperBinary string
	WhisperModel  string
}

func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "5000"),
		OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterURL:    getEnv("OPENROUTER_URL", "https://openrouter.ai/api/v1/chat/completions"),
		LLMModel:         getEnv("LLM_MODEL", "google/gemini-2.0-flash-001"),
		Referer:          getEnv("HTTP_REFERER", "http://localhost:5000"),
		AppTitle:         getEnv("APP_TITLE", "Lexigraph"),
		PexelsAPIKey:     getEnv("PEXELS_API_KEY", ""),
		PexelsURL:        getEnv("PEXELS_URL", "https://api.pexels.com/v1"),
		OpenAIAPIKey:     getEnv("OPEN_FM_API_KEY", ""),
		OpenAIURL:        getEnv("OPENAI_URL", "https://api.openai.com/v1"),
		WhisperBinary:    getEnv("WHISPER_BINARY", "whisper-cli"),
		WhisperModel:     getEnv("WHISPER_MODEL", "models/ggml-base.bin"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
