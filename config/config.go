package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	// Server Configuration
	ServerPort string

	// Database Configuration
	DatabasePath string

	// LLM Configuration (bot chat)
	LLMProvider string // "openai" or "groq"
	OpenAIKey   string
	GroqKey     string
	LLMBaseURL  string
	BotModel    string

	// Recommendation Configuration
	MaxRadiusKm     float64 // location engine search radius
	DefaultPageSize int
	MaxPageSize     int

	// Profile Configuration
	Profile ProfileConfig
}

// ProfileConfig groups the tag-profile tuning constants so the
// decay/boost routine and its tests receive them as one record
// instead of reading package globals.
type ProfileConfig struct {
	DecayFactor     float64 // multiplicative decay applied on every boost
	TimeDecayFactor float64 // per-day decay applied for elapsed time
	PruneThreshold  float64 // tags below this weight are dropped
	MaxTags         int     // profile keeps only the top N tags by weight
	MaxBotTags      int     // chat-derived tags surviving the priority filter
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		ServerPort:      getEnv("PORT", "8080"),
		DatabasePath:    getEnv("DB_PATH", "serviify.db"),
		LLMProvider:     getEnv("LLM_PROVIDER", "groq"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		GroqKey:         os.Getenv("GROQ_API_KEY"),
		LLMBaseURL:      getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		BotModel:        getEnv("BOT_MODEL", "llama-3.1-8b-instant"),
		MaxRadiusKm:     getEnvFloat("MAX_RADIUS_KM", 50.0),
		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 10),
		MaxPageSize:     getEnvInt("MAX_PAGE_SIZE", 50),
		Profile:         LoadProfileConfig(),
	}

	// Bot chat degrades to canned replies without a key, so only warn
	if AppConfig.LLMProvider == "openai" && AppConfig.OpenAIKey == "" {
		log.Println("OPENAI_API_KEY not set; bot chat will use fallback replies")
	}
	if AppConfig.LLMProvider == "groq" && AppConfig.GroqKey == "" {
		log.Println("GROQ_API_KEY not set; bot chat will use fallback replies")
	}

	return AppConfig
}

// LoadProfileConfig reads the profile tuning record from the environment.
func LoadProfileConfig() ProfileConfig {
	return ProfileConfig{
		DecayFactor:     getEnvFloat("TAG_DECAY", 0.8),
		TimeDecayFactor: getEnvFloat("TAG_TIME_DECAY", 0.95),
		PruneThreshold:  getEnvFloat("TAG_THRESHOLD", 0.01),
		MaxTags:         getEnvInt("MAX_TAGS_PER_USER", 50),
		MaxBotTags:      getEnvInt("MAX_BOT_TAGS", 3),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
