package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application.
type Config struct {
	Port        string
	Origin      string
	Environment string
	AppURL      string

	JWTSecret                 string
	JWTRefreshSecret          string
	JWTExpirationMinutes      int
	JWTRefreshExpirationHours int

	GoogleAI GoogleAIConfig
	Redis    RedisConfig

	// AIRequestsPerMinute throttles the generative AI endpoints. The Gemini
	// free tier enforces a per-minute quota upstream anyway.
	AIRequestsPerMinute float64
	AIBurst             int

	// SeedDemoData loads the demo doctors' sample appointments on boot.
	SeedDemoData bool
}

// GoogleAIConfig holds Google Generative Language API settings.
type GoogleAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RedisConfig holds the optional response-cache settings. An empty Addr
// disables caching entirely.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTLHours int
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	jwtExpMinutes, err := strconv.Atoi(getEnv("JWT_EXPIRATION_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %w", err)
	}

	jwtRefreshExpHours, err := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168")) // 7 days
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_EXPIRATION_HOURS: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cacheTTLHours, err := strconv.Atoi(getEnv("CACHE_TTL_HOURS", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL_HOURS: %w", err)
	}

	aiRPM, err := strconv.ParseFloat(getEnv("AI_REQUESTS_PER_MINUTE", "15"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid AI_REQUESTS_PER_MINUTE: %w", err)
	}

	aiBurst, err := strconv.Atoi(getEnv("AI_BURST", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid AI_BURST: %w", err)
	}

	return &Config{
		Port:                      getEnv("PORT", "3001"),
		Origin:                    getEnv("ORIGIN", "http://localhost:4200"),
		Environment:               getEnv("APP_ENV", "development"),
		AppURL:                    getEnv("APP_URL", "http://localhost:3001"),
		JWTSecret:                 getEnv("JWT_SECRET", "default_jwt_secret"),
		JWTRefreshSecret:          getEnv("JWT_REFRESH_SECRET", "default_refresh_secret"),
		JWTExpirationMinutes:      jwtExpMinutes,
		JWTRefreshExpirationHours: jwtRefreshExpHours,
		GoogleAI: GoogleAIConfig{
			APIKey:  getEnv("GOOGLE_API_KEY", ""),
			Model:   getEnv("GOOGLE_AI_MODEL", "gemini-2.0-flash"),
			BaseURL: getEnv("GOOGLE_AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			TTLHours: cacheTTLHours,
		},
		AIRequestsPerMinute: aiRPM,
		AIBurst:             aiBurst,
		SeedDemoData:        getEnv("SEED_DEMO_DATA", "true") == "true",
	}, nil
}

// Helper function to get environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
