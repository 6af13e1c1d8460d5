package infra

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultLLMBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultLLMModel   = "gemini-2.5-flash"
	DefaultMaxTurns   = 10
)

// LLMConfig configures the model-invocation client.
type LLMConfig struct {
	Provider   string
	APIKey     string
	BaseURL    string
	Model      string
	MaxTurns   int
	DebugTrace bool
}

// AppConfig is built once at startup and handed to whoever needs it.
type AppConfig struct {
	Port    string
	GinMode string
	LLM     LLMConfig
}

// LoadDotEnv reads .env (or the given files) into the process environment.
// A missing file is not an error.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() *AppConfig {
	provider := strings.ToLower(getEnvWithDefault("LLM_PROVIDER", "openai"))

	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" {
		switch provider {
		case "openai":
			// the default endpoint is Gemini's OpenAI compatible API
			apiKey = firstNonEmpty(os.Getenv("GEMINI_API_KEY"), os.Getenv("OPENAI_API_KEY"))
		case "gemini":
			apiKey = firstNonEmpty(os.Getenv("GEMINI_API_KEY"), os.Getenv("GOOGLE_API_KEY"))
		}
	}

	return &AppConfig{
		Port:    getEnvWithDefault("PORT", "8080"),
		GinMode: os.Getenv("GIN_MODE"),
		LLM: LLMConfig{
			Provider:   provider,
			APIKey:     apiKey,
			BaseURL:    getEnvWithDefault("LLM_BASE_URL", DefaultLLMBaseURL),
			Model:      getEnvWithDefault("LLM_MODEL", DefaultLLMModel),
			MaxTurns:   getEnvInt("LLM_MAX_TURNS", DefaultMaxTurns),
			DebugTrace: getEnvBool("LLM_DEBUG_TRACE", false),
		},
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
