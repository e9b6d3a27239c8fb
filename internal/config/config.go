package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Data    DataConfig
	Ai      AIConfig
	Keys    APIKeys
	Webhook WebhookConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DataConfig struct {
	CareersPath  string
	CoursesPath  string
	PathwaysPath string
}

type AIConfig struct {
	LLMProvider           string // "openai"
	LLMModel              string // e.g. "gpt-3.5-turbo"
	BaseURL               string
	ClarifyTimeoutSeconds int
	ClarifyRetries        int
}

type APIKeys struct {
	OpenAI string
}

type WebhookConfig struct {
	// PlainText degrades the webhook reply from TwiML to text/plain.
	PlainText bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Data: DataConfig{
			CareersPath:  getEnv("CAREERS_CSV_PATH", "data/careers.csv"),
			CoursesPath:  getEnv("COURSES_CSV_PATH", "data/courses.csv"),
			PathwaysPath: getEnv("PATHWAYS_CSV_PATH", "data/pathways.csv"),
		},
		Ai: AIConfig{
			LLMProvider:           getEnv("LLM_PROVIDER", "openai"),
			LLMModel:              getEnv("LLM_MODEL", "gpt-3.5-turbo"),
			BaseURL:               getEnv("OPENAI_BASE_URL", ""),
			ClarifyTimeoutSeconds: getEnvAsInt("CLARIFY_TIMEOUT_SECONDS", 20),
			ClarifyRetries:        getEnvAsInt("CLARIFY_RETRIES", 1),
		},
		Keys: APIKeys{
			OpenAI: getEnv("OPENAI_API_KEY", ""),
		},
		Webhook: WebhookConfig{
			PlainText: getEnv("WEBHOOK_PLAIN", "false") == "true",
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
