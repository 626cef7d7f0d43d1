package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port                 string
	BaseURL              string
	ClientURL            string
	Environment          string
	LogFilePath          string
	CorsAllowedOrigins   string
	NatsURL              string
	RedisURL             string
	ConversationLogTopic string
	AiDailyCap           int
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	GoogleGemini      string
	MidtransServerKey string
}

type AIConfig struct {
	LLMProvider   string // "gemini" or "ollama"
	LLMModel      string
	OllamaBaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:                 getEnv("APP_PORT", "3000"),
			BaseURL:              getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:            getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:          getEnv("GO_ENV", "development"),
			LogFilePath:          getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:              getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:             getEnv("REDIS_URL", "redis://localhost:6379"),
			ConversationLogTopic: getEnv("CONVERSATION_LOG_TOPIC_NAME", "CONVERSATION_LOG"),
			AiDailyCap:           getEnvAsInt("AI_DAILY_CAP", 200),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Triponic"),
		},
		Keys: APIKeys{
			GoogleGemini:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
			MidtransServerKey: getEnv("MIDTRANS_SERVER_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:      getEnv("LLM_MODEL", "gemini-2.5-flash-lite"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
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
