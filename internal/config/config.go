package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	SMTP      SMTPConfig
	Keys      APIKeys
	Ai        AIConfig
	Knowledge KnowledgeConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	DemoTokenTTL       time.Duration
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
	OpenAI             string
	Anthropic          string
	MidtransServer     string
	MidtransProduction bool
	JwtSecret          string
}

type AIConfig struct {
	EmbeddingProvider string // "openai" or "ollama"; missing key degrades to disabled
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "anthropic" or "ollama"
	LLMModel          string
	CalendarModel     string
}

type KnowledgeConfig struct {
	RootDir    string
	ChunkSize  int
	Overlap    int
	EmbedDelay time.Duration
	MatchCount int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			DemoTokenTTL:       getEnvAsDuration("DEMO_TOKEN_TTL", 30*time.Minute),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Grow Coach"),
		},
		Keys: APIKeys{
			OpenAI:             getEnv("OPENAI_API_KEY", ""),
			Anthropic:          getEnv("ANTHROPIC_API_KEY", ""),
			MidtransServer:     getEnv("MIDTRANS_SERVER_KEY", ""),
			MidtransProduction: getEnv("MIDTRANS_IS_PRODUCTION", "false") == "true",
			JwtSecret:          getEnv("JWT_SECRET", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "openai"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "anthropic"),
			LLMModel:          getEnv("LLM_MODEL", ""),
			CalendarModel:     getEnv("CALENDAR_MODEL", ""),
		},
		Knowledge: KnowledgeConfig{
			RootDir:    getEnv("KNOWLEDGE_ROOT_DIR", "knowledge"),
			ChunkSize:  getEnvAsInt("KNOWLEDGE_CHUNK_SIZE", 1500),
			Overlap:    getEnvAsInt("KNOWLEDGE_CHUNK_OVERLAP", 200),
			EmbedDelay: getEnvAsDuration("KNOWLEDGE_EMBED_DELAY", 150*time.Millisecond),
			MatchCount: getEnvAsInt("KNOWLEDGE_MATCH_COUNT", 3),
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

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
