package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App           AppConfig
	Database      DatabaseConfig
	KnowledgeBase KnowledgeBaseConfig
	Session       SessionConfig
	Auth          AuthConfig
	Tracing       TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	WsLogFilePath      string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection      string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
}

type KnowledgeBaseConfig struct {
	Source      string // file path, http(s) URL or "postgres"
	LoadTimeout time.Duration
	ReloadTopic string
}

type SessionConfig struct {
	TTL           time.Duration
	CleanupPeriod time.Duration
	WaitTimeout   time.Duration // how long a request may queue for the first knowledge base load
	Store         string        // "redis" shares sessions between instances, "memory" keeps them local
}

type AuthConfig struct {
	JwtSecret string
	TokenTTL  time.Duration
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			WsLogFilePath:      getEnv("WS_LOG_FILE_PATH", "logs/chat_ws.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection:      getEnv("DB_CONNECTION_STRING", ""),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 20),
			ConnMaxLifetime: getEnvAsMinutes("DB_CONN_MAX_LIFETIME_MINUTES", 60),
			LogLevel:        getEnv("DB_LOG_LEVEL", "warn"),
		},
		KnowledgeBase: KnowledgeBaseConfig{
			Source:      getEnv("KB_SOURCE", "data/knowledge_base.yaml"),
			LoadTimeout: getEnvAsSeconds("KB_LOAD_TIMEOUT_SECONDS", 10),
			ReloadTopic: getEnv("KB_RELOAD_TOPIC", "KNOWLEDGE_BASE_RELOAD"),
		},
		Session: SessionConfig{
			TTL:           getEnvAsMinutes("SESSION_TTL_MINUTES", 60),
			CleanupPeriod: getEnvAsMinutes("SESSION_CLEANUP_MINUTES", 10),
			WaitTimeout:   getEnvAsSeconds("SESSION_WAIT_TIMEOUT_SECONDS", 5),
			Store:         getEnv("SESSION_STORE", "redis"),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getEnvAsMinutes("JWT_TTL_MINUTES", 120),
		},
		Tracing: TracingConfig{
			Enabled:     getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "faq-chat-backend"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
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

func getEnvAsSeconds(key string, fallback int) time.Duration {
	return time.Duration(getEnvAsInt(key, fallback)) * time.Second
}

func getEnvAsMinutes(key string, fallback int) time.Duration {
	return time.Duration(getEnvAsInt(key, fallback)) * time.Minute
}
