package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all service configuration, loaded from environment variables.
type Config struct {
	ServiceName string
	Server      ServerConfig
	Mongo       MongoConfig
	JWT         JWTConfig
	Upload      UploadConfig
	Chat        ChatConfig
	Log         LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	Env  string
}

// MongoConfig holds MongoDB connection configuration.
type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// JWTConfig holds token signing configuration.
type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// UploadConfig holds file upload storage configuration.
type UploadConfig struct {
	Dir string
}

// ChatConfig holds the chat responder configuration. An empty APIKey selects
// the keyword fallback responder.
type ChatConfig struct {
	APIKey string
	Model  string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		ServiceName: getEnv("SERVICE_NAME", "kimia-realty"),
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGODB_DATABASE", "kimia-realty"),
			ConnectTimeout: 10 * time.Second,
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", ""),
			ExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 24),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "public/uploads"),
		},
		Chat: ChatConfig{
			APIKey: getEnv("ANTHROPIC_API_KEY", ""),
			Model:  getEnv("CHAT_MODEL", "claude-3-5-haiku-latest"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
