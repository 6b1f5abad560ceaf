package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	DBDriver string // postgres, mysql, sqlite
	DBName   string

	AppName     string
	EmailSender string
	SendGridKey string

	ChatApiURL string // OpenAI-compatible chat completions endpoint
	ChatApiKey string
	ChatModel  string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBDriver: getEnv("DB_DRIVER", "postgres"),
		DBName:   getEnv("DB_NAME", "learnhub"),

		AppName:     getEnv("APP_NAME", "LearnHub"),
		EmailSender: getEnv("EMAIL_SENDER", "no-reply@learnhub.io"),
		SendGridKey: getEnv("SENDGRID_API_KEY", ""),

		ChatApiURL: getEnv("CHAT_API_URL", "https://api.openai.com/v1/chat/completions"),
		ChatApiKey: getEnv("CHAT_API_KEY", ""),
		ChatModel:  getEnv("CHAT_MODEL", "gpt-4o-mini"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendGridKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Outgoing emails are disabled.")
	}
	if AppConfig.ChatApiKey == "" {
		log.Println("Warning: CHAT_API_KEY not set. Chat assistant will answer from FAQs only.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
