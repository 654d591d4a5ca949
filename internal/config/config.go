package config

import (
	"os"
	"strconv"

	"github.com/volunteerhub/volunteer-hub-api/internal/constants"
)

type Config struct {
	DBDriver       string // "mysql" or "postgres"
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	RedisHost      string
	RedisPort      string
	SessionSecret  string
	GinMode        string
	OpenAIAPIKey   string
	DailyPostLimit int
}

func Load() *Config {
	return &Config{
		DBDriver:       getEnv("DB_DRIVER", "mysql"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBUser:         getEnv("DB_USER", "hubuser"),
		DBPassword:     getEnv("DB_PASSWORD", "hubpassword"),
		DBName:         getEnv("DB_NAME", "volunteer_hub"),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		SessionSecret:  getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		DailyPostLimit: getEnvInt("DAILY_POST_LIMIT", constants.DefaultDailyPostLimit),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
