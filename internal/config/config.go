package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var AppEnv Config

type Config struct {
	MongoURI       string
	DBName         string
	JWTSecret      string
	AccessTokenTTL time.Duration
	Port           string
	GinMode        string
	LogLevel       logrus.Level
	RequestTimeout time.Duration
}

// Load reads .env when present and then the process environment into AppEnv.
func Load() {
	if err := godotenv.Load(); err != nil {
		logrus.WithField("area", "CONFIG").Debugf(".env not loaded: %v", err)
	}
	AppEnv = FromEnv()
	configureLogging(AppEnv.LogLevel)
}

// FromEnv builds a Config from the current environment without touching
// AppEnv.
func FromEnv() Config {
	return Config{
		MongoURI:       getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:         getEnvOrDefault("DB_NAME", "mealmate"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 60, time.Minute),
		Port:           getEnvOrDefault("PORT", "8080"),
		GinMode:        getEnvOrDefault("GIN_MODE", gin.ReleaseMode),
		LogLevel:       getLevelEnv("LOG_LEVEL", logrus.InfoLevel),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", 10, time.Second),
	}
}

func (c Config) Validate() error {
	var missing []string
	if c.MongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return errors.New("required environment variables missing: " + strings.Join(missing, ", "))
	}
	return nil
}

func configureLogging(level logrus.Level) {
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getLevelEnv(key string, defaultValue logrus.Level) logrus.Level {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if level, err := logrus.ParseLevel(value); err == nil {
			return level
		}
	}
	return defaultValue
}
