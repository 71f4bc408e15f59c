package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"MONGO_URI", "DB_NAME", "JWT_SECRET", "ACCESS_TOKEN_TTL", "PORT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	if cfg.DBName != "mealmate" {
		t.Fatalf("expected default db name, got %q", cfg.DBName)
	}
	if cfg.AccessTokenTTL != time.Hour {
		t.Fatalf("expected 60 minute ttl, got %v", cfg.AccessTokenTTL)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.LogLevel != logrus.InfoLevel {
		t.Fatalf("expected info level, got %v", cfg.LogLevel)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected missing JWT_SECRET to fail validation")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ACCESS_TOKEN_TTL", "15")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_NAME", "mealmate_test")

	cfg := FromEnv()
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("unexpected ttl %v", cfg.AccessTokenTTL)
	}
	if cfg.LogLevel != logrus.DebugLevel {
		t.Fatalf("unexpected level %v", cfg.LogLevel)
	}
	if cfg.DBName != "mealmate_test" {
		t.Fatalf("unexpected db name %q", cfg.DBName)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestInvalidTTLFallsBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL", "-5")
	if got := FromEnv().AccessTokenTTL; got != time.Hour {
		t.Fatalf("expected fallback ttl, got %v", got)
	}
}
