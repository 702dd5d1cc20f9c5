package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string

	ServerPort int

	DBDriver    string
	DatabaseURL string

	KafkaBrokers []string
	KafkaTopic   string

	LogLevel string

	// LegacyConflictStatus answers duplicate adds with 303 instead of 409.
	LegacyConflictStatus bool
}

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "cart"),

		ServerPort: EnvIntDefault("SERVER_PORT", 8080),

		DBDriver:    strings.ToLower(EnvDefault("DB_DRIVER", "postgres")),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   EnvDefault("KAFKA_TOPIC", "cart_events"),

		LogLevel: os.Getenv("LOG_LEVEL"),

		LegacyConflictStatus: EnvBoolDefault("CART_LEGACY_CONFLICT_STATUS", false),
	}
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
