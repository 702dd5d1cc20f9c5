package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	assert.Nil(t, CSV(""))
	assert.Equal(t, []string{"kafka:9092", "kafka2:9092"}, CSV(" kafka:9092, ,kafka2:9092 "))
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("CFG_TEST_STR", "")
	t.Setenv("CFG_TEST_INT", "not-a-number")
	t.Setenv("CFG_TEST_BOOL", "true")

	assert.Equal(t, "fallback", EnvDefault("CFG_TEST_STR", "fallback"))
	assert.Equal(t, 42, EnvIntDefault("CFG_TEST_INT", 42))
	assert.True(t, EnvBoolDefault("CFG_TEST_BOOL", false))
	assert.False(t, EnvBoolDefault("CFG_TEST_MISSING", false))
}

func TestLoad(t *testing.T) {
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("KAFKA_TOPIC", "")
	t.Setenv("CART_LEGACY_CONFLICT_STATUS", "1")

	cfg := Load()
	require.Equal(t, "cart", cfg.ServiceName)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file::memory:", cfg.DatabaseURL)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "cart_events", cfg.KafkaTopic)
	assert.True(t, cfg.LegacyConflictStatus)
}
