package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "config-test")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("STORAGE_PUBLIC_URL", "https://cdn.example.com")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, "9091", cfg.GRPC.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "catalogdb", cfg.DB.Name)
	assert.Equal(t, "https://cdn.example.com", cfg.Storage.PublicURL)
	assert.False(t, cfg.StorageEnabled())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers())
	assert.Equal(t, "catalog-events", cfg.Kafka.Topic)
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET is required")
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	cfg.JWT.Secret = "s"
	cfg.Storage = StorageConfig{Endpoint: "r2.example.com", Bucket: "catalog"}

	err := cfg.Validate()
	assert.ErrorContains(t, err, "STORAGE_PUBLIC_URL")

	cfg.Storage.PublicURL = "https://cdn.example.com"
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.StorageEnabled())
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"DB_HOST":            "db.host",
		"STORAGE_PUBLIC_URL": "storage.public_url",
		"OTEL_SERVICE_NAME":  "otel.service_name",
		"ENVIRONMENT":        "environment",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}
