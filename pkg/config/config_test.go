package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carneiro-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 5*time.Second, cfg.Storage.SaveTimeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.Kafka.Enabled())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_SAVE_TIMEOUT_SECONDS", "2")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("DOCS_ENABLED", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 2*time.Second, cfg.Storage.SaveTimeout)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.App.DocsEnabled)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongodb")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "bar", Password: "p@ss:word", DBName: "carneiro", SSLMode: "disable"}
	assert.Equal(t, "postgres://bar:p%40ss%3Aword@db:5432/carneiro?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
