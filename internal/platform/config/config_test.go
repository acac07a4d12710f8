package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 365, cfg.Delivery.InactivityThresholdDays)
	assert.Equal(t, 15*time.Minute, cfg.S3.PresignTTL)
	assert.Equal(t, "afternote.audit", cfg.Kafka.AuditTopic)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "afternote.yaml")
	yamlBody := `
server:
  addr: ":9090"
delivery:
  inactivity_threshold_days: 180
kafka:
  brokers: ["kafka-1:9092"]
`
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o600))

	t.Setenv("AFTERNOTE_ADDR", ":7070")
	t.Setenv("KAFKA_BROKERS", "a:9092, b:9092")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr, "env wins over yaml")
	assert.Equal(t, 180, cfg.Delivery.InactivityThresholdDays, "yaml wins over defaults")
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 5, cfg.Lockout.AttemptsPerWindow, "untouched defaults survive the overlay")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Delivery.InactivityThresholdDays = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.MasterKeyPepper = ""
	assert.Error(t, cfg.Validate())

	assert.NoError(t, Default().Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
