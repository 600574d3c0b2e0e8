package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.SourceTimeout)
	assert.Equal(t, 4, cfg.ReportConcurrency)
	assert.Equal(t, 15*time.Minute, cfg.HierarchyCacheTTL)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SOURCE_TIMEOUT", "2s")
	t.Setenv("REPORT_CONCURRENCY", "8")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("CASH_ACCOUNT_ID", "CASH-MAIN")

	cfg, err := Load(viper.New())

	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.SourceTimeout)
	assert.Equal(t, 8, cfg.ReportConcurrency)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "CASH-MAIN", cfg.CashAccountID)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SOURCE_TIMEOUT", "soon")
	t.Setenv("REPORT_CONCURRENCY", "-3")

	cfg, err := Load(viper.New())

	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.SourceTimeout)
	assert.Equal(t, 4, cfg.ReportConcurrency)
}

func TestLoad_BoundValueWins(t *testing.T) {
	t.Setenv("PORT", "9000")
	v := viper.New()
	v.Set("PORT", "7070")

	cfg, err := Load(v)

	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
}
