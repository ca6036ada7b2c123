package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carriertext/internal/carrier/models"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, 1, cfg.PhysicalSlotCount)
	assert.Equal(t, 250*time.Millisecond, cfg.LocaleDebounce)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, "carriertext", cfg.Redis.KeyPrefix)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
	assert.Equal(t, models.Separators{Default: " | ", Carrier: " "}, cfg.Separators())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("CARRIERTEXT_ADDR", ":9090")
	t.Setenv("CARRIERTEXT_PHYSICAL_SLOT_COUNT", "2")
	t.Setenv("CARRIERTEXT_SEPARATOR", "|")
	t.Setenv("CARRIERTEXT_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CARRIERTEXT_REDIS_DIAL_TIMEOUT", "1s")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 2, cfg.PhysicalSlotCount)
	assert.Equal(t, "|", cfg.Separators().Default)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, time.Second, cfg.Redis.DialTimeout)
}

func TestSeparatorsCarrierVariant(t *testing.T) {
	t.Setenv("CARRIERTEXT_CARRIER_VARIANT", "405854")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.Separators().UseCarrier)
}

func TestFromEnvErrors(t *testing.T) {
	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("CARRIERTEXT_PHYSICAL_SLOT_COUNT", "two")

		_, err := FromEnv()
		assert.ErrorContains(t, err, "parse env:")
	})

	t.Run("negative slot count", func(t *testing.T) {
		t.Setenv("CARRIERTEXT_PHYSICAL_SLOT_COUNT", "-1")

		_, err := FromEnv()
		assert.ErrorContains(t, err, "must not be negative")
	})
}
